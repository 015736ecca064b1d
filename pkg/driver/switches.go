package driver

import (
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/report"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

type action int

const (
	actSetBool action = iota
	actIndent
	actEncoding
	actOutputFile
	actConfigFile
	actErrorFile
	actLanguage
	actNumber
	actHelp
	actXMLHelp
	actVersion
	actHelpConfig
	actXMLConfig
	actShowConfig
	actHelpOption
)

// informational reports whether the action answers a query and ends the
// run.
func (a action) informational() bool {
	return a >= actHelp
}

// Switch is one driver switch: a command line flag with fixed behaviour,
// as opposed to a configuration option of the processor.
type Switch struct {
	category report.SwitchCategory
	// names are shown in help; "%s" stands for the localized label.
	names    []string
	label    locale.MessageID
	desc     locale.MessageID
	eqconfig string
	// keys are the spellings accepted after the leading dash, so "-output"
	// and "--output-file" match "output" and "-output-file".
	keys []string

	act      action
	option   tidy.OptionID
	on       bool
	encoding string
}

// Doc returns the localized help entry of the switch.
func (s *Switch) Doc(loc *locale.Localizer) report.SwitchDoc {
	label := ""
	if s.label != "" {
		label = loc.String(s.label)
	}
	fill := func(text string) string {
		return strings.ReplaceAll(text, "%s", label)
	}

	doc := report.SwitchDoc{
		Category:    s.category,
		Description: loc.String(s.desc),
		EqConfig:    fill(s.eqconfig),
	}
	for _, name := range s.names {
		doc.Names = append(doc.Names, fill(name))
	}
	return doc
}

func boolSwitch(cat report.SwitchCategory, desc locale.MessageID, eq string, id tidy.OptionID, on bool, names []string, keys ...string) Switch {
	return Switch{category: cat, names: names, desc: desc, eqconfig: eq, keys: keys, act: actSetBool, option: id, on: on}
}

func encodingSwitch(name string, desc locale.MessageID) Switch {
	return Switch{category: report.CharEncoding, names: []string{"-" + name}, desc: desc,
		keys: []string{name}, act: actEncoding, encoding: name}
}

func infoSwitch(act action, desc locale.MessageID, names []string, keys ...string) Switch {
	return Switch{category: report.Misc, names: names, desc: desc, keys: keys, act: act}
}

var switchTable = []Switch{
	{category: report.FileManip, names: []string{"-output <%s>", "-o <%s>"}, label: locale.LabelFile,
		desc: locale.OptOutput, eqconfig: "output-file: <%s>", keys: []string{"output", "-output-file", "o"},
		act: actOutputFile, option: tidy.OutFile},
	{category: report.FileManip, names: []string{"-config <%s>"}, label: locale.LabelFile,
		desc: locale.OptConfig, keys: []string{"config"}, act: actConfigFile},
	{category: report.FileManip, names: []string{"-file <%s>", "-f <%s>"}, label: locale.LabelFile,
		desc: locale.OptFile, eqconfig: "error-file: <%s>", keys: []string{"file", "-file", "f"},
		act: actErrorFile, option: tidy.ErrFile},
	boolSwitch(report.FileManip, locale.OptModify, "write-back: yes", tidy.WriteBack, true,
		[]string{"-modify", "-m"}, "modify", "change", "update"),

	{category: report.ProcessDirectives, names: []string{"-indent", "-i"}, desc: locale.OptIndent,
		eqconfig: "indent: auto", keys: []string{"indent"}, act: actIndent},
	{category: report.ProcessDirectives, names: []string{"-wrap <%s>", "-w <%s>"}, label: locale.LabelColumn,
		desc: locale.OptWrap, eqconfig: "wrap: <%s>", keys: []string{"wrap", "-wrap", "w"},
		act: actNumber, option: tidy.WrapLen},
	boolSwitch(report.ProcessDirectives, locale.OptUpper, "uppercase-tags: yes", tidy.UpperCaseTags, true,
		[]string{"-upper", "-u"}, "upper"),
	boolSwitch(report.ProcessDirectives, locale.OptClean, "clean: yes", tidy.MakeClean, true,
		[]string{"-clean", "-c"}, "clean"),
	boolSwitch(report.ProcessDirectives, locale.OptBare, "bare: yes", tidy.MakeBare, true,
		[]string{"-bare", "-b"}, "bare"),
	boolSwitch(report.ProcessDirectives, locale.OptGDoc, "gdoc: yes", tidy.GDocClean, true,
		[]string{"-gdoc", "-g"}, "gdoc"),
	boolSwitch(report.ProcessDirectives, locale.OptNumeric, "numeric-entities: yes", tidy.NumEntities, true,
		[]string{"-numeric", "-n"}, "numeric"),
	boolSwitch(report.ProcessDirectives, locale.OptErrors, "markup: no", tidy.ShowMarkup, false,
		[]string{"-errors", "-e"}, "errors"),
	boolSwitch(report.ProcessDirectives, locale.OptQuiet, "quiet: yes", tidy.Quiet, true,
		[]string{"-quiet", "-q"}, "quiet"),
	boolSwitch(report.ProcessDirectives, locale.OptOmit, "omit-optional-tags: yes", tidy.OmitOptionalTags, true,
		[]string{"-omit"}, "omit"),
	boolSwitch(report.ProcessDirectives, locale.OptXML, "input-xml: yes", tidy.XMLTags, true,
		[]string{"-xml"}, "xml"),
	boolSwitch(report.ProcessDirectives, locale.OptAsXML, "output-xhtml: yes", tidy.XHTMLOut, true,
		[]string{"-asxml", "-asxhtml"}, "asxml", "asxhtml"),
	boolSwitch(report.ProcessDirectives, locale.OptAsHTML, "output-html: yes", tidy.HTMLOut, true,
		[]string{"-ashtml"}, "ashtml"),
	{category: report.ProcessDirectives, names: []string{"-access <%s>"}, label: locale.LabelLevel,
		desc: locale.OptAccess, eqconfig: "accessibility-check: <%s>", keys: []string{"access"},
		act: actNumber, option: tidy.AccessibilityCheckLevel},

	encodingSwitch("raw", locale.OptRaw),
	encodingSwitch("ascii", locale.OptASCII),
	encodingSwitch("latin0", locale.OptLatin0),
	encodingSwitch("latin1", locale.OptLatin1),
	encodingSwitch("iso2022", locale.OptISO2022),
	encodingSwitch("utf8", locale.OptUTF8),
	encodingSwitch("mac", locale.OptMac),
	encodingSwitch("win1252", locale.OptWin1252),
	encodingSwitch("ibm858", locale.OptIBM858),
	encodingSwitch("utf16le", locale.OptUTF16LE),
	encodingSwitch("utf16be", locale.OptUTF16BE),
	encodingSwitch("utf16", locale.OptUTF16),
	encodingSwitch("big5", locale.OptBig5),
	encodingSwitch("shiftjis", locale.OptShiftJIS),
	{category: report.CharEncoding, names: []string{"-language <%s>"}, label: locale.LabelLang,
		desc: locale.OptLanguage, eqconfig: "language: <%s>", keys: []string{"language", "lang"},
		act: actLanguage, option: tidy.Language},

	infoSwitch(actVersion, locale.OptVersion, []string{"-version", "-v"}, "version", "-version", "v"),
	infoSwitch(actHelp, locale.OptHelp, []string{"-help", "-h", "-?"}, "help", "-help", "h", "?"),
	infoSwitch(actXMLHelp, locale.OptXMLHelp, []string{"-xml-help"}, "xml-help"),
	infoSwitch(actHelpConfig, locale.OptHelpConfig, []string{"-help-config"}, "help-config"),
	infoSwitch(actXMLConfig, locale.OptXMLConfig, []string{"-xml-config"}, "xml-config"),
	infoSwitch(actShowConfig, locale.OptShowConfig, []string{"-show-config"}, "show-config"),
	{category: report.Misc, names: []string{"-help-option <%s>"}, label: locale.LabelOption,
		desc: locale.OptHelpOption, keys: []string{"help-option"}, act: actHelpOption},
}

// shortTable maps the letters accepted in a clustered short option group
// such as "-imu".
var shortTable = map[rune]string{
	'i': "indent",
	'u': "upper",
	'c': "clean",
	'g': "gdoc",
	'b': "bare",
	'n': "numeric",
	'm': "modify",
	'e': "errors",
	'q': "quiet",
}

// Registry is the immutable table of driver switches.
type Registry struct {
	switches []Switch
	byKey    map[string]*Switch
}

// NewRegistry builds the switch table.
func NewRegistry() *Registry {
	r := &Registry{
		switches: append([]Switch(nil), switchTable...),
		byKey:    make(map[string]*Switch),
	}
	for i := range r.switches {
		s := &r.switches[i]
		for _, key := range s.keys {
			r.byKey[key] = s
		}
	}
	return r
}

// Lookup matches arg, a token without its leading dash, case-insensitively.
// Any arg starting with "?" asks for help.
func (r *Registry) Lookup(arg string) (*Switch, bool) {
	if strings.HasPrefix(arg, "?") {
		arg = "?"
	}
	s, ok := r.byKey[strings.ToLower(arg)]
	return s, ok
}

// Short returns the switch for one letter of a clustered group.
func (r *Registry) Short(c rune) (*Switch, bool) {
	key, ok := shortTable[c]
	if !ok {
		return nil, false
	}
	return r.Lookup(key)
}

// Docs returns the localized help entries in table order.
func (r *Registry) Docs(loc *locale.Localizer) []report.SwitchDoc {
	docs := make([]report.SwitchDoc, 0, len(r.switches))
	for i := range r.switches {
		docs = append(docs, r.switches[i].Doc(loc))
	}
	return docs
}
