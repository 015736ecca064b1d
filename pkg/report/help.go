package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/cli"
	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

const (
	helpFormat = " %-25.25s %-52.52s\n"
	helpRule   = "-----------------------------------------------------------------"
)

// SwitchCategory groups driver switches in help output.
type SwitchCategory int

const (
	FileManip SwitchCategory = iota
	ProcessDirectives
	CharEncoding
	Misc
)

var switchCategories = []struct {
	class string
	title locale.MessageID
}{
	FileManip:         {"file-manip", locale.FileManip},
	ProcessDirectives: {"process-directives", locale.ProcessDirectives},
	CharEncoding:      {"char-encoding", locale.CharEncoding},
	Misc:              {"misc", locale.Misc},
}

// Class returns the XML class of the category.
func (c SwitchCategory) Class() string {
	if int(c) < 0 || int(c) >= len(switchCategories) {
		return ""
	}
	return switchCategories[c].class
}

// SwitchDoc is the localized help entry of one driver switch.
type SwitchDoc struct {
	Category    SwitchCategory
	Names       []string
	Description string
	// EqConfig is the equivalent configuration setting, "" when there is
	// none.
	EqConfig string
}

// Help writes the plain text help: a banner naming prog, every switch
// grouped by category, and the trailer about configuration options.
func Help(w io.Writer, loc *locale.Localizer, prog string, switches []SwitchDoc) error {
	if _, err := fmt.Fprint(w, loc.Sprintf(locale.HelpIntro, BaseName(prog), tidy.LibraryVersion())); err != nil {
		return err
	}
	if platform := tidy.PlatformName(); platform != "" {
		fmt.Fprint(w, loc.Sprintf(locale.HelpPlatform, platform))
	} else {
		fmt.Fprint(w, loc.String(locale.HelpNoPlatform))
	}
	fmt.Fprint(w, "\n")

	for c, cat := range switchCategories {
		title := loc.String(cat.title)
		n := len([]rune(title))
		if n > len(helpRule) {
			n = len(helpRule)
		}
		fmt.Fprintf(w, "%s\n%s\n", title, helpRule[:n])
		for _, s := range switches {
			if s.Category != SwitchCategory(c) {
				continue
			}
			if err := cli.WriteColumns(w, helpFormat, []int{25, 52}, strings.Join(s.Names, ", "), s.Description); err != nil {
				return err
			}
		}
		fmt.Fprint(w, "\n")
	}

	_, err := fmt.Fprint(w, loc.String(locale.HelpTrailer))
	return err
}

// XMLHelp writes the switch table as XML.
func XMLHelp(w io.Writer, switches []SwitchDoc) error {
	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\"?>\n<cmdline version=\"%s\">\n", tidy.LibraryVersion())
	for _, s := range switches {
		fmt.Fprintf(&b, " <option class=\"%s\">\n", s.Category.Class())
		for _, name := range s.Names {
			xmlElement(&b, "name", name)
		}
		xmlElement(&b, "description", s.Description)
		if s.EqConfig != "" {
			xmlElement(&b, "eqconfig", s.EqConfig)
		} else {
			b.WriteString("  <eqconfig />\n")
		}
		b.WriteString(" </option>\n")
	}
	b.WriteString("</cmdline>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Version writes the version banner.
func Version(w io.Writer, loc *locale.Localizer) error {
	var err error
	if platform := tidy.PlatformName(); platform != "" {
		_, err = fmt.Fprint(w, loc.Sprintf(locale.VersionPlatform, platform, tidy.LibraryVersion()))
	} else {
		_, err = fmt.Fprint(w, loc.Sprintf(locale.Version, tidy.LibraryVersion()))
	}
	return err
}

func xmlElement(b *strings.Builder, element, text string) {
	fmt.Fprintf(b, "  <%s>%s</%s>\n", element, XMLEscape(text), element)
}

var xmlEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;", `"`, "&quot;")

// XMLEscape escapes <, > and " and leaves every other character alone.
func XMLEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// BaseName returns the last element of a program path, accepting both
// "/" and "\" separators. A trailing separator is kept in the name.
func BaseName(prog string) string {
	name := prog
	for i := 0; i < len(prog)-1; i++ {
		if prog[i] == '/' || prog[i] == '\\' {
			name = prog[i+1:]
		}
	}
	return name
}
