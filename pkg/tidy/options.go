package tidy

import (
	"fmt"
	"runtime"
)

// OptionID identifies a configuration option.
type OptionID int

const (
	UnknownOption OptionID = iota

	// markup
	Doctype
	DoctypeMode
	XMLTags
	XMLOut
	XHTMLOut
	HTMLOut
	UpperCaseTags
	MakeClean
	MakeBare
	GDocClean
	HideComments
	NumEntities
	OmitOptionalTags
	DropEmptyElems
	DuplicateAttrs
	InlineTags
	BlockTags
	EmptyTags
	PreTags
	ShowBodyOnly
	TidyMark

	// diagnostics
	AccessibilityCheckLevel
	ShowWarnings
	ShowErrors
	ShowInfo

	// pretty print
	IndentContent
	IndentSpaces
	IndentWithTabs
	WrapLen
	SortAttributes
	ShowMarkup

	// encoding
	CharEncoding
	InCharEncoding
	OutCharEncoding
	Newline

	// misc
	OutFile
	ErrFile
	WriteBack
	Quiet
	ForceOutput
	Emacs
	EmacsFile
	Language

	numOptions
)

// Category groups options in reports.
type Category int

const (
	CategoryMarkup Category = iota
	CategoryDiagnostics
	CategoryPrettyPrint
	CategoryEncoding
	CategoryMisc
)

// OptionType is the declared value kind of an option.
type OptionType int

const (
	TypeString OptionType = iota
	TypeInteger
	TypeBoolean
)

// Values of auto-boolean options.
const (
	NoState   uint = 0
	YesState  uint = 1
	AutoState uint = 2
)

// Newline picks.
const (
	NewlineLF uint = iota
	NewlineCRLF
	NewlineCR
)

// Doctype mode picks; DoctypeMode is derived from the doctype value.
const (
	DoctypeHTML5 uint = iota
	DoctypeOmit
	DoctypeAuto
	DoctypeStrict
	DoctypeLoose
	DoctypeUser
)

var (
	boolPicks     = []string{"no", "yes"}
	autoBoolPicks = []string{"no", "yes", "auto"}
	doctypePicks  = []string{"html5", "omit", "auto", "strict", "transitional", "user"}
	newlinePicks  = []string{"LF", "CRLF", "CR"}
)

// Option is a handle to one configuration option. Handles are created
// once per Doc and shared by every accessor.
type Option struct {
	id       OptionID
	name     string
	category Category
	typ      OptionType
	def      string
	picks    []string
	readOnly bool
	doc      string
	links    []OptionID
}

// ID returns the option identifier.
func (o *Option) ID() OptionID { return o.id }

// Name returns the configuration name, for example "wrap".
func (o *Option) Name() string { return o.name }

// Category returns the category the option belongs to.
func (o *Option) Category() Category { return o.category }

// Type returns the declared value kind.
func (o *Option) Type() OptionType { return o.typ }

// PickList returns the human readable values the option accepts, or nil
// when it is not pick-based.
func (o *Option) PickList() []string { return o.picks }

// ReadOnly reports whether the value is computed internally.
func (o *Option) ReadOnly() bool { return o.readOnly }

// Default returns the default value spelling.
func (o *Option) Default() string { return o.def }

func defaultNewline() string {
	if runtime.GOOS == "windows" {
		return newlinePicks[NewlineCRLF]
	}
	return newlinePicks[NewlineLF]
}

func optionDefs() []Option {
	return []Option{
		{id: Doctype, name: "doctype", category: CategoryMarkup, typ: TypeString, def: "auto", picks: doctypePicks,
			doc: "This option specifies the DOCTYPE declaration generated by Tidy. " +
				"<br/>If set to <code>omit</code> the output won't contain a DOCTYPE declaration. " +
				"<br/>If set to <code>html5</code> the DOCTYPE is set to <code>&lt;!DOCTYPE html&gt;</code>. " +
				"<br/>If set to <code>auto</code> (the default) Tidy will use an educated guess based upon the contents of the document. " +
				"<br/>If set to <code>strict</code>, Tidy will set the DOCTYPE to the HTML4 or XHTML1 strict DTD. " +
				"<br/>If set to <code>loose</code>, the DOCTYPE is set to the HTML4 or XHTML1 loose (transitional) DTD. " +
				"<br/>Alternatively, you can supply a string for the formal public identifier (FPI).",
			links: []OptionID{OmitOptionalTags}},
		{id: DoctypeMode, name: "doctype-mode", category: CategoryMarkup, typ: TypeInteger, def: "auto",
			picks: doctypePicks, readOnly: true,
			doc: "This option reflects the doctype requested through <code>doctype</code>. It is read-only."},
		{id: XMLTags, name: "input-xml", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should use the XML parser rather than the error correcting HTML parser.",
			links: []OptionID{XMLOut}},
		{id: XMLOut, name: "output-xml", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should pretty print output, writing it as well-formed XML.",
			links: []OptionID{XMLTags, XHTMLOut}},
		{id: XHTMLOut, name: "output-xhtml", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should generate pretty printed output, writing it as extensible HTML. " +
				"<br/>This option causes Tidy to set the DOCTYPE and default namespace as appropriate to XHTML.",
			links: []OptionID{HTMLOut, XMLOut}},
		{id: HTMLOut, name: "output-html", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should generate pretty printed output, writing it as HTML.",
			links: []OptionID{XHTMLOut}},
		{id: UpperCaseTags, name: "uppercase-tags", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should output tag names in upper case. " +
				"<br/>The default is <code>no</code> which results in lower case tag names, except for XML input where the original case is preserved."},
		{id: MakeClean, name: "clean", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should perform cleaning of some legacy presentational tags " +
				"(currently <code>&lt;i&gt;</code>, <code>&lt;b&gt;</code>, <code>&lt;center&gt;</code> when enclosed within appropriate inline tags, " +
				"and <code>&lt;font&gt;</code>). If set to <code>yes</code> then legacy tags will be replaced with CSS " +
				"<code>&lt;style&gt;</code> tags and structural markup as appropriate.",
			links: []OptionID{MakeBare, GDocClean}},
		{id: MakeBare, name: "bare", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should strip Microsoft specific HTML from Word 2000 documents, " +
				"and output spaces rather than non-breaking spaces where they exist in the input.",
			links: []OptionID{MakeClean}},
		{id: GDocClean, name: "gdoc", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should enable specific behavior for cleaning up HTML exported from Google Docs.",
			links: []OptionID{MakeClean}},
		{id: HideComments, name: "hide-comments", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should print out comments."},
		{id: NumEntities, name: "numeric-entities", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should output entities other than the built-in HTML entities " +
				"(<code>&amp;amp;</code>, <code>&amp;lt;</code>, <code>&amp;gt;</code>, and <code>&amp;quot;</code>) in the numeric rather than the named entity form.",
			links: []OptionID{OutCharEncoding}},
		{id: OmitOptionalTags, name: "omit-optional-tags", category: CategoryMarkup, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should omit optional start tags and end tags when generating output. " +
				"<br/>Setting this option causes all tags for the <code>&lt;html&gt;</code>, <code>&lt;head&gt;</code>, and " +
				"<code>&lt;body&gt;</code> elements to be omitted from output, as well as such end tags as <code>&lt;/p&gt;</code>, " +
				"<code>&lt;/li&gt;</code>, <code>&lt;/dt&gt;</code>, <code>&lt;/dd&gt;</code>, <code>&lt;/option&gt;</code>, " +
				"<code>&lt;/tr&gt;</code>, <code>&lt;/td&gt;</code>, and <code>&lt;/th&gt;</code>. " +
				"<br/>This option is ignored for XML output."},
		{id: DropEmptyElems, name: "drop-empty-elements", category: CategoryMarkup, typ: TypeBoolean, def: "yes", picks: boolPicks,
			doc: "This option specifies if Tidy should discard empty inline elements."},
		{id: DuplicateAttrs, name: "repeated-attributes", category: CategoryMarkup, typ: TypeInteger, def: "keep-last",
			picks: []string{"keep-first", "keep-last"},
			doc: "This option specifies if Tidy should keep the first or last attribute, if an attribute is repeated, e.g. has two " +
				"<code>align</code> attributes."},
		{id: InlineTags, name: "new-inline-tags", category: CategoryMarkup, typ: TypeString,
			doc: "This option specifies new non-standard inline tags. This option takes a space or comma separated list of tag names. " +
				"<br/>Unless you declare new tags, Tidy will refuse to generate a tidied file if the input includes previously unknown tags.",
			links: []OptionID{BlockTags, EmptyTags, PreTags}},
		{id: BlockTags, name: "new-blocklevel-tags", category: CategoryMarkup, typ: TypeString,
			doc: "This option specifies new block-level tags. This option takes a space or comma separated list of tag names.",
			links: []OptionID{InlineTags, EmptyTags, PreTags}},
		{id: EmptyTags, name: "new-empty-tags", category: CategoryMarkup, typ: TypeString,
			doc: "This option specifies new empty inline tags. This option takes a space or comma separated list of tag names.",
			links: []OptionID{InlineTags, BlockTags, PreTags}},
		{id: PreTags, name: "new-pre-tags", category: CategoryMarkup, typ: TypeString,
			doc: "This option specifies new tags that are to be processed in exactly the same way as HTML's " +
				"<code>&lt;pre&gt;</code> element. This option takes a space or comma separated list of tag names.",
			links: []OptionID{InlineTags, BlockTags, EmptyTags}},
		{id: ShowBodyOnly, name: "show-body-only", category: CategoryMarkup, typ: TypeInteger, def: "no", picks: autoBoolPicks,
			doc: "This option specifies if Tidy should print only the contents of the body tag as an HTML fragment. " +
				"<br/>If set to <code>auto</code>, this is performed only if the body tag has been inferred."},
		{id: TidyMark, name: "tidy-mark", category: CategoryMarkup, typ: TypeBoolean, def: "yes", picks: boolPicks,
			doc: "This option specifies if Tidy should add a <code>meta</code> element to the document head to indicate that the document has been tidied."},

		{id: AccessibilityCheckLevel, name: "accessibility-check", category: CategoryDiagnostics, typ: TypeInteger,
			def:   "0 (Tidy Classic)",
			picks: []string{"0 (Tidy Classic)", "1 (Priority 1 Checks)", "2 (Priority 2 Checks)", "3 (Priority 3 Checks)"},
			doc:   "This option specifies what level of accessibility checking, if any, that Tidy should perform."},
		{id: ShowWarnings, name: "show-warnings", category: CategoryDiagnostics, typ: TypeBoolean, def: "yes", picks: boolPicks,
			doc: "This option specifies if Tidy should suppress warnings. This can be useful when a few errors are hidden in a flurry of warnings.",
			links: []OptionID{ShowErrors, ShowInfo}},
		{id: ShowErrors, name: "show-errors", category: CategoryDiagnostics, typ: TypeInteger, def: "6",
			doc: "This option specifies the number Tidy uses to determine if further errors should be shown. " +
				"If set to <code>0</code>, then no errors are shown.",
			links: []OptionID{ShowWarnings}},
		{id: ShowInfo, name: "show-info", category: CategoryDiagnostics, typ: TypeBoolean, def: "yes", picks: boolPicks,
			doc: "This option specifies if Tidy should display info-level messages."},

		{id: IndentContent, name: "indent", category: CategoryPrettyPrint, typ: TypeInteger, def: "no", picks: autoBoolPicks,
			doc: "This option specifies if Tidy should indent block-level tags. " +
				"<br/>If set to <code>auto</code> Tidy will decide whether or not to indent the content of tags such as " +
				"<code>&lt;title&gt;</code>, <code>&lt;h1&gt;</code>-<code>&lt;h6&gt;</code>, <code>&lt;li&gt;</code>, " +
				"<code>&lt;td&gt;</code>, or <code>&lt;p&gt;</code> based on the content including a block-level element.",
			links: []OptionID{IndentSpaces, IndentWithTabs}},
		{id: IndentSpaces, name: "indent-spaces", category: CategoryPrettyPrint, typ: TypeInteger, def: "2",
			doc: "This option specifies the number of spaces or tabs that Tidy uses to indent content when <code>indent</code> is enabled.",
			links: []OptionID{IndentContent, IndentWithTabs}},
		{id: IndentWithTabs, name: "indent-with-tabs", category: CategoryPrettyPrint, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should indent with tabs instead of spaces, assuming <code>indent</code> is <code>yes</code>.",
			links: []OptionID{IndentContent, IndentSpaces}},
		{id: WrapLen, name: "wrap", category: CategoryPrettyPrint, typ: TypeInteger, def: "68",
			doc: "This option specifies the right margin Tidy uses for line wrapping. " +
				"<br/>Tidy tries to wrap lines so that they do not exceed this length. " +
				"<br/>Set <code>wrap</code> to <code>0</code> (zero) if you want to disable line wrapping."},
		{id: SortAttributes, name: "sort-attributes", category: CategoryPrettyPrint, typ: TypeInteger, def: "none",
			picks: []string{"none", "alpha"},
			doc:   "This option specifies that Tidy should sort attributes within an element using the specified sort algorithm. " +
				"If set to <code>alpha</code>, the algorithm is an ascending alphabetic sort."},
		{id: ShowMarkup, name: "markup", category: CategoryPrettyPrint, typ: TypeBoolean, def: "yes", picks: boolPicks,
			doc: "This option specifies if Tidy should generate a pretty printed version of the markup. " +
				"Note that Tidy won't generate a pretty printed version if it finds significant errors (see <code>force-output</code>).",
			links: []OptionID{ForceOutput}},

		{id: CharEncoding, name: "char-encoding", category: CategoryEncoding, typ: TypeString, def: "utf8", picks: encodingPicks,
			doc: "This option specifies the character encoding Tidy uses for both the input and output. " +
				"<br/>For <code>ascii</code> Tidy will accept Latin-1 (ISO-8859-1) character values, but will use entities for all characters whose value &gt;127.",
			links: []OptionID{InCharEncoding, OutCharEncoding}},
		{id: InCharEncoding, name: "input-encoding", category: CategoryEncoding, typ: TypeString, def: "utf8", picks: encodingPicks,
			doc:   "This option specifies the character encoding Tidy uses for the input.",
			links: []OptionID{CharEncoding}},
		{id: OutCharEncoding, name: "output-encoding", category: CategoryEncoding, typ: TypeString, def: "utf8", picks: encodingPicks,
			doc:   "This option specifies the character encoding Tidy uses for the output.",
			links: []OptionID{CharEncoding}},
		{id: Newline, name: "newline", category: CategoryEncoding, typ: TypeInteger, def: defaultNewline(), picks: newlinePicks,
			doc: "The default is appropriate to the current platform. " +
				"<br/>Generally CRLF on PC-DOS, Windows and OS/2; CR on Classic Mac OS; and LF everywhere else (Linux, Mac OS X, and Unix)."},

		{id: OutFile, name: "output-file", category: CategoryMisc, typ: TypeString,
			doc: "This option specifies the output file Tidy uses for markup. Normally markup is written to <code>stdout</code>."},
		{id: ErrFile, name: "error-file", category: CategoryMisc, typ: TypeString,
			doc: "This option specifies the error file Tidy uses for errors and warnings. Normally errors and warnings are output to <code>stderr</code>.",
			links: []OptionID{OutFile}},
		{id: WriteBack, name: "write-back", category: CategoryMisc, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should write back the tidied markup to the same file it read from. " +
				"<br/>You are advised to keep copies of important files before tidying them, as on rare occasions the result may not be what you expect."},
		{id: Quiet, name: "quiet", category: CategoryMisc, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should output the summary of the numbers of errors and warnings, or the welcome or informational messages."},
		{id: ForceOutput, name: "force-output", category: CategoryMisc, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should produce output even if errors are encountered. " +
				"<br/>Use this option with care; if Tidy reports an error, this means Tidy was not able to (or is not sure how to) fix the error, " +
				"so the resulting output may not reflect your intention."},
		{id: Emacs, name: "gnu-emacs", category: CategoryMisc, typ: TypeBoolean, def: "no", picks: boolPicks,
			doc: "This option specifies if Tidy should change the format for reporting errors and warnings to a format that is more easily parsed by GNU Emacs."},
		{id: EmacsFile, name: "gnu-emacs-file", category: CategoryMisc, typ: TypeString, readOnly: true,
			doc: "This option holds the file name reported in GNU Emacs style messages. It is read-only."},
		{id: Language, name: "language", category: CategoryMisc, typ: TypeString, def: "en",
			doc: "Currently not used, but this option specifies the language Tidy would use if it were properly localized. " +
				"For example: <code>en</code>."},
	}
}

// String returns the spelling used in help output.
func (t OptionType) String() string {
	switch t {
	case TypeBoolean:
		return "Boolean"
	case TypeInteger:
		return "Integer"
	case TypeString:
		return "String"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}
