package locale

// MessageID identifies a localized string.
type MessageID string

// Driver-switch categories.
const (
	FileManip         MessageID = "cat-file-manip"
	ProcessDirectives MessageID = "cat-process-directives"
	CharEncoding      MessageID = "cat-char-encoding"
	Misc              MessageID = "cat-misc"
)

// Value labels substituted into driver-switch names.
const (
	LabelFile   MessageID = "label-file"
	LabelColumn MessageID = "label-column"
	LabelLevel  MessageID = "label-level"
	LabelLang   MessageID = "label-lang"
	LabelOption MessageID = "label-option"
)

// Driver-switch descriptions.
const (
	OptOutput     MessageID = "opt-output"
	OptConfig     MessageID = "opt-config"
	OptFile       MessageID = "opt-file"
	OptModify     MessageID = "opt-modify"
	OptIndent     MessageID = "opt-indent"
	OptWrap       MessageID = "opt-wrap"
	OptUpper      MessageID = "opt-upper"
	OptClean      MessageID = "opt-clean"
	OptBare       MessageID = "opt-bare"
	OptGDoc       MessageID = "opt-gdoc"
	OptNumeric    MessageID = "opt-numeric"
	OptErrors     MessageID = "opt-errors"
	OptQuiet      MessageID = "opt-quiet"
	OptOmit       MessageID = "opt-omit"
	OptXML        MessageID = "opt-xml"
	OptAsXML      MessageID = "opt-asxml"
	OptAsHTML     MessageID = "opt-ashtml"
	OptAccess     MessageID = "opt-access"
	OptRaw        MessageID = "opt-raw"
	OptASCII      MessageID = "opt-ascii"
	OptLatin0     MessageID = "opt-latin0"
	OptLatin1     MessageID = "opt-latin1"
	OptISO2022    MessageID = "opt-iso2022"
	OptUTF8       MessageID = "opt-utf8"
	OptMac        MessageID = "opt-mac"
	OptWin1252    MessageID = "opt-win1252"
	OptIBM858     MessageID = "opt-ibm858"
	OptUTF16LE    MessageID = "opt-utf16le"
	OptUTF16BE    MessageID = "opt-utf16be"
	OptUTF16      MessageID = "opt-utf16"
	OptBig5       MessageID = "opt-big5"
	OptShiftJIS   MessageID = "opt-shiftjis"
	OptLanguage   MessageID = "opt-language"
	OptVersion    MessageID = "opt-version"
	OptHelp       MessageID = "opt-help"
	OptXMLHelp    MessageID = "opt-xml-help"
	OptHelpConfig MessageID = "opt-help-config"
	OptXMLConfig  MessageID = "opt-xml-config"
	OptShowConfig MessageID = "opt-show-config"
	OptHelpOption MessageID = "opt-help-option"
)

// Configuration option categories.
const (
	CatMarkup      MessageID = "cfg-cat-markup"
	CatDiagnostics MessageID = "cfg-cat-diagnostics"
	CatPrettyPrint MessageID = "cfg-cat-pretty-print"
	CatEncoding    MessageID = "cfg-cat-encoding"
	CatMisc        MessageID = "cfg-cat-misc"
)

// Reports and driver diagnostics.
const (
	HelpIntro          MessageID = "help-intro"
	HelpPlatform       MessageID = "help-platform"
	HelpNoPlatform     MessageID = "help-no-platform"
	HelpTrailer        MessageID = "help-trailer"
	HelpConfigIntro    MessageID = "help-config-intro"
	HelpConfigName     MessageID = "help-config-name"
	HelpConfigType     MessageID = "help-config-type"
	HelpConfigAllowed  MessageID = "help-config-allowed"
	ShowConfigIntro    MessageID = "show-config-intro"
	ShowConfigValue    MessageID = "show-config-value"
	ShowConfigFooter   MessageID = "show-config-footer"
	Version            MessageID = "version"
	VersionPlatform    MessageID = "version-platform"
	UnknownOption      MessageID = "unknown-option"
	UnknownOptionName  MessageID = "unknown-option-name"
	MustSpecifyOption  MessageID = "must-specify-option"
	BadOptionValue     MessageID = "bad-option-value"
	FatalError         MessageID = "fatal-error"
	OutOfMemory        MessageID = "out-of-memory"
	LoadConfigFailed   MessageID = "load-config-failed"
	OptionUndocumented MessageID = "option-undocumented"
	PlatformDependent  MessageID = "platform-dependent"
	CannotOpenFile     MessageID = "cannot-open-file"
	CannotSetEncoding  MessageID = "cannot-set-encoding"
	CannotSetErrorFile MessageID = "cannot-set-error-file"
	CannotSaveFile     MessageID = "cannot-save-file"
	GeneralInfo        MessageID = "general-info"
	SummaryCounts      MessageID = "summary-counts"
	SummaryAccess      MessageID = "summary-access"
	SummaryNoOutput    MessageID = "summary-no-output"
	SummaryClean       MessageID = "summary-clean"
	DoctypeGiven       MessageID = "doctype-given"
	DoctypeDetected    MessageID = "doctype-detected"
	DiagLocation       MessageID = "diag-location"
	DiagWarning        MessageID = "diag-warning"
	DiagError          MessageID = "diag-error"
	DiagAccess         MessageID = "diag-access"
	DiagInfo           MessageID = "diag-info"
	MissingDoctype     MessageID = "missing-doctype"
	UnknownElement     MessageID = "unknown-element"
	UnexpectedEndTag   MessageID = "unexpected-end-tag"
	MissingEndTag      MessageID = "missing-end-tag"
	RepeatedAttribute  MessageID = "repeated-attribute"
	MissingAlt         MessageID = "missing-alt"
	AccessMissingAlt   MessageID = "access-missing-alt"
	AccessMissingTitle MessageID = "access-missing-title"
	AccessMissingLang  MessageID = "access-missing-lang"
	ProprietaryElement MessageID = "proprietary-element"
	TrimEmptyElement   MessageID = "trim-empty-element"
	NestedEmphasis     MessageID = "nested-emphasis"
	ObsoleteElement    MessageID = "obsolete-element"
)
