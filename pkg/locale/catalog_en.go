package locale

var english = map[MessageID]string{
	FileManip:         "File manipulation",
	ProcessDirectives: "Processing directives",
	CharEncoding:      "Character encodings",
	Misc:              "Miscellaneous",

	LabelFile:   "file",
	LabelColumn: "column",
	LabelLevel:  "level",
	LabelLang:   "lang",
	LabelOption: "option",

	OptOutput:     "write output to the specified <file>",
	OptConfig:     "set configuration options from the specified <file>",
	OptFile:       "write errors and warnings to the specified <file>",
	OptModify:     "modify the original input files",
	OptIndent:     "indent element content",
	OptWrap:       "wrap text at the specified <column>. 0 is assumed if <column> is missing. When this option is omitted, the default of the configuration option \"wrap\" applies.",
	OptUpper:      "force tags to upper case",
	OptClean:      "replace FONT, NOBR and CENTER tags with CSS",
	OptBare:       "strip out smart quotes and em dashes, etc.",
	OptGDoc:       "produce clean version of html exported by Google Docs",
	OptNumeric:    "output numeric rather than named entities",
	OptErrors:     "show only errors and warnings",
	OptQuiet:      "suppress nonessential output",
	OptOmit:       "omit optional start tags and end tags",
	OptXML:        "specify the input is well formed XML",
	OptAsXML:      "convert HTML to well formed XHTML",
	OptAsHTML:     "force XHTML to well formed HTML",
	OptAccess:     "do additional accessibility checks (<level> = 0, 1, 2, 3). 0 is assumed if <level> is missing.",
	OptRaw:        "output values above 127 without conversion to entities",
	OptASCII:      "use ISO-8859-1 for input, US-ASCII for output",
	OptLatin0:     "use ISO-8859-15 for input, US-ASCII for output",
	OptLatin1:     "use ISO-8859-1 for both input and output",
	OptISO2022:    "use ISO-2022 for both input and output",
	OptUTF8:       "use UTF-8 for both input and output",
	OptMac:        "use MacRoman for input, US-ASCII for output",
	OptWin1252:    "use Windows-1252 for input, US-ASCII for output",
	OptIBM858:     "use IBM-858 (CP850+Euro) for input, US-ASCII for output",
	OptUTF16LE:    "use UTF-16LE for both input and output",
	OptUTF16BE:    "use UTF-16BE for both input and output",
	OptUTF16:      "use UTF-16 for both input and output",
	OptBig5:       "use Big5 for both input and output",
	OptShiftJIS:   "use Shift_JIS for both input and output",
	OptLanguage:   "set the two-letter language code <lang> (for future use)",
	OptVersion:    "show the version of Tidy",
	OptHelp:       "list the command line options",
	OptXMLHelp:    "list the command line options in XML format",
	OptHelpConfig: "list all configuration options",
	OptXMLConfig:  "list all configuration options in XML format",
	OptShowConfig: "list the current configuration settings",
	OptHelpOption: "show a description of the <option>",

	CatMarkup:      "markup",
	CatDiagnostics: "diagnostics",
	CatPrettyPrint: "print",
	CatEncoding:    "encoding",
	CatMisc:        "misc",

	HelpIntro: "%s [options...] [file...] [options...] [file...]\n" +
		"Utility to clean up and pretty print HTML/XHTML/XML.\n\n" +
		"This is modern HTML Tidy version %s.\n\n",
	HelpPlatform:   "Command Line Arguments for HTML Tidy for %s:\n",
	HelpNoPlatform: "Command Line Arguments for HTML Tidy:\n",
	HelpTrailer: "Tidy Configuration Options\n" +
		"==========================\n" +
		"Use Tidy's configuration options as command line arguments in the form\n" +
		"of \"--some-option <value>\", for example, \"--indent-with-tabs yes\".\n\n" +
		"For a list of all configuration options, use \"-help-config\" or refer\n" +
		"to the man page (if your OS has one).\n\n" +
		"If your environment has an $HTML_TIDY variable set point to a Tidy\n" +
		"configuration file then Tidy will attempt to use it.\n\n" +
		"On some platforms Tidy will also attempt to use a configuration specified\n" +
		"in /etc/tidy.conf or ~/.tidyrc.\n\n" +
		"Other\n" +
		"=====\n" +
		"Input/Output default to stdin/stdout respectively.\n\n" +
		"Single letter options apart from -f may be combined\n" +
		"as in:  tidy -f errs.txt -imu foo.html\n\n",
	HelpConfigIntro: "\nHTML Tidy Configuration Settings\n\n" +
		"Within a file, use the form:\n\n" +
		"wrap: 72\n" +
		"indent: no\n\n" +
		"When specified on the command line, use the form:\n\n" +
		"--wrap 72 --indent no\n\n",
	HelpConfigName:     "Name",
	HelpConfigType:     "Type",
	HelpConfigAllowed:  "Allowable values",
	ShowConfigIntro:    "\nConfiguration File Settings:\n\n",
	ShowConfigValue:    "Current Value",
	ShowConfigFooter:   "\n\nValues marked with an *asterisk are calculated \ninternally by HTML Tidy\n\n",
	Version:            "HTML Tidy version %s\n",
	VersionPlatform:    "HTML Tidy for %s version %s\n",
	UnknownOption:      "unknown option: %c\n",
	UnknownOptionName:  "unknown option",
	MustSpecifyOption:  "A option name must be specified.",
	BadOptionValue:     "Warning: can't set option \"%s\" to \"%s\": %v\n",
	FatalError:         "Fatal error: impossible value for id='%d'.\n",
	OutOfMemory:        "Out of memory. Bailing out.\n",
	LoadConfigFailed:   "Loading config file \"%s\" failed, err = %d\n",
	OptionUndocumented: "Warning: option `%s' is not documented.\n",
	PlatformDependent:  "<em>Platform dependent</em>",
	CannotOpenFile:     "Can't open \"%s\"\n",
	CannotSetEncoding:  "Warning: unknown character encoding \"%s\"\n",
	CannotSetErrorFile: "Can't open \"%s\" for error output\n",
	CannotSaveFile:     "Can't write \"%s\": %v\n",
	GeneralInfo: "About HTML Tidy: https://github.com/htacg/tidy-html5\n" +
		"Bug reports and comments: https://github.com/htacg/tidy-html5/issues\n" +
		"Official mailing list: https://lists.w3.org/Archives/Public/public-htacg/\n" +
		"Latest HTML specification: http://dev.w3.org/html5/spec-author-view/\n" +
		"Validate your HTML documents: http://validator.w3.org/nu/\n" +
		"Lobby your company to join the W3C: http://www.w3.org/Consortium\n\n",
	SummaryCounts:   "Tidy found %d warnings and %d errors!\n",
	SummaryAccess:   "%d accessibility warnings (priority level %d) were found!\n",
	SummaryNoOutput: "This document has errors that must be fixed before\nusing HTML Tidy to generate a tidied up version.\n\n",
	SummaryClean:    "No warnings or errors were found.\n\n",
	DoctypeGiven:    "Doctype given is \"%s\"",
	DoctypeDetected: "Document content looks like %s",
	DiagLocation:    "line %d column %d - ",
	DiagWarning:     "Warning: ",
	DiagError:       "Error: ",
	DiagAccess:      "Access: ",
	DiagInfo:        "Info: ",

	MissingDoctype:     "missing <!DOCTYPE> declaration",
	UnknownElement:     "<%s> is not recognized!",
	UnexpectedEndTag:   "discarding unexpected </%s>",
	MissingEndTag:      "missing </%s>",
	RepeatedAttribute:  "<%s> repeated attribute \"%s\"",
	MissingAlt:         "<img> lacks \"alt\" attribute",
	AccessMissingAlt:   "[1.1.1.1]: <img> missing 'alt' text.",
	AccessMissingTitle: "[13.2.1.1]: Metadata missing (title).",
	AccessMissingLang:  "[4.3.1.1]: language not identified.",
	ProprietaryElement: "<%s> is not approved by W3C",
	TrimEmptyElement:   "trimming empty <%s>",
	NestedEmphasis:     "nested emphasis <%s>",
	ObsoleteElement:    "replacing obsolete element <%s> with <%s>",
}
