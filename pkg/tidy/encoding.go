package tidy

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// charset describes one named character encoding.
type charset struct {
	enc encoding.Encoding
	// output is the encoding name used for output when this charset is
	// selected with char-encoding.
	output string
	// rangeCheck reports whether a rune can be written without an entity.
	rangeCheck func(r rune) bool
}

var charsets = map[string]charset{
	"raw":      {enc: nil, output: "raw"},
	"ascii":    {enc: charmap.ISO8859_1, output: "ascii", rangeCheck: asciiOnly},
	"latin0":   {enc: charmap.ISO8859_15, output: "ascii", rangeCheck: charmapCheck(charmap.ISO8859_15)},
	"latin1":   {enc: charmap.ISO8859_1, output: "latin1", rangeCheck: charmapCheck(charmap.ISO8859_1)},
	"utf8":     {enc: unicode.UTF8, output: "utf8"},
	"iso2022":  {enc: japanese.ISO2022JP, output: "iso2022"},
	"mac":      {enc: charmap.Macintosh, output: "ascii", rangeCheck: charmapCheck(charmap.Macintosh)},
	"win1252":  {enc: charmap.Windows1252, output: "ascii", rangeCheck: charmapCheck(charmap.Windows1252)},
	"ibm858":   {enc: charmap.CodePage858, output: "ascii", rangeCheck: charmapCheck(charmap.CodePage858)},
	"utf16le":  {enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), output: "utf16le"},
	"utf16be":  {enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), output: "utf16be"},
	"utf16":    {enc: unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), output: "utf16"},
	"big5":     {enc: traditionalchinese.Big5, output: "big5"},
	"shiftjis": {enc: japanese.ShiftJIS, output: "shiftjis"},
}

func asciiOnly(r rune) bool { return r < 128 }

func charmapCheck(cm *charmap.Charmap) func(rune) bool {
	return func(r rune) bool {
		if r < 128 {
			return true
		}
		_, ok := cm.EncodeRune(r)
		return ok
	}
}

// encodingPicks lists the encoding names in the order help shows them.
var encodingPicks = []string{
	"raw", "ascii", "latin0", "latin1", "utf8", "iso2022", "mac", "win1252",
	"ibm858", "utf16le", "utf16be", "utf16", "big5", "shiftjis",
}

// EncodingNames lists the accepted character encoding names.
func EncodingNames() []string {
	return append([]string(nil), encodingPicks...)
}

func lookupCharset(name string) (charset, string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "utf-8":
		name = "utf8"
	case "iso-8859-1":
		name = "latin1"
	case "shift_jis":
		name = "shiftjis"
	}
	cs, ok := charsets[name]
	return cs, name, ok
}

// setEncodingOption applies an encoding name. char-encoding also selects
// the matching input and output encodings.
func (d *Doc) setEncodingOption(id OptionID, name string) error {
	cs, canonical, ok := lookupCharset(name)
	if !ok {
		return newUnknownEncodingError(name)
	}
	switch id {
	case CharEncoding:
		d.values[CharEncoding].s = canonical
		d.values[InCharEncoding].s = canonical
		d.values[OutCharEncoding].s = cs.output
	default:
		d.values[id].s = canonical
	}
	return nil
}

// SetCharEncoding sets char-encoding, as the named encoding switches do.
func (d *Doc) SetCharEncoding(name string) error {
	return d.setEncodingOption(CharEncoding, name)
}

// EncodingName returns the name of the encoding held by an encoding
// option, or "" for other options.
func (d *Doc) EncodingName(id OptionID) string {
	if !isEncoding(id) {
		return ""
	}
	return d.values[id].s
}

func (d *Doc) inputCharset() charset {
	cs, _, _ := lookupCharset(d.values[InCharEncoding].s)
	return cs
}

func (d *Doc) outputCharset() charset {
	cs, _, _ := lookupCharset(d.values[OutCharEncoding].s)
	return cs
}
