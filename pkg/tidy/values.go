package tidy

import (
	"strconv"
	"strings"
	"unicode"
)

// value holds the current setting of one option. It implements
// pflag.Value so the registry can be a pflag.FlagSet.
type value struct {
	opt  *Option
	n    uint
	s    string
	tags []string
	doc  *Doc
}

func (v *value) Type() string {
	switch v.opt.typ {
	case TypeBoolean:
		return "bool"
	case TypeInteger:
		return "uint"
	}
	return "string"
}

func (v *value) String() string {
	if v == nil || v.opt == nil {
		return ""
	}
	switch {
	case isTagList(v.opt.id):
		return strings.Join(v.tags, ", ")
	case v.opt.typ == TypeString:
		return v.s
	case v.opt.picks != nil:
		if int(v.n) < len(v.opt.picks) {
			return v.opt.picks[v.n]
		}
		return strconv.FormatUint(uint64(v.n), 10)
	}
	return strconv.FormatUint(uint64(v.n), 10)
}

// Set parses s according to the option's kind. Read-only options refuse
// every value.
func (v *value) Set(s string) error {
	if v.opt.readOnly {
		return newReadOnlyError(v.opt.name)
	}
	return v.set(s)
}

func (v *value) set(s string) error {
	s = strings.TrimSpace(s)
	o := v.opt

	switch {
	case isTagList(o.id):
		for _, tag := range splitTags(s) {
			if !containsFold(v.tags, tag) {
				v.tags = append(v.tags, strings.ToLower(tag))
			}
		}
		return nil
	case isEncoding(o.id):
		if v.doc != nil {
			return v.doc.setEncodingOption(o.id, s)
		}
		v.s = strings.ToLower(s)
		return nil
	case o.id == Doctype:
		v.s = s
		if v.doc != nil {
			v.doc.values[DoctypeMode].n = doctypeModeFor(s)
		}
		return nil
	case o.id == Language:
		if v.doc != nil {
			if err := v.doc.loc.SetLanguage(s); err != nil {
				return newInvalidValueError(o.name, s, err)
			}
		}
		v.s = s
		return nil
	case o.typ == TypeString:
		v.s = s
		return nil
	case o.typ == TypeBoolean:
		b, ok := parseBool(s)
		if !ok {
			return newInvalidValueError(o.name, s, nil)
		}
		v.n = b
		return nil
	case o.picks != nil:
		if isAutoBool(o) {
			if strings.EqualFold(s, "auto") {
				v.n = AutoState
				return nil
			}
			if b, ok := parseBool(s); ok {
				v.n = b
				return nil
			}
			return newInvalidValueError(o.name, s, nil)
		}
		if n, ok := parsePick(o.picks, s); ok {
			v.n = n
			return nil
		}
		return newInvalidValueError(o.name, s, nil)
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return newInvalidValueError(o.name, s, err)
	}
	v.n = uint(n)
	return nil
}

func (v *value) reset() {
	v.n, v.s, v.tags = 0, "", nil
	if v.opt.def != "" {
		_ = v.set(v.opt.def)
	}
}

func parseBool(s string) (uint, bool) {
	switch strings.ToLower(s) {
	case "y", "yes", "t", "true", "1":
		return 1, true
	case "n", "no", "f", "false", "0":
		return 0, true
	}
	return 0, false
}

// parsePick matches s against picks case-insensitively, by leading
// number ("2" for "2 (Priority 2 Checks)") or by index.
func parsePick(picks []string, s string) (uint, bool) {
	for i, p := range picks {
		if strings.EqualFold(p, s) {
			return uint(i), true
		}
	}
	for i, p := range picks {
		if lead := leadingWord(p); lead != "" && strings.EqualFold(lead, s) {
			return uint(i), true
		}
	}
	if n, err := strconv.ParseUint(s, 10, 32); err == nil && int(n) < len(picks) {
		return uint(n), true
	}
	if strings.EqualFold(s, "loose") {
		for i, p := range picks {
			if p == "transitional" {
				return uint(i), true
			}
		}
	}
	return 0, false
}

func leadingWord(s string) string {
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return ""
}

// isAutoBool reports whether an integer option is a tri-state boolean,
// recognised by "yes" in its pick list.
func isAutoBool(o *Option) bool {
	if o.typ != TypeInteger {
		return false
	}
	for _, p := range o.picks {
		if p == "yes" {
			return true
		}
	}
	return false
}

func isTagList(id OptionID) bool {
	switch id {
	case InlineTags, BlockTags, EmptyTags, PreTags:
		return true
	}
	return false
}

func isEncoding(id OptionID) bool {
	switch id {
	case CharEncoding, InCharEncoding, OutCharEncoding:
		return true
	}
	return false
}

func splitTags(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func containsFold(list []string, s string) bool {
	for _, e := range list {
		if strings.EqualFold(e, s) {
			return true
		}
	}
	return false
}

func doctypeModeFor(s string) uint {
	if n, ok := parsePick(doctypePicks, strings.Trim(s, `"`)); ok && n != DoctypeUser {
		return n
	}
	return DoctypeUser
}
