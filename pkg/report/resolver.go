// Package report renders the command line help and the descriptions of
// the processor's configuration options: plain and XML help, the XML
// configuration dump, the help-config and show-config tables and the
// description of a single option.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

// Processor is the introspection surface of the configurable processor
// the renderers read from.
type Processor interface {
	Options() []*tidy.Option
	SortedOptions() []*tidy.Option
	OptionByName(name string) (*tidy.Option, bool)
	OptionDoc(opt *tidy.Option) string
	OptionLinks(opt *tidy.Option) []*tidy.Option
	CurrentPick(id tidy.OptionID) string
	Value(id tidy.OptionID) string
	Int(id tidy.OptionID) uint
	EncodingName(id tidy.OptionID) string
	DeclaredTags(id tidy.OptionID) []string
	Localizer() *locale.Localizer
}

// Kind is the value kind an option is described with.
type Kind int

const (
	KindBoolean Kind = iota
	KindAutoBool
	KindInteger
	KindEnum
	KindString
	KindTagList
	KindEncoding
	KindDocType
)

// Descriptor is the normalized description of one configuration option.
// It is derived from the live option on every call.
type Descriptor struct {
	Name     string
	Category string
	Kind     Kind
	// Type is the type name shown in tables and XML.
	Type string
	// Values is the literal value domain; when empty and HaveValues is
	// set the domain is the option's pick list.
	Values     string
	Picks      []string
	HaveValues bool
	// Default is the current value; HasDefault is false when there is
	// none to show.
	Default    string
	HasDefault bool
	ReadOnly   bool
}

// Allowed returns the value domain as shown in help tables.
func (d Descriptor) Allowed() string {
	if d.Values != "" {
		return d.Values
	}
	return strings.Join(d.Picks, ", ")
}

// Fatal is panicked when an option reports a category that does not
// exist. The application shell recovers it and exits.
type Fatal struct {
	ID int
}

func (f Fatal) Error() string {
	return fmt.Sprintf("impossible value for id='%d'", f.ID)
}

var categoryNames = map[tidy.Category]locale.MessageID{
	tidy.CategoryMarkup:      locale.CatMarkup,
	tidy.CategoryDiagnostics: locale.CatDiagnostics,
	tidy.CategoryPrettyPrint: locale.CatPrettyPrint,
	tidy.CategoryEncoding:    locale.CatEncoding,
	tidy.CategoryMisc:        locale.CatMisc,
}

const (
	boolValues     = "y/n, yes/no, t/f, true/false, 1/0"
	autoBoolValues = "auto, y/n, yes/no, t/f, true/false, 1/0"
	intValues      = "0, 1, 2, ..."
	wrapValues     = "0 (no wrapping), 1, 2, ..."
	tagValues      = "tagX, tagY, ..."
)

// Describe derives the descriptor of opt from its current state in p.
func Describe(p Processor, opt *tidy.Option) Descriptor {
	loc := p.Localizer()
	id := opt.ID()

	cat, ok := categoryNames[opt.Category()]
	if !ok {
		panic(Fatal{ID: int(opt.Category())})
	}
	d := Descriptor{
		Name:       opt.Name(),
		Category:   loc.String(cat),
		Picks:      opt.PickList(),
		HaveValues: true,
		ReadOnly:   opt.ReadOnly(),
	}

	switch id {
	case tidy.DuplicateAttrs, tidy.SortAttributes, tidy.Newline, tidy.AccessibilityCheckLevel:
		d.Kind, d.Type = KindEnum, "enum"
		if id == tidy.Newline {
			d.Default = loc.String(locale.PlatformDependent)
		} else {
			d.Default = p.CurrentPick(id)
		}
	case tidy.Doctype:
		d.Kind, d.Type = KindDocType, "DocType"
		d.Default = p.CurrentPick(tidy.DoctypeMode)
		if d.Default == "" || strings.HasPrefix(d.Default, "*") {
			d.Default = p.Value(tidy.Doctype)
		}
	case tidy.InlineTags, tidy.BlockTags, tidy.EmptyTags, tidy.PreTags:
		d.Kind, d.Type = KindTagList, "Tag names"
		d.Values = tagValues
		d.Picks = nil
	case tidy.CharEncoding, tidy.InCharEncoding, tidy.OutCharEncoding:
		d.Kind, d.Type = KindEncoding, "Encoding"
		d.Default = p.EncodingName(id)
		if d.Default == "" {
			d.Default = "?"
		}
	default:
		describeByType(p, opt, &d)
	}
	d.HasDefault = d.Default != ""

	return d
}

func describeByType(p Processor, opt *tidy.Option, d *Descriptor) {
	id := opt.ID()
	switch opt.Type() {
	case tidy.TypeBoolean:
		d.Kind, d.Type = KindBoolean, "Boolean"
		d.Values = boolValues
		d.Default = p.CurrentPick(id)
	case tidy.TypeInteger:
		if isAutoBool(opt) {
			d.Kind, d.Type = KindAutoBool, "AutoBool"
			d.Values = autoBoolValues
			d.Default = p.CurrentPick(id)
			return
		}
		d.Kind, d.Type = KindInteger, "Integer"
		d.Values = intValues
		if id == tidy.WrapLen {
			d.Values = wrapValues
		}
		d.Default = strconv.FormatUint(uint64(p.Int(id)), 10)
	default:
		d.Kind, d.Type = KindString, "String"
		d.HaveValues = false
		d.Picks = nil
		d.Default = p.Value(id)
	}
}

// isAutoBool reports whether an integer option is a tri-state boolean,
// recognised by "yes" in its pick list.
func isAutoBool(opt *tidy.Option) bool {
	if opt.Type() != tidy.TypeInteger {
		return false
	}
	for _, pick := range opt.PickList() {
		if pick == "yes" {
			return true
		}
	}
	return false
}

// DescribeName resolves name and describes it. ok is false for names the
// processor does not know.
func DescribeName(p Processor, name string) (d Descriptor, ok bool) {
	opt, ok := p.OptionByName(name)
	if !ok {
		return Descriptor{}, false
	}
	return Describe(p, opt), true
}
