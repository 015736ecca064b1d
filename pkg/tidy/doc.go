// Package tidy is the configurable markup processor behind the tidy
// command: a registry of configuration options, configuration files,
// character encodings, and the parse, repair, diagnose and save pipeline.
package tidy

import (
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/lwm-galactic/tidy/pkg/cli"
	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/spf13/pflag"
	"golang.org/x/net/html"
)

// Status is the outcome of a pipeline step. Negative values are failures.
type Status int

const (
	StatusFailed   Status = -1
	StatusOK       Status = 0
	StatusWarnings Status = 1
	StatusErrors   Status = 2
)

// Doc is one processor instance: its configuration and the document
// currently being processed.
type Doc struct {
	options []*Option
	byID    map[OptionID]*Option
	values  map[OptionID]*value
	flags   *pflag.FlagSet
	loc     *locale.Localizer

	errout  io.Writer
	errfile *os.File

	source   []byte
	root     *html.Node
	srcPath  string
	doctype  string
	reported bool

	errors       uint
	warnings     uint
	accessWarns  uint
	infos        uint
	shownErrors  uint
	parseStatus  Status
	bodyInferred bool
}

// DocOption configures a Doc.
type DocOption func(*Doc)

// WithErrorOutput sets the initial diagnostic stream (default stderr).
func WithErrorOutput(w io.Writer) DocOption {
	return func(d *Doc) {
		d.errout = w
	}
}

// New creates a processor with every option at its default value.
func New(opts ...DocOption) *Doc {
	loc, _ := locale.New("")
	d := &Doc{
		byID:   make(map[OptionID]*Option),
		values: make(map[OptionID]*value),
		flags:  pflag.NewFlagSet("config", pflag.ContinueOnError),
		loc:    loc,
		errout: os.Stderr,
	}
	cli.InitFlags(d.flags)

	defs := optionDefs()
	for i := range defs {
		o := &defs[i]
		d.options = append(d.options, o)
		d.byID[o.id] = o
		d.values[o.id] = &value{opt: o, doc: d}
	}
	for _, o := range d.options {
		d.values[o.id].reset()
		d.flags.Var(d.values[o.id], o.name, o.doc)
	}

	for _, opt := range opts {
		opt(d)
	}
	cli.PrintFlags(d.flags)

	return d
}

// Release closes the error file opened by SetErrorFile, if any.
func (d *Doc) Release() error {
	d.root = nil
	d.source = nil
	if d.errfile != nil {
		err := d.errfile.Close()
		d.errfile = nil
		d.errout = os.Stderr
		return err
	}
	return nil
}

// Options returns every option handle in declaration order.
func (d *Doc) Options() []*Option {
	return append([]*Option(nil), d.options...)
}

// SortedOptions returns every option handle sorted by name.
func (d *Doc) SortedOptions() []*Option {
	sorted := d.Options()
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].name < sorted[j].name
	})
	return sorted
}

// Option returns the handle for id.
func (d *Doc) Option(id OptionID) *Option {
	return d.byID[id]
}

// OptionByName looks an option up case-insensitively; "_" and "-" are
// interchangeable.
func (d *Doc) OptionByName(name string) (*Option, bool) {
	f := d.flags.Lookup(name)
	if f == nil {
		return nil, false
	}
	v, ok := f.Value.(*value)
	if !ok {
		return nil, false
	}
	return v.opt, true
}

// OptionDoc returns the documentation of opt, which may hold inline
// <code>, <em>, <strong>, <p> and <br/> markup.
func (d *Doc) OptionDoc(opt *Option) string {
	if opt == nil {
		return ""
	}
	return opt.doc
}

// OptionLinks returns the options related to opt.
func (d *Doc) OptionLinks(opt *Option) []*Option {
	if opt == nil {
		return nil
	}
	links := make([]*Option, 0, len(opt.links))
	for _, id := range opt.links {
		if o, ok := d.byID[id]; ok {
			links = append(links, o)
		}
	}
	return links
}

// Bool returns the value of a boolean option.
func (d *Doc) Bool(id OptionID) bool {
	v, ok := d.values[id]
	return ok && v.n != 0
}

// SetBool sets a boolean option.
func (d *Doc) SetBool(id OptionID, b bool) {
	if v, ok := d.values[id]; ok {
		v.n = 0
		if b {
			v.n = 1
		}
	}
}

// Int returns the value of an integer or pick option.
func (d *Doc) Int(id OptionID) uint {
	if v, ok := d.values[id]; ok {
		return v.n
	}
	return 0
}

// SetInt sets an integer or pick option.
func (d *Doc) SetInt(id OptionID, n uint) {
	if v, ok := d.values[id]; ok {
		v.n = n
	}
}

// Value returns the current value of id as a string; "" when unset.
func (d *Doc) Value(id OptionID) string {
	v, ok := d.values[id]
	if !ok {
		return ""
	}
	if v.opt.typ == TypeString || isTagList(id) {
		return v.String()
	}
	return strconv.FormatUint(uint64(v.n), 10)
}

// SetValue parses s into id. Read-only options can be set here; the
// user-facing ParseValue refuses them.
func (d *Doc) SetValue(id OptionID, s string) error {
	v, ok := d.values[id]
	if !ok {
		return newUnknownOptionError(strconv.Itoa(int(id)))
	}
	return v.set(s)
}

// CurrentPick returns the human readable value of a pick-based option.
func (d *Doc) CurrentPick(id OptionID) string {
	v, ok := d.values[id]
	if !ok || v.opt.picks == nil {
		return ""
	}
	return v.String()
}

// ResetToDefault restores id to its default value.
func (d *Doc) ResetToDefault(id OptionID) {
	if v, ok := d.values[id]; ok {
		v.reset()
	}
}

// DeclaredTags returns the tags declared through a tag-list option.
func (d *Doc) DeclaredTags(id OptionID) []string {
	if v, ok := d.values[id]; ok && isTagList(id) {
		return append([]string(nil), v.tags...)
	}
	return nil
}

// ParseValue sets the option called name from its textual value, as
// "--name value" on the command line or "name: value" in a file does.
func (d *Doc) ParseValue(name, s string) error {
	f := d.flags.Lookup(name)
	if f == nil {
		return newUnknownOptionError(name)
	}
	if err := f.Value.Set(s); err != nil {
		return err
	}
	f.Changed = true
	log.Debugw("option set", "option", name, "value", s)
	return nil
}

// Localizer returns the string table for the configured language.
func (d *Doc) Localizer() *locale.Localizer {
	return d.loc
}

// ErrorOutput returns the current diagnostic stream.
func (d *Doc) ErrorOutput() io.Writer {
	return d.errout
}

// SetErrorFile sends diagnostics to path, truncating it, and records it
// as the error-file option.
func (d *Doc) SetErrorFile(path string) (io.Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return d.errout, newIOError(err, ErrMsgOpenFile, path)
	}
	if d.errfile != nil {
		_ = d.errfile.Close()
	}
	d.errfile = f
	d.errout = f
	d.values[ErrFile].s = path
	return f, nil
}

// ErrorCount returns the errors found in the last processed document.
func (d *Doc) ErrorCount() uint { return d.errors }

// WarningCount returns the warnings found in the last processed document.
func (d *Doc) WarningCount() uint { return d.warnings }

// AccessWarningCount returns the accessibility warnings found in the last
// processed document.
func (d *Doc) AccessWarningCount() uint { return d.accessWarns }
