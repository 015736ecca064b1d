// Package driver turns the command line into work for the configurable
// processor: it walks the argument vector, applies driver switches and
// configuration options, answers the informational commands and runs
// every named source through parse, repair, diagnostics and save.
package driver

import (
	"io"

	"github.com/lwm-galactic/tidy/pkg/report"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

// Processor is everything the driver needs from the configurable
// processor. *tidy.Doc implements it.
type Processor interface {
	report.Processor

	Option(id tidy.OptionID) *tidy.Option
	Bool(id tidy.OptionID) bool
	SetBool(id tidy.OptionID, b bool)
	SetInt(id tidy.OptionID, n uint)
	SetValue(id tidy.OptionID, s string) error
	ResetToDefault(id tidy.OptionID)
	ParseValue(name, s string) error
	LoadConfig(path string) error
	SetCharEncoding(name string) error

	ErrorOutput() io.Writer
	SetErrorFile(path string) (io.Writer, error)

	ParseFile(path string) (tidy.Status, error)
	ParseReader(r io.Reader) (tidy.Status, error)
	CleanAndRepair() (tidy.Status, error)
	RunDiagnostics() (tidy.Status, error)
	ReportDoctype()
	SaveFile(path string) (tidy.Status, error)
	SaveWriter(w io.Writer) (tidy.Status, error)

	ErrorCount() uint
	WarningCount() uint
	AccessWarningCount() uint
	ErrorSummary()
	GeneralInfo()
	Release() error
}

var _ Processor = (*tidy.Doc)(nil)
