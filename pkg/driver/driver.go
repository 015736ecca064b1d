package driver

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/lwm-galactic/tidy/pkg/report"
	"github.com/lwm-galactic/tidy/pkg/tidy"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Exit statuses of a processing run.
const (
	ExitOK       = 0
	ExitWarnings = 1
	ExitErrors   = 2
)

// EnvConfigFile names the environment variable holding a configuration
// file path.
const EnvConfigFile = "HTML_TIDY"

// Driver runs one command line against a processor.
type Driver struct {
	prog     string
	proc     Processor
	switches *Registry
	errs     *ErrorStream

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	systemConfig string
	userConfig   string
}

// Option configures a Driver.
type Option func(*Driver)

// WithStdin sets the stream read when no source path is given.
func WithStdin(r io.Reader) Option {
	return func(d *Driver) {
		d.stdin = r
	}
}

// WithStdout sets the stream receiving reports and tidied markup.
func WithStdout(w io.Writer) Option {
	return func(d *Driver) {
		d.stdout = w
	}
}

// WithConfigFiles overrides the system and user configuration files read
// before the command line. An empty path skips that file.
func WithConfigFiles(system, user string) Option {
	return func(d *Driver) {
		d.systemConfig = system
		d.userConfig = user
	}
}

// New returns a driver for p. prog is the program path shown in help.
func New(prog string, p Processor, opts ...Option) *Driver {
	system, user := defaultConfigFiles()
	d := &Driver{
		prog:         prog,
		proc:         p,
		switches:     NewRegistry(),
		errs:         NewErrorStream(p),
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       p.ErrorOutput(),
		systemConfig: system,
		userConfig:   user,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func defaultConfigFiles() (system, user string) {
	if runtime.GOOS != "windows" {
		system = "/etc/tidy.conf"
	}
	if home, err := os.UserHomeDir(); err == nil {
		user = filepath.Join(home, ".tidyrc")
	}
	return system, user
}

// RunAccumulator sums the message counts of every processed source.
type RunAccumulator struct {
	Errors         uint
	Warnings       uint
	AccessWarnings uint
}

// Add records the counts of the document p just processed.
func (a *RunAccumulator) Add(p Processor) {
	a.Errors += p.ErrorCount()
	a.Warnings += p.WarningCount()
	a.AccessWarnings += p.AccessWarningCount()
}

// ExitStatus is 2 when any source had errors, 1 when any had warnings and
// 0 otherwise.
func (a RunAccumulator) ExitStatus() int {
	switch {
	case a.Errors > 0:
		return ExitErrors
	case a.Warnings > 0:
		return ExitWarnings
	}
	return ExitOK
}

// Run processes args, the command line without the program name, and
// returns the exit status. Informational commands return 0 without
// processing any source.
func (d *Driver) Run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			code = d.fatal(r)
		}
	}()

	d.loadInitialConfig()

	c := NewCursor(args)
	var acc RunAccumulator
	processed := 0
	for {
		src, ok, exit := d.next(c)
		if exit {
			d.release()
			return ExitOK
		}
		if !ok {
			if processed == 0 {
				d.process("", false, true, &acc)
			}
			break
		}
		d.process(src, true, processed == 0, &acc)
		processed++
	}

	return d.finalize(acc)
}

// process runs one source through parse, repair, diagnostics and save.
// An empty unnamed source is standard input.
func (d *Driver) process(src string, named, first bool, acc *RunAccumulator) {
	p := d.proc

	var (
		status tidy.Status
		err    error
	)
	if named {
		if p.Bool(tidy.Emacs) {
			_ = p.SetValue(tidy.EmacsFile, src)
		}
		status, err = p.ParseFile(src)
	} else {
		src = "stdin"
		status, err = p.ParseReader(d.stdin)
	}

	if status >= 0 {
		status, err = p.CleanAndRepair()
	}
	if status >= 0 {
		status, err = p.RunDiagnostics()
		if first {
			d.forceDoctype()
		}
	}
	if status > tidy.StatusWarnings && !p.Bool(tidy.ForceOutput) {
		status = tidy.StatusFailed
	}

	if status >= 0 && p.Bool(tidy.ShowMarkup) {
		out := p.Value(tidy.OutFile)
		switch {
		case named && p.Bool(tidy.WriteBack):
			status, err = p.SaveFile(src)
		case out != "":
			status, err = p.SaveFile(out)
		default:
			status, err = p.SaveWriter(d.stdout)
		}
	}

	acc.Add(p)
	log.Infow("source processed", "source", src, "status", int(status),
		"errors", p.ErrorCount(), "warnings", p.WarningCount(), "error", err)
}

// forceDoctype reports the document type even when quiet mode or
// show-info would mute it.
func (d *Driver) forceDoctype() {
	p := d.proc
	quiet, info := p.Bool(tidy.Quiet), p.Bool(tidy.ShowInfo)
	p.SetBool(tidy.Quiet, false)
	p.SetBool(tidy.ShowInfo, true)
	p.ReportDoctype()
	p.SetBool(tidy.Quiet, quiet)
	p.SetBool(tidy.ShowInfo, info)
}

func (d *Driver) finalize(acc RunAccumulator) int {
	p := d.proc
	quiet := p.Bool(tidy.Quiet)

	if !quiet && d.errs.IsDefault() && acc.Errors == 0 {
		fmt.Fprint(d.errs.Writer(), "\n")
	}
	if acc.Errors+acc.Warnings > 0 && !quiet {
		p.ErrorSummary()
	}
	if !quiet {
		p.GeneralInfo()
	}
	d.release()

	log.Debugw("run finished", "errors", acc.Errors, "warnings", acc.Warnings,
		"access-warnings", acc.AccessWarnings)
	return acc.ExitStatus()
}

func (d *Driver) release() {
	if err := d.proc.Release(); err != nil {
		log.Warnw("cannot release processor", "error", err)
	}
}

// loadInitialConfig applies the system configuration file, then the file
// named by HTML_TIDY or, without it, the user configuration file.
func (d *Driver) loadInitialConfig() {
	if d.systemConfig != "" && tidy.FileExists(d.systemConfig) {
		d.loadConfig(d.systemConfig)
	}

	env := viper.New()
	if err := env.BindEnv("config", EnvConfigFile); err != nil {
		log.Warnw("cannot read environment", "variable", EnvConfigFile, "error", err)
	}
	if path := env.GetString("config"); path != "" {
		d.loadConfig(path)
	} else if d.userConfig != "" && tidy.FileExists(d.userConfig) {
		d.loadConfig(d.userConfig)
	}
	d.errs.Follow()
}

// loadConfig applies a configuration file, reporting how many entries
// failed.
func (d *Driver) loadConfig(path string) {
	err := d.proc.LoadConfig(path)
	if err == nil {
		return
	}
	errs := multierr.Errors(err)
	for _, e := range errs {
		log.Warnw("configuration entry rejected", "path", path, "error", e)
	}
	d.errs.Printf(locale.LoadConfigFailed, path, len(errs))
}

// fatal reports a condition the run cannot survive and returns exit
// status 1. Panics other than an impossible option category or a failed
// allocation are not ours to handle.
func (d *Driver) fatal(r interface{}) int {
	loc := d.proc.Localizer()
	switch v := r.(type) {
	case report.Fatal:
		fmt.Fprint(d.stderr, loc.Sprintf(locale.FatalError, v.ID))
	case runtime.Error:
		if !allocationFailure(v) {
			panic(r)
		}
		fmt.Fprint(d.stderr, loc.String(locale.OutOfMemory))
	default:
		panic(r)
	}
	log.Errorw("fatal condition", "panic", fmt.Sprint(r))
	return 1
}

func allocationFailure(err runtime.Error) bool {
	msg := err.Error()
	return strings.Contains(msg, "makeslice") ||
		strings.Contains(msg, "makemap") ||
		strings.Contains(msg, "out of memory")
}
