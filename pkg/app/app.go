package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/spf13/cobra"
)

var (
	progressMessage = color.GreenString("==>")
)

// App is model for command-line-application.
type App struct {
	// commandName: cli executable file name.
	commandName string
	// name: view for user.
	name string
	// description: executable file description.
	description string
	// options: app configuration items, read from the environment rather
	// than the command line.
	options CliOptions
	// runFunc: cli entrance func.
	runFunc RunFunc
	// silence: -true startup information is not logged.
	silence bool

	stdout io.Writer
	stderr io.Writer
	cmd    *cobra.Command
}

// RunFunc defines the application's startup callback function. args is
// the command line after the program name, passed through untouched.
type RunFunc func(options CliOptions, args []string) error

// ExitError asks the application to exit with Code without printing
// anything more.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Option defines optional parameters for initializing the application structure.
type Option func(*App)

func WithOptions(opt CliOptions) Option {
	return func(a *App) {
		a.options = opt
	}
}

// WithRunFunc is used to set the application startup function option.
func WithRunFunc(run RunFunc) Option {
	return func(a *App) {
		a.runFunc = run
	}
}

// WithDescription is used to set the description of the application.
func WithDescription(desc string) Option {
	return func(a *App) {
		a.description = desc
	}
}

// WithSilence sets the application to silent mode, in which the program startup
// information and configuration are not logged.
func WithSilence() Option {
	return func(a *App) {
		a.silence = true
	}
}

// WithOutput sets the streams used for the application's own messages.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) {
		a.stdout = stdout
		a.stderr = stderr
	}
}

// NewApp creates a new application instance based on the given application name,
// command name, and other options.
func NewApp(name string, commandName string, opts ...Option) *App {
	a := &App{
		name:        name,
		commandName: commandName,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}

	for _, o := range opts {
		o(a)
	}

	a.buildCommand()

	return a
}

// The program parses its own arguments: single dash long switches and
// clustered letters are not something pflag understands.
func (a *App) buildCommand() {
	cmd := cobra.Command{
		Use:                FormatBaseName(a.commandName),
		Short:              a.name,
		Long:               a.description,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
	}

	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	if a.runFunc != nil {
		cmd.RunE = a.runCommand
	}
	a.cmd = &cmd
}

// Execute runs the application with args and returns the exit status.
func (a *App) Execute(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(a.stderr, "%v %v\n", color.RedString("Error:"), r)
			code = 1
		}
	}()

	if args == nil {
		args = []string{}
	}
	a.cmd.SetArgs(args)

	err := a.cmd.Execute()
	if err == nil {
		return 0
	}
	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	fmt.Fprintf(a.stderr, "%v %v\n", color.RedString("Error:"), err)
	return 1
}

// Run is used to launch the application.
func (a *App) Run() {
	os.Exit(a.Execute(os.Args[1:]))
}

// to run app.
func (a *App) runCommand(cmd *cobra.Command, args []string) error {
	if a.options != nil {
		if err := a.applyOptionRules(); err != nil {
			return err
		}
	}
	if !a.silence {
		log.Infof("%v Starting %s ...", progressMessage, a.name)
		printWorkingDir()
	}
	// run application
	return a.runFunc(a.options, args)
}

func (a *App) applyOptionRules() error {
	if completableOptions, ok := a.options.(CompletableOptions); ok {
		if err := completableOptions.Complete(); err != nil {
			return err
		}
	}

	if errs := a.options.Validate(); len(errs) != 0 {
		return fmt.Errorf("invalid options: %v", errs)
	}

	if printableOptions, ok := a.options.(PrintableOptions); ok && !a.silence {
		log.Infof("%v Config: `%s`", progressMessage, printableOptions.String())
	}

	return nil
}

// FormatBaseName is formatted as an executable file name under different
// operating systems according to the given name.
func FormatBaseName(basename string) string {
	// Make case-insensitive and strip executable suffix if present
	if runtime.GOOS == "windows" {
		basename = strings.ToLower(basename)
		basename = strings.TrimSuffix(basename, ".exe")
	}

	return basename
}

// to show working dir
func printWorkingDir() {
	wd, _ := os.Getwd()
	log.Infof("%v WorkingDir: %s", progressMessage, wd)
}
