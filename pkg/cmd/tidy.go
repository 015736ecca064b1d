// Package cmd assembles the tidy command from the application framework,
// the markup processor and the command line driver.
package cmd

import (
	"github.com/lwm-galactic/tidy/pkg/app"
	"github.com/lwm-galactic/tidy/pkg/driver"
	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

const description = `Utility to clean up and pretty print HTML/XHTML/XML.

Run with -help for the command line switches and -help-config for the
configuration options. The command itself logs according to the
TIDY_LOG_* environment variables.`

// NewApp returns the tidy application. prog is the program path shown in
// help output; opts configure the driver of every run.
func NewApp(prog string, opts ...driver.Option) *app.App {
	o := NewOptions()
	return app.NewApp("HTML Tidy", "tidy",
		app.WithDescription(description),
		app.WithOptions(o),
		app.WithSilence(),
		app.WithRunFunc(run(prog, o, opts)),
	)
}

func run(prog string, o *Options, opts []driver.Option) app.RunFunc {
	return func(_ app.CliOptions, args []string) error {
		log.Init(o.Log)
		defer log.Flush()

		code := driver.New(prog, tidy.New(), opts...).Run(args)
		log.Debugw("tidy finished", "args", args, "status", code)
		if code != driver.ExitOK {
			return &app.ExitError{Code: code}
		}
		return nil
	}
}
