package cmd

import (
	"encoding/json"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables configuring the command
// itself, such as TIDY_LOG_LEVEL.
const EnvPrefix = "TIDY"

// Options configures the command, as opposed to the markup processor
// which is configured through the command line and tidy configuration
// files.
type Options struct {
	Log *log.Options `json:"log" mapstructure:"log"`
}

// NewOptions returns the defaults.
func NewOptions() *Options {
	return &Options{
		Log: log.NewOptions(),
	}
}

// Complete overrides the defaults from the environment.
func (o *Options) Complete() error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log.level", o.Log.Level)
	v.SetDefault("log.format", o.Log.Format)
	v.SetDefault("log.output-paths", o.Log.OutputPaths)
	v.SetDefault("log.error-output-paths", o.Log.ErrorOutputPaths)
	v.SetDefault("log.disable-caller", o.Log.DisableCaller)
	v.SetDefault("log.disable-stacktrace", o.Log.DisableStacktrace)
	v.SetDefault("log.development", o.Log.Development)
	v.SetDefault("log.name", o.Log.Name)

	return v.Unmarshal(o)
}

// Validate checks the log options.
func (o *Options) Validate() []error {
	return o.Log.Validate()
}

func (o *Options) String() string {
	data, _ := json.Marshal(o)
	return string(data)
}
