package tidy

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// LoadConfig applies a "name: value" configuration file. Entries are
// applied in name order; a bad entry is skipped and reported in the
// returned error while the remaining entries still apply.
func (d *Doc) LoadConfig(path string) error {
	if _, err := os.Stat(path); err != nil {
		return newIOError(err, ErrMsgLoadConfig, path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return newIOError(err, ErrMsgLoadConfig, path)
	}

	settings := v.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs error
	for _, k := range keys {
		raw, ok := configString(settings[k])
		if !ok {
			errs = multierr.Append(errs, newMalformedConfigError(path, k))
			continue
		}
		if err := d.ParseValue(k, raw); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	log.Debugw("configuration loaded", "path", path, "entries", len(keys), "errors", len(multierr.Errors(errs)))

	return errs
}

// configString renders a decoded configuration value the way it was
// written. Lists become comma separated; nested maps are rejected.
func configString(raw interface{}) (string, bool) {
	switch val := raw.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case bool:
		if val {
			return "yes", true
		}
		return "no", true
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, e := range val {
			s, ok := configString(e)
			if !ok {
				return "", false
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, ", "), true
	case map[string]interface{}:
		return "", false
	}
	return fmt.Sprint(raw), true
}

// FileExists reports whether path names a readable file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
