package cli

import (
	"strings"

	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/spf13/pflag"
)

// OptionNameNormalizeFunc folds option names to lower case and changes
// "_" separators to "-", so "Wrap", "WRAP" and "output_file" all resolve.
func OptionNameNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	name = strings.ToLower(name)
	if strings.Contains(name, "_") {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	}
	return pflag.NormalizedName(name)
}

// WarnOptionNameNormalizeFunc normalizes like OptionNameNormalizeFunc and
// notes names spelled with "_" separators in the debug log.
func WarnOptionNameNormalizeFunc(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if strings.Contains(name, "_") {
		newName := OptionNameNormalizeFunc(f, name)
		log.Debugf("%s is DEPRECATED and will be removed in a future version. Use %s instead.", name, newName)

		return newName
	}
	return OptionNameNormalizeFunc(f, name)
}

// InitFlags installs the option name normalizer on flags.
func InitFlags(flags *pflag.FlagSet) {
	flags.SetNormalizeFunc(WarnOptionNameNormalizeFunc)
}

// PrintFlags logs the flags in the flagset.
func PrintFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(flag *pflag.Flag) {
		log.Debugf("FLAG: --%s=%q", flag.Name, flag.Value)
	})
}
