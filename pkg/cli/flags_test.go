package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarnOptionNameNormalizeFunc_LogLevel(t *testing.T) {
	tests := []struct {
		level  string
		logged bool
	}{
		{"warn", false},
		{"debug", true},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tidy.log")
			opts := log.NewOptions()
			opts.Level = tt.level
			opts.OutputPaths = []string{path}
			log.Init(opts)
			defer log.Init(log.NewOptions())

			assert.Equal(t, "indent-spaces", string(WarnOptionNameNormalizeFunc(nil, "Indent_Spaces")))
			log.Flush()

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.logged {
				assert.Contains(t, string(data), "DEPRECATED")
			} else {
				assert.NotContains(t, string(data), "DEPRECATED")
			}
		})
	}
}
