package tidy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tidy.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "wrap: 72\nindent: auto\nquiet: yes\nnew-blocklevel-tags: [section2, aside2]\n")
	d := New()

	require.NoError(t, d.LoadConfig(path))
	assert.Equal(t, uint(72), d.Int(WrapLen))
	assert.Equal(t, AutoState, d.Int(IndentContent))
	assert.True(t, d.Bool(Quiet))
	assert.Equal(t, []string{"section2", "aside2"}, d.DeclaredTags(BlockTags))
}

func TestLoadConfig_BadEntriesStillApplyRest(t *testing.T) {
	path := writeConfig(t, "bogus: 1\nwrap: wide\nindent-spaces: 4\nnested:\n  key: value\n")
	d := New()

	err := d.LoadConfig(path)
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
	assert.Equal(t, uint(4), d.Int(IndentSpaces))
	assert.Equal(t, uint(68), d.Int(WrapLen))
}

func TestLoadConfig_MissingFile(t *testing.T) {
	err := New().LoadConfig(filepath.Join(t.TempDir(), "absent.conf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgLoadConfig)
}

func TestConfigString(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want string
		ok   bool
	}{
		{"nil", nil, "", true},
		{"string", "auto", "auto", true},
		{"true", true, "yes", true},
		{"false", false, "no", true},
		{"int", 72, "72", true},
		{"list", []interface{}{"a", "b"}, "a, b", true},
		{"map", map[string]interface{}{"a": 1}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := configString(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, FileExists(dir))
	assert.False(t, FileExists(filepath.Join(dir, "nope")))
	assert.True(t, FileExists(writeConfig(t, "wrap: 1\n")))
}
