package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/tidy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStream_Redirect(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")

	var def bytes.Buffer
	doc := tidy.New(tidy.WithErrorOutput(&def))
	s := NewErrorStream(doc)
	require.True(t, s.IsDefault())
	assert.Equal(t, &def, s.Writer())

	assert.False(t, s.Redirect(""))
	require.True(t, s.Redirect(first))
	assert.False(t, s.IsDefault())
	assert.Equal(t, first, doc.Value(tidy.ErrFile))

	s.Printf(locale.UnknownOption, 'z')
	assert.False(t, s.Redirect(first), "same file is not reopened")

	require.True(t, s.Redirect(second))
	assert.Equal(t, second, doc.Value(tidy.ErrFile))
	require.NoError(t, doc.Release())

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "unknown option: z\n", string(data))
	assert.Empty(t, def.String())
}

func TestErrorStream_RedirectFailure(t *testing.T) {
	var def bytes.Buffer
	doc := tidy.New(tidy.WithErrorOutput(&def))
	s := NewErrorStream(doc)

	bad := filepath.Join(t.TempDir(), "missing", "errs.txt")
	assert.False(t, s.Redirect(bad))
	assert.True(t, s.IsDefault())
	assert.Contains(t, def.String(), bad)
}

func TestErrorStream_Follow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errs.txt")
	doc := tidy.New(tidy.WithErrorOutput(&bytes.Buffer{}))
	s := NewErrorStream(doc)

	assert.False(t, s.Follow())
	require.NoError(t, doc.ParseValue("error-file", path))
	assert.True(t, s.Follow())
	assert.False(t, s.Follow())
	assert.False(t, s.IsDefault())
	require.NoError(t, doc.Release())
}
