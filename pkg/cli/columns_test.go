package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "short text", 20, []string{"short text"}},
		{"empty", "", 10, []string{""}},
		{"breaks at last space", "the quick brown fox", 10, []string{"the quick", "brown fox"}},
		{"hard cut of long word", "abcdefghijkl", 5, []string{"abcde", "fghij", "kl"}},
		{"newline first", "ab\ncd efgh", 20, []string{"ab", "cd efgh"}},
		{"blank line", "a\n\nb", 10, []string{"a", "", "b"}},
		{"trailing newline", "a\n", 10, []string{"a"}},
		{"no width", "anything at all", 0, []string{"anything at all"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_KeepsWordsAndWidth(t *testing.T) {
	text := "Tidy tries to wrap lines so that they do not exceed this length and never splits a word that fits."
	for _, width := range []int{12, 25, 40} {
		lines := Wrap(text, width)
		for _, line := range lines {
			assert.LessOrEqual(t, len([]rune(line)), width)
		}
		assert.Equal(t, strings.Fields(text), strings.Fields(strings.Join(lines, " ")))
	}
}

func TestWriteColumns(t *testing.T) {
	var buf bytes.Buffer
	err := WriteColumns(&buf, "%-6.6s|%-10.10s\n", []int{6, 10}, "-o <file>", "write output to the file")
	require.NoError(t, err)

	want := fmt.Sprintf("%-6.6s|%-10.10s\n", "-o", "write") +
		fmt.Sprintf("%-6.6s|%-10.10s\n", "<file>", "output to") +
		fmt.Sprintf("%-6.6s|%-10.10s\n", "", "the file")
	assert.Equal(t, want, buf.String())
}

func TestWriteColumns_LineCountIsLongestColumn(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("x ", 30)
	require.NoError(t, WriteColumns(&buf, "%s|%s\n", []int{5, 8}, "a", long))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, len(Wrap(long, 8)))
	assert.True(t, strings.HasPrefix(lines[0], "a|"))
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "|"), line)
	}
}

func TestWriteColumns_MismatchedWidths(t *testing.T) {
	err := WriteColumns(&bytes.Buffer{}, "%s\n", []int{1, 2}, "a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 widths for 1 texts")
}

func TestOptionNameNormalizeFunc(t *testing.T) {
	for in, want := range map[string]string{
		"wrap":        "wrap",
		"WRAP":        "wrap",
		"Output_File": "output-file",
	} {
		assert.Equal(t, want, string(OptionNameNormalizeFunc(nil, in)))
	}
}
