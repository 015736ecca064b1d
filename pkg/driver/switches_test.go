package driver

import (
	"testing"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	tests := []struct {
		arg  string
		want string
	}{
		{"output", "-output <%s>"},
		{"-output-file", "-output <%s>"},
		{"O", "-output <%s>"},
		{"WRAP", "-wrap <%s>"},
		{"-wrap", "-wrap <%s>"},
		{"change", "-modify"},
		{"update", "-modify"},
		{"asxhtml", "-asxml"},
		{"lang", "-language <%s>"},
		{"?", "-help"},
		{"?x", "-help"},
		{"-help", "-help"},
		{"-version", "-version"},
		{"utf16le", "-utf16le"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			s, ok := r.Lookup(tt.arg)
			require.True(t, ok)
			assert.Equal(t, tt.want, s.names[0])
		})
	}

	for _, arg := range []string{"i", "-indent", "-access", "bogus", ""} {
		_, ok := r.Lookup(arg)
		assert.False(t, ok, arg)
	}
}

func TestRegistry_Short(t *testing.T) {
	r := NewRegistry()
	for _, c := range "iucgbnmeq" {
		s, ok := r.Short(c)
		require.True(t, ok, string(c))
		assert.False(t, s.act.informational())
	}
	_, ok := r.Short('o')
	assert.False(t, ok)
}

func TestRegistry_KeysAreUnique(t *testing.T) {
	r := NewRegistry()
	total := 0
	for _, s := range r.switches {
		require.NotEmpty(t, s.keys, s.names[0])
		total += len(s.keys)
	}
	assert.Len(t, r.byKey, total)
}

func TestRegistry_Docs(t *testing.T) {
	r := NewRegistry()

	en, err := locale.New("en")
	require.NoError(t, err)
	docs := r.Docs(en)
	require.Len(t, docs, len(switchTable))

	assert.Equal(t, report.SwitchDoc{
		Category:    report.FileManip,
		Names:       []string{"-output <file>", "-o <file>"},
		Description: "write output to the specified <file>",
		EqConfig:    "output-file: <file>",
	}, docs[0])
	assert.Equal(t, "", docs[1].EqConfig)
	assert.Equal(t, []string{"-help", "-h", "-?"}, docs[len(docs)-6].Names)
	assert.Equal(t, []string{"-help-option <option>"}, docs[len(docs)-1].Names)

	es, err := locale.New("es")
	require.NoError(t, err)
	docs = r.Docs(es)
	assert.Equal(t, []string{"-output <archivo>", "-o <archivo>"}, docs[0].Names)
	assert.Equal(t, "output-file: <archivo>", docs[0].EqConfig)
	assert.Equal(t, "wrap: <columna>", docs[5].EqConfig)
}

func TestRegistry_CategoriesAreGrouped(t *testing.T) {
	docs := NewRegistry().Docs(mustEnglish(t))
	for i := 1; i < len(docs); i++ {
		assert.LessOrEqual(t, docs[i-1].Category, docs[i].Category, docs[i].Names[0])
	}
}

func mustEnglish(t *testing.T) *locale.Localizer {
	t.Helper()
	loc, err := locale.New("en")
	require.NoError(t, err)
	return loc
}
