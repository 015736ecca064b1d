package report

import (
	"testing"

	"github.com/lwm-galactic/tidy/pkg/tidy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		option     string
		kind       Kind
		typ        string
		allowed    string
		def        string
		hasDefault bool
		haveValues bool
	}{
		{"wrap", KindInteger, "Integer", "0 (no wrapping), 1, 2, ...", "68", true, true},
		{"indent-spaces", KindInteger, "Integer", "0, 1, 2, ...", "2", true, true},
		{"indent", KindAutoBool, "AutoBool", "auto, y/n, yes/no, t/f, true/false, 1/0", "no", true, true},
		{"quiet", KindBoolean, "Boolean", "y/n, yes/no, t/f, true/false, 1/0", "no", true, true},
		{"newline", KindEnum, "enum", "LF, CRLF, CR", "<em>Platform dependent</em>", true, true},
		{"sort-attributes", KindEnum, "enum", "none, alpha", "none", true, true},
		{"accessibility-check", KindEnum, "enum",
			"0 (Tidy Classic), 1 (Priority 1 Checks), 2 (Priority 2 Checks), 3 (Priority 3 Checks)", "0 (Tidy Classic)", true, true},
		{"doctype", KindDocType, "DocType", "html5, omit, auto, strict, transitional, user", "auto", true, true},
		{"new-inline-tags", KindTagList, "Tag names", "tagX, tagY, ...", "", false, true},
		{"char-encoding", KindEncoding, "Encoding",
			"raw, ascii, latin0, latin1, utf8, iso2022, mac, win1252, ibm858, utf16le, utf16be, utf16, big5, shiftjis", "utf8", true, true},
		{"output-file", KindString, "String", "", "", false, false},
		{"language", KindString, "String", "", "en", true, false},
	}
	p := tidy.New()
	for _, tt := range tests {
		t.Run(tt.option, func(t *testing.T) {
			d, ok := DescribeName(p, tt.option)
			require.True(t, ok)
			assert.Equal(t, tt.option, d.Name)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.typ, d.Type)
			assert.Equal(t, tt.def, d.Default)
			assert.Equal(t, tt.hasDefault, d.HasDefault)
			assert.Equal(t, tt.haveValues, d.HaveValues)
			if tt.haveValues {
				assert.Equal(t, tt.allowed, d.Allowed())
			}
		})
	}
}

func TestDescribe_FollowsCurrentValues(t *testing.T) {
	p := tidy.New()
	require.NoError(t, p.ParseValue("wrap", "0"))
	require.NoError(t, p.ParseValue("indent", "auto"))
	require.NoError(t, p.ParseValue("doctype", "strict"))
	require.NoError(t, p.ParseValue("output-encoding", "latin1"))

	for name, want := range map[string]string{
		"wrap":            "0",
		"indent":          "auto",
		"doctype":         "strict",
		"output-encoding": "latin1",
	} {
		d, ok := DescribeName(p, name)
		require.True(t, ok)
		assert.Equal(t, want, d.Default, name)
	}
}

func TestDescribe_ReadOnlyAndCategory(t *testing.T) {
	p := tidy.New()

	d, ok := DescribeName(p, "doctype-mode")
	require.True(t, ok)
	assert.True(t, d.ReadOnly)
	assert.Equal(t, "markup", d.Category)

	d, ok = DescribeName(p, "WRAP")
	require.True(t, ok)
	assert.Equal(t, "print", d.Category)
}

func TestDescribeName_Unknown(t *testing.T) {
	_, ok := DescribeName(tidy.New(), "no-such-option")
	assert.False(t, ok)
}

func TestFatal(t *testing.T) {
	assert.Equal(t, "impossible value for id='9'", Fatal{ID: 9}.Error())
}
