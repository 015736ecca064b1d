package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lwm-galactic/tidy/pkg/report"
	"github.com/lwm-galactic/tidy/pkg/tidy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	cleanPage   = "<!DOCTYPE html><title>t</title><p>x</p>"
	warningPage = "<title>t</title><p>x</p>"
	errorPage   = "<!DOCTYPE html><title>t</title><blorp>x</blorp>"
)

type harness struct {
	doc    *tidy.Doc
	driver *Driver
	stdout *bytes.Buffer
	errs   *bytes.Buffer
}

func newHarness(t *testing.T, stdin string, opts ...Option) *harness {
	t.Helper()
	t.Setenv(EnvConfigFile, "")

	h := &harness{stdout: &bytes.Buffer{}, errs: &bytes.Buffer{}}
	h.doc = tidy.New(tidy.WithErrorOutput(h.errs))
	opts = append([]Option{
		WithStdin(strings.NewReader(stdin)),
		WithStdout(h.stdout),
		WithConfigFiles("", ""),
	}, opts...)
	h.driver = New("/usr/bin/tidy", h.doc, opts...)
	return h
}

func (h *harness) run(args ...string) int {
	return h.driver.Run(args)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_Version(t *testing.T) {
	h := newHarness(t, cleanPage)
	require.Equal(t, ExitOK, h.run("-version"))

	var want bytes.Buffer
	require.NoError(t, report.Version(&want, h.doc.Localizer()))
	assert.Equal(t, want.String(), h.stdout.String())
	assert.Empty(t, h.errs.String())

	fresh := tidy.New()
	for _, opt := range fresh.Options() {
		assert.Equal(t, fresh.Value(opt.ID()), h.doc.Value(opt.ID()), opt.Name())
	}
}

func TestRun_WrapConsumesNumber(t *testing.T) {
	page := writeFile(t, t.TempDir(), "page.html", cleanPage)

	h := newHarness(t, "")
	assert.Equal(t, ExitOK, h.run("-wrap", "0", page))
	assert.Equal(t, uint(0), h.doc.Int(tidy.WrapLen))
	assert.Contains(t, h.stdout.String(), "<title>t</title>")
}

func TestRun_WrapLeavesPathAsSource(t *testing.T) {
	page := writeFile(t, t.TempDir(), "page.html", cleanPage)

	h := newHarness(t, "")
	assert.Equal(t, ExitOK, h.run("-wrap", page))
	assert.Equal(t, uint(68), h.doc.Int(tidy.WrapLen))
	assert.Contains(t, h.stdout.String(), "<p>x</p>")
}

func TestRun_SourcesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.html", warningPage)
	second := writeFile(t, dir, "second.html", errorPage)

	h := newHarness(t, "")
	assert.Equal(t, ExitErrors, h.run("--gnu-emacs", "yes", first, second))

	errs := h.errs.String()
	i := strings.Index(errs, first+":1:1: Warning: missing <!DOCTYPE> declaration")
	j := strings.Index(errs, second+":")
	require.GreaterOrEqual(t, i, 0)
	require.GreaterOrEqual(t, j, 0)
	assert.Less(t, i, j)
	assert.Contains(t, errs, "Error: <blorp> is not recognized!")
	assert.Contains(t, errs, "This document has errors that must be fixed")
	assert.Equal(t, 1, strings.Count(h.stdout.String(), "<p>x</p>"))
}

func TestRun_ExitStatus(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  int
	}{
		{"clean", []string{cleanPage}, ExitOK},
		{"warnings", []string{cleanPage, warningPage}, ExitWarnings},
		{"errors", []string{cleanPage, errorPage}, ExitErrors},
		{"errors then warnings", []string{errorPage, warningPage}, ExitErrors},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			var args []string
			for i, page := range tt.pages {
				args = append(args, writeFile(t, dir, fmt.Sprintf("p%d.html", i), page))
			}
			h := newHarness(t, "")
			assert.Equal(t, tt.want, h.run(args...))
		})
	}
}

func TestRun_MissingSource(t *testing.T) {
	h := newHarness(t, "")
	path := filepath.Join(t.TempDir(), "absent.html")
	assert.Equal(t, ExitErrors, h.run(path))
	assert.Contains(t, h.errs.String(), fmt.Sprintf("Can't open %q", path))
	assert.Empty(t, h.stdout.String())
}

func TestRun_Stdin(t *testing.T) {
	h := newHarness(t, cleanPage)
	assert.Equal(t, ExitOK, h.run())
	assert.Contains(t, h.stdout.String(), "<p>x</p>")

	errs := h.errs.String()
	assert.Contains(t, errs, `Info: Doctype given is "html"`)
	assert.Contains(t, errs, "No warnings or errors were found.")
	assert.Contains(t, errs, "About HTML Tidy")
	assert.Equal(t, 1, strings.Count(errs, "Doctype given"))
}

func TestRun_TrailingOptionsDoNotReadStdin(t *testing.T) {
	page := writeFile(t, t.TempDir(), "page.html", cleanPage)

	h := newHarness(t, errorPage)
	assert.Equal(t, ExitOK, h.run(page, "-q"))
	assert.NotContains(t, h.errs.String(), "blorp")
}

func TestRun_QuietStillReportsDoctype(t *testing.T) {
	h := newHarness(t, cleanPage)
	assert.Equal(t, ExitOK, h.run("-q"))

	errs := h.errs.String()
	assert.Contains(t, errs, `Info: Doctype given is "html"`)
	assert.NotContains(t, errs, "No warnings or errors")
	assert.NotContains(t, errs, "About HTML Tidy")
	assert.True(t, h.doc.Bool(tidy.Quiet))
	assert.True(t, h.doc.Bool(tidy.ShowInfo))
}

func TestRun_HelpOption(t *testing.T) {
	t.Run("unknown", func(t *testing.T) {
		h := newHarness(t, "")
		assert.Equal(t, ExitOK, h.run("-help-option", "bogus"))
		assert.Equal(t, "\n`--bogus`\n\n"+fmt.Sprintf("%-68.68s\n", "unknown option")+"\n", h.stdout.String())
	})
	t.Run("known", func(t *testing.T) {
		h := newHarness(t, "")
		assert.Equal(t, ExitOK, h.run("-help-option", "wrap"))
		assert.True(t, strings.HasPrefix(h.stdout.String(), "\n`--wrap`\n\n"))
		assert.Contains(t, h.stdout.String(), "right margin")
	})
	t.Run("missing name", func(t *testing.T) {
		h := newHarness(t, "")
		assert.Equal(t, ExitOK, h.run("-help-option"))
		assert.Equal(t, "A option name must be specified.\n", h.stdout.String())
	})
}

func TestRun_InformationalCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-help"}, "tidy [options...] [file...]"},
		{[]string{"-h"}, "-output <file>"},
		{[]string{"--help"}, "Tidy Configuration Options"},
		{[]string{"-?"}, "File manipulation\n-----------------\n"},
		{[]string{"-?x"}, "tidy [options...] [file...]"},
		{[]string{"-language", "es", "-help"}, "-output <archivo>"},
		{[]string{"-xml-help"}, "<cmdline version=\""},
		{[]string{"-help-config"}, "Allowable values"},
		{[]string{"-xml-config"}, "<config version=\""},
		{[]string{"-show-config"}, "Current Value"},
		{[]string{"--wrap", "99", "-show-config"}, "99"},
		{[]string{"-V"}, "HTML Tidy"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			h := newHarness(t, cleanPage)
			assert.Equal(t, ExitOK, h.run(append(tt.args, "ignored.html")...))
			assert.Contains(t, h.stdout.String(), tt.want)
			assert.NotContains(t, h.errs.String(), "ignored.html")
		})
	}
}

func TestRun_Switches(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, d *tidy.Doc)
	}{
		{"indent", []string{"-indent"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, tidy.AutoState, d.Int(tidy.IndentContent))
		}},
		{"indent restores zero spaces", []string{"--indent-spaces", "0", "-i"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, uint(2), d.Int(tidy.IndentSpaces))
		}},
		{"cluster", []string{"-umb"}, func(t *testing.T, d *tidy.Doc) {
			assert.True(t, d.Bool(tidy.UpperCaseTags))
			assert.True(t, d.Bool(tidy.WriteBack))
			assert.True(t, d.Bool(tidy.MakeBare))
		}},
		{"errors", []string{"-errors"}, func(t *testing.T, d *tidy.Doc) {
			assert.False(t, d.Bool(tidy.ShowMarkup))
		}},
		{"xml flags", []string{"-xml", "-ASXHTML", "-ashtml", "-omit"}, func(t *testing.T, d *tidy.Doc) {
			assert.True(t, d.Bool(tidy.XMLTags))
			assert.True(t, d.Bool(tidy.XHTMLOut))
			assert.True(t, d.Bool(tidy.HTMLOut))
			assert.True(t, d.Bool(tidy.OmitOptionalTags))
		}},
		{"clean and numeric", []string{"-clean", "-gdoc", "-numeric"}, func(t *testing.T, d *tidy.Doc) {
			assert.True(t, d.Bool(tidy.MakeClean))
			assert.True(t, d.Bool(tidy.GDocClean))
			assert.True(t, d.Bool(tidy.NumEntities))
		}},
		{"encoding", []string{"-latin1"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, "latin1", d.EncodingName(tidy.InCharEncoding))
		}},
		{"output", []string{"-o", "out.html"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, "out.html", d.Value(tidy.OutFile))
		}},
		{"legacy output", []string{"--output-file", "out.html"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, "out.html", d.Value(tidy.OutFile))
		}},
		{"access", []string{"-access", "2"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, uint(2), d.Int(tidy.AccessibilityCheckLevel))
		}},
		{"access not a number", []string{"-access", "-q"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, uint(0), d.Int(tidy.AccessibilityCheckLevel))
			assert.True(t, d.Bool(tidy.Quiet))
		}},
		{"wrap not a number", []string{"-w", "-q"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, uint(68), d.Int(tidy.WrapLen))
			assert.True(t, d.Bool(tidy.Quiet))
		}},
		{"passthrough", []string{"--indent-spaces", "4", "--SORT_ATTRIBUTES", "alpha"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, uint(4), d.Int(tidy.IndentSpaces))
			assert.Equal(t, "alpha", d.CurrentPick(tidy.SortAttributes))
		}},
		{"language", []string{"-lang", "es"}, func(t *testing.T, d *tidy.Doc) {
			assert.Equal(t, "es", d.Value(tidy.Language))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "")
			require.Equal(t, ExitOK, h.run(append(tt.args, "-version")...))
			assert.Empty(t, h.errs.String())
			tt.check(t, h.doc)
		})
	}
}

func TestRun_RecoverableArgumentErrors(t *testing.T) {
	t.Run("unknown short option", func(t *testing.T) {
		h := newHarness(t, "")
		require.Equal(t, ExitOK, h.run("-qzx", "-version"))
		assert.Contains(t, h.errs.String(), "unknown option: z\n")
		assert.Contains(t, h.errs.String(), "unknown option: x\n")
		assert.True(t, h.doc.Bool(tidy.Quiet))
	})
	t.Run("unknown passthrough leaves value", func(t *testing.T) {
		h := newHarness(t, "")
		require.Equal(t, ExitOK, h.run("--bogus", "-version"))
		assert.Contains(t, h.errs.String(), `can't set option "bogus" to "-version"`)
		assert.Contains(t, h.stdout.String(), "HTML Tidy")
	})
	t.Run("bad passthrough value", func(t *testing.T) {
		h := newHarness(t, "")
		require.Equal(t, ExitOK, h.run("--indent", "sideways", "-version"))
		assert.Contains(t, h.errs.String(), `can't set option "indent" to "sideways"`)
		assert.Contains(t, h.errs.String(), tidy.ErrMsgInvalidValue)
	})
	t.Run("read-only option", func(t *testing.T) {
		h := newHarness(t, "")
		require.Equal(t, ExitOK, h.run("--doctype-mode", "strict", "-version"))
		assert.Contains(t, h.errs.String(), tidy.ErrMsgReadOnlyOption)
	})
}

func TestRun_XMLInputKeepsCase(t *testing.T) {
	h := newHarness(t, `<Root><Item a="1">x</Item></Root>`)
	assert.Equal(t, ExitOK, h.run("-xml", "-q"))
	assert.Equal(t, "<Root>\n<Item a=\"1\">x</Item>\n</Root>\n", h.stdout.String())
}

func TestRun_WrapWithoutValue(t *testing.T) {
	h := newHarness(t, cleanPage)
	assert.Equal(t, ExitOK, h.run("-wrap"))
	assert.Equal(t, uint(0), h.doc.Int(tidy.WrapLen))
}

func TestRun_Outputs(t *testing.T) {
	t.Run("output file", func(t *testing.T) {
		dir := t.TempDir()
		page := writeFile(t, dir, "page.html", cleanPage)
		out := filepath.Join(dir, "out.html")

		h := newHarness(t, "")
		require.Equal(t, ExitOK, h.run("-o", out, page))
		assert.Empty(t, h.stdout.String())
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<p>x</p>")
	})
	t.Run("write back", func(t *testing.T) {
		page := writeFile(t, t.TempDir(), "page.html", cleanPage)

		h := newHarness(t, "")
		require.Equal(t, ExitOK, h.run("-m", page))
		assert.Empty(t, h.stdout.String())
		data, err := os.ReadFile(page)
		require.NoError(t, err)
		assert.Contains(t, string(data), `<meta name="generator"`)
	})
	t.Run("errors only", func(t *testing.T) {
		h := newHarness(t, cleanPage)
		require.Equal(t, ExitOK, h.run("-e"))
		assert.Empty(t, h.stdout.String())
	})
	t.Run("force output", func(t *testing.T) {
		h := newHarness(t, errorPage)
		require.Equal(t, ExitErrors, h.run("--force-output", "yes"))
		assert.Contains(t, h.stdout.String(), "blorp")
		assert.NotContains(t, h.errs.String(), "This document has errors")
	})
}

func TestRun_ErrorFile(t *testing.T) {
	dir := t.TempDir()
	errFile := filepath.Join(dir, "errs.txt")

	h := newHarness(t, warningPage)
	require.Equal(t, ExitWarnings, h.run("-f", errFile, "--error-file", errFile))
	assert.Empty(t, h.errs.String())

	data, err := os.ReadFile(errFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Warning: missing <!DOCTYPE> declaration")
	assert.Contains(t, string(data), "About HTML Tidy")
	assert.False(t, strings.HasPrefix(string(data), "\n"))
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "tidy.conf", "wrap: 40\nbogus: 1\nindent: auto\n")

	h := newHarness(t, "")
	require.Equal(t, ExitOK, h.run("-config", cfg, "-version"))
	assert.Equal(t, uint(40), h.doc.Int(tidy.WrapLen))
	assert.Equal(t, tidy.AutoState, h.doc.Int(tidy.IndentContent))
	assert.Contains(t, h.errs.String(), fmt.Sprintf("Loading config file %q failed, err = 1", cfg))
}

func TestRun_ConfigFileRedirectsErrors(t *testing.T) {
	dir := t.TempDir()
	errFile := filepath.Join(dir, "errs.txt")
	cfg := writeFile(t, dir, "tidy.conf", "error-file: "+errFile+"\n")

	h := newHarness(t, warningPage)
	require.Equal(t, ExitWarnings, h.run("-config", cfg))
	assert.Empty(t, h.errs.String())

	data, err := os.ReadFile(errFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "missing <!DOCTYPE>")
}

func TestRun_InitialConfig(t *testing.T) {
	dir := t.TempDir()
	system := writeFile(t, dir, "system.conf", "wrap: 50\nquiet: yes\n")
	user := writeFile(t, dir, "user.conf", "wrap: 60\n")
	env := writeFile(t, dir, "env.conf", "wrap: 70\n")

	t.Run("system then user", func(t *testing.T) {
		h := newHarness(t, "", WithConfigFiles(system, user))
		require.Equal(t, ExitOK, h.run("-version"))
		assert.Equal(t, uint(60), h.doc.Int(tidy.WrapLen))
		assert.True(t, h.doc.Bool(tidy.Quiet))
	})
	t.Run("environment replaces user", func(t *testing.T) {
		h := newHarness(t, "", WithConfigFiles(system, user))
		t.Setenv(EnvConfigFile, env)
		require.Equal(t, ExitOK, h.run("-version"))
		assert.Equal(t, uint(70), h.doc.Int(tidy.WrapLen))
	})
	t.Run("command line wins", func(t *testing.T) {
		h := newHarness(t, "", WithConfigFiles(system, user))
		require.Equal(t, ExitOK, h.run("-w", "80", "-version"))
		assert.Equal(t, uint(80), h.doc.Int(tidy.WrapLen))
	})
	t.Run("broken environment file", func(t *testing.T) {
		h := newHarness(t, "")
		missing := filepath.Join(dir, "missing.conf")
		t.Setenv(EnvConfigFile, missing)
		require.Equal(t, ExitOK, h.run("-version"))
		assert.Contains(t, h.errs.String(), fmt.Sprintf("Loading config file %q failed", missing))
	})
}

type panickingDoc struct {
	*tidy.Doc
	value interface{}
}

func (p *panickingDoc) CleanAndRepair() (tidy.Status, error) {
	if p.value == nil {
		n := -1
		_ = make([]byte, n)
	}
	panic(p.value)
}

func TestRun_Fatal(t *testing.T) {
	t.Run("impossible category", func(t *testing.T) {
		errs := &bytes.Buffer{}
		p := &panickingDoc{Doc: tidy.New(tidy.WithErrorOutput(errs)), value: report.Fatal{ID: 7}}
		t.Setenv(EnvConfigFile, "")
		d := New("tidy", p, WithStdin(strings.NewReader(cleanPage)), WithStdout(&bytes.Buffer{}), WithConfigFiles("", ""))
		assert.Equal(t, 1, d.Run(nil))
		assert.Contains(t, errs.String(), "Fatal error: impossible value for id='7'.\n")
	})
	t.Run("allocation failure", func(t *testing.T) {
		errs := &bytes.Buffer{}
		p := &panickingDoc{Doc: tidy.New(tidy.WithErrorOutput(errs))}
		t.Setenv(EnvConfigFile, "")
		d := New("tidy", p, WithStdin(strings.NewReader(cleanPage)), WithStdout(&bytes.Buffer{}), WithConfigFiles("", ""))
		assert.Equal(t, 1, d.Run(nil))
		assert.Contains(t, errs.String(), "Out of memory. Bailing out.\n")
	})
	t.Run("other panics propagate", func(t *testing.T) {
		p := &panickingDoc{Doc: tidy.New(tidy.WithErrorOutput(&bytes.Buffer{})), value: "boom"}
		t.Setenv(EnvConfigFile, "")
		d := New("tidy", p, WithStdin(strings.NewReader(cleanPage)), WithStdout(&bytes.Buffer{}), WithConfigFiles("", ""))
		assert.PanicsWithValue(t, "boom", func() { d.Run(nil) })
	})
}

func TestRunAccumulator(t *testing.T) {
	tests := []struct {
		acc  RunAccumulator
		want int
	}{
		{RunAccumulator{}, ExitOK},
		{RunAccumulator{Warnings: 3}, ExitWarnings},
		{RunAccumulator{Warnings: 1, AccessWarnings: 1}, ExitWarnings},
		{RunAccumulator{Errors: 1, Warnings: 5}, ExitErrors},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.acc.ExitStatus(), "%+v", tt.acc)
	}
}
