package app

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOptions struct {
	completed bool
	invalid   bool
}

func (o *testOptions) Complete() error {
	o.completed = true
	return nil
}

func (o *testOptions) Validate() []error {
	if o.invalid {
		return []error{errors.New("bad level")}
	}
	return nil
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name    string
		run     RunFunc
		opts    *testOptions
		want    int
		wantErr string
	}{
		{
			name: "success",
			run:  func(CliOptions, []string) error { return nil },
			opts: &testOptions{},
			want: 0,
		},
		{
			name: "exit status",
			run:  func(CliOptions, []string) error { return &ExitError{Code: 2} },
			opts: &testOptions{},
			want: 2,
		},
		{
			name:    "failure",
			run:     func(CliOptions, []string) error { return errors.New("disk on fire") },
			opts:    &testOptions{},
			want:    1,
			wantErr: "disk on fire",
		},
		{
			name:    "invalid options",
			run:     func(CliOptions, []string) error { return nil },
			opts:    &testOptions{invalid: true},
			want:    1,
			wantErr: "invalid options: [bad level]",
		},
		{
			name:    "panic",
			run:     func(CliOptions, []string) error { panic("unexpected") },
			opts:    &testOptions{},
			want:    1,
			wantErr: "unexpected",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			a := NewApp("test", "test",
				WithOptions(tt.opts),
				WithRunFunc(tt.run),
				WithSilence(),
				WithOutput(&stdout, &stderr),
			)
			assert.Equal(t, tt.want, a.Execute(nil))
			assert.True(t, tt.opts.completed)
			if tt.wantErr == "" {
				assert.Empty(t, stderr.String())
				return
			}
			assert.Contains(t, stderr.String(), "Error:")
			assert.Contains(t, stderr.String(), tt.wantErr)
		})
	}
}

func TestExecute_PassesArgumentsThrough(t *testing.T) {
	var got []string
	a := NewApp("test", "test",
		WithRunFunc(func(_ CliOptions, args []string) error {
			got = args
			return nil
		}),
		WithSilence(),
	)

	args := []string{"-wrap", "0", "--help", "-h", "page.html"}
	require.Equal(t, 0, a.Execute(args))
	assert.Equal(t, args, got)
}

func TestExecute_NoArguments(t *testing.T) {
	called := false
	a := NewApp("test", "test",
		WithRunFunc(func(_ CliOptions, args []string) error {
			called = true
			assert.Empty(t, args)
			return nil
		}),
		WithSilence(),
	)
	require.Equal(t, 0, a.Execute([]string{}))
	assert.True(t, called)
}

func TestExitError(t *testing.T) {
	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())
}
