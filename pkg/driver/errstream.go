package driver

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lwm-galactic/tidy/pkg/locale"
	"github.com/lwm-galactic/tidy/pkg/log"
	"github.com/lwm-galactic/tidy/pkg/tidy"
)

// caseInsensitivePaths is set where the file system folds case.
var caseInsensitivePaths = runtime.GOOS == "windows" || runtime.GOOS == "darwin"

func sameFile(a, b string) bool {
	if caseInsensitivePaths {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// ErrorStream is the destination of diagnostics. It starts on the
// processor's default stream and follows the error-file option, opening a
// file only when the path really changes so the same file is never
// truncated twice.
type ErrorStream struct {
	proc Processor
	path string
	w    io.Writer
}

// NewErrorStream returns a handle on p's current error output.
func NewErrorStream(p Processor) *ErrorStream {
	return &ErrorStream{proc: p, w: p.ErrorOutput()}
}

// Writer returns the active stream.
func (s *ErrorStream) Writer() io.Writer {
	return s.w
}

// IsDefault reports whether diagnostics still go to the default stream.
func (s *ErrorStream) IsDefault() bool {
	return s.path == ""
}

// Redirect sends diagnostics to path unless it is already the active
// error file. It reports whether the stream changed.
func (s *ErrorStream) Redirect(path string) bool {
	if path == "" || (s.path != "" && sameFile(s.path, path)) {
		return false
	}
	w, err := s.proc.SetErrorFile(path)
	if err != nil {
		log.Warnw("cannot open error file", "path", path, "error", err)
		s.Printf(locale.CannotSetErrorFile, path)
		return false
	}
	log.Debugw("error output redirected", "from", s.path, "to", path)
	s.path = path
	s.w = w
	return true
}

// Follow re-reads the error-file option after the configuration changed.
func (s *ErrorStream) Follow() bool {
	return s.Redirect(s.proc.Value(tidy.ErrFile))
}

// Printf writes a localized message to the active stream.
func (s *ErrorStream) Printf(id locale.MessageID, args ...interface{}) {
	fmt.Fprint(s.w, s.proc.Localizer().Sprintf(id, args...))
}
