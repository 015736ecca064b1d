package driver

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants.
const (
	ErrMsgMissingValue = "option needs a value"
	ErrMsgBadNumber    = "not an unsigned number"
)

// Error code constants.
const (
	ErrCodeArgs = "TIDY_ARGS"
)

// Metadata keys.
const (
	MetaKeySwitch = "switch"
	MetaKeyValue  = "value"
)

func newMissingValueError(name string) error {
	return cuserr.NewValidationError(ErrCodeArgs, ErrMsgMissingValue).
		WithMetadata(MetaKeySwitch, name)
}

func newBadNumberError(name, value string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeArgs, ErrMsgBadNumber).
		WithMetadata(MetaKeySwitch, name).
		WithMetadata(MetaKeyValue, value)
}
