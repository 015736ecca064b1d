package tidy

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants.
const (
	ErrMsgUnknownOption    = "unknown option"
	ErrMsgInvalidValue     = "invalid option value"
	ErrMsgReadOnlyOption   = "option is read-only"
	ErrMsgUnknownEncoding  = "unknown character encoding"
	ErrMsgLoadConfig       = "loading configuration failed"
	ErrMsgOpenFile         = "cannot open file"
	ErrMsgWriteFile        = "cannot write file"
	ErrMsgMalformedConfig  = "malformed configuration entry"
	ErrMsgUnknownCategory  = "impossible option category"
	ErrMsgDocumentNotReady = "no document has been parsed"
)

// Error code constants.
const (
	ErrCodeConfig   = "TIDY_CONFIG"
	ErrCodeIO       = "TIDY_IO"
	ErrCodeEncoding = "TIDY_ENCODING"
	ErrCodeInternal = "TIDY_INTERNAL"
)

// Metadata keys.
const (
	MetaKeyOption = "option"
	MetaKeyValue  = "value"
	MetaKeyPath   = "path"
)

func newUnknownOptionError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyOption, ErrMsgUnknownOption).
		WithMetadata(MetaKeyOption, name)
}

func newInvalidValueError(name, value string, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgInvalidValue)
	} else {
		err = cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidValue)
	}
	return err.
		WithMetadata(MetaKeyOption, name).
		WithMetadata(MetaKeyValue, value)
}

func newReadOnlyError(name string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgReadOnlyOption).
		WithMetadata(MetaKeyOption, name)
}

func newUnknownEncodingError(name string) error {
	return cuserr.NewValidationError(ErrCodeEncoding, ErrMsgUnknownEncoding).
		WithMetadata(MetaKeyValue, name)
}

func newMalformedConfigError(path, entry string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgMalformedConfig).
		WithMetadata(MetaKeyPath, path).
		WithMetadata(MetaKeyValue, entry)
}

func newIOError(cause error, msg, path string) error {
	return cuserr.WrapStdError(cause, ErrCodeIO, msg).
		WithMetadata(MetaKeyPath, path)
}

func newNotReadyError() error {
	return cuserr.NewValidationError(ErrCodeInternal, ErrMsgDocumentNotReady)
}
