package types

import "github.com/pkg/errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageRead        = errors.New("storage read failed")
	ErrStorageWrite       = errors.New("storage write failed")
	ErrFetch              = errors.New("default configuration unreachable")
	ErrParse              = errors.New("malformed json")
	ErrValidation         = errors.New("invalid configuration")
)

// Error attaches one of the sentinel kinds above to an underlying cause so that
// both errors.Is(err, kind) and errors.Cause(err) work.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func NewError(kind error, message string, cause error) error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Cause() error {
	if e.Err == nil {
		return e.Kind
	}
	return e.Err
}
