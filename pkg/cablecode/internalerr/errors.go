package internalerr

import "errors"

// Sentinel errors for the conversion failure taxonomy
var (
	ErrFormationNotFound    = errors.New("formation not found")
	ErrInvalidFormation     = errors.New("invalid formation for category")
	ErrNonStandardFormation = errors.New("non-standard formation")
	ErrUnknownCategory      = errors.New("unknown category")
	ErrEncodingFault        = errors.New("unexpected encoding fault")
)

// Sentinel errors for precondition violations reported once per call
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrColumnNotFound = errors.New("column not found")
)

// Failure is a terminal conversion failure. Reason is the text shown to
// spreadsheet users; Kind is one of the taxonomy sentinels above.
type Failure struct {
	Kind   error
	Reason string
}

// NewFailure builds a Failure of the given kind.
func NewFailure(kind error, reason string) *Failure {
	return &Failure{Kind: kind, Reason: reason}
}

func (f *Failure) Error() string {
	return f.Reason
}

func (f *Failure) Unwrap() error {
	return f.Kind
}

// Reason returns the user-facing reason of err. Errors that are not a
// *Failure report their own message.
func Reason(err error) string {
	var f *Failure
	if errors.As(err, &f) {
		return f.Reason
	}
	return err.Error()
}
