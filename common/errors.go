package common

import (
	"errors"
	"fmt"
	"io/fs"
)

// Error kinds shared by every manager. Match them with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrPermission      = errors.New("permission denied")
	ErrProcessNotFound = errors.New("process not found")
	ErrUnexpected      = errors.New("unexpected failure")
)

// OpError records a failed toolkit operation together with its kind.
type OpError struct {
	Op     string // operation name, e.g. "list", "copy"
	Target string // path, pid or command the operation acted on
	Kind   error  // one of the Err* kinds above
	Err    error  // underlying cause, may be nil
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Target, e.Err)
}

// Unwrap exposes both the kind and the cause so errors.Is matches either.
func (e *OpError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewOpError builds an OpError with an explicit kind.
func NewOpError(op, target string, kind, err error) *OpError {
	return &OpError{Op: op, Target: target, Kind: kind, Err: err}
}

// Classify wraps err in an OpError whose kind is derived from the
// filesystem sentinels. It returns nil for a nil err.
func Classify(op, target string, err error) error {
	if err == nil {
		return nil
	}
	var opErr *OpError
	if errors.As(err, &opErr) {
		return err
	}
	return NewOpError(op, target, KindOf(err), err)
}

// KindOf maps an arbitrary error onto one of the toolkit kinds.
func KindOf(err error) error {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case errors.Is(err, ErrPermission), errors.Is(err, fs.ErrPermission):
		return ErrPermission
	case errors.Is(err, ErrProcessNotFound):
		return ErrProcessNotFound
	default:
		return ErrUnexpected
	}
}
