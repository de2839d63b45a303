package history

import (
	"errors"
	"fmt"
)

// Kind classifies where in the pipeline a failure happened.
type Kind int

const (
	// KindInput means the operator's input stream could not be read.
	KindInput Kind = iota + 1
	// KindFetch covers transport failures talking to the users API.
	KindFetch
	// KindParse means the response body did not have the expected shape.
	KindParse
	// KindIO covers failures writing the output file.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindFetch:
		return "fetch"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the error type returned by every stage of the lookup.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Op)
	default:
		return e.Kind.String() + " error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a bare *Error of the same Kind, so callers can write
// errors.Is(err, history.ErrFetch).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Err == nil && t.Op == "" && e.Kind == t.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Kind sentinels for use with errors.Is.
var (
	ErrInput = &Error{Kind: KindInput}
	ErrFetch = &Error{Kind: KindFetch}
	ErrParse = &Error{Kind: KindParse}
	ErrIO    = &Error{Kind: KindIO}
)

// Reasons a response body can be rejected.
var (
	ErrInvalidJSON      = errors.New("response is not valid JSON")
	ErrMissingDataField = errors.New("response has no data field")
	ErrDataNotArray     = errors.New("data field is not an array")
	ErrInvalidEntry     = errors.New("data entry has no string name")
)

// EntryError reports the first element of the data array that failed validation.
type EntryError struct {
	Index int
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, ErrInvalidEntry)
}

func (e *EntryError) Unwrap() error {
	return ErrInvalidEntry
}

func parseError(op string, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Err: err}
}
