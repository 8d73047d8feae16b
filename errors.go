package lisaobj

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the error kinds named in the format's error
// handling design. Callers match against these with errors.Is; FormatError
// below wraps one of them with positional context.
var (
	ErrIoOpen    = errors.New("lisaobj: could not open object file")
	ErrIoRead    = errors.New("lisaobj: short read relative to declared size")
	ErrMalformed = errors.New("lisaobj: malformed object file")
)

// FormatError is returned for errors that can be pinned to a specific
// offset in an object file's image, such as a block whose declared size
// runs past the end of the file.
type FormatError struct {
	Off int64
	Msg string
	Val any
	Err error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Val != nil {
		msg += fmt.Sprintf(" %v", e.Val)
	}
	return fmt.Sprintf("%s in record at byte %#x", msg, e.Off)
}

func (e *FormatError) Unwrap() error { return e.Err }

func malformedAt(off int64, msg string, val any) error {
	return &FormatError{Off: off, Msg: msg, Val: val, Err: ErrMalformed}
}
