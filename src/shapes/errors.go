package shapes

import (
	"errors"
	"fmt"

	"github.com/seuros/gopher-shapes/src/color"
)

var (
	// ErrInvalidNumericToken is returned for a token that is neither a color,
	// a command code nor a parseable number.
	ErrInvalidNumericToken = errors.New("invalid numeric token")

	// ErrInvalidColorFormat is color.ErrInvalidColorFormat, re-exported.
	ErrInvalidColorFormat = color.ErrInvalidColorFormat
)

// DecodeError reports the line and token that stopped a decode.
type DecodeError struct {
	Line  int // 1-based
	Token string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: token %q: %v", e.Line, e.Token, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
