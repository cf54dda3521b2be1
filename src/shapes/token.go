// Package shapes holds the draw command data model and the decoder for the
// line-oriented shape description format:
//
//	<identifier> <token> <token> ...
//
// One shape per line, tokens separated by single spaces. Tokens after the
// identifier are command codes ("mt", "lt"), numbers or "#rrggbb" colors.
package shapes

import (
	"strconv"

	"github.com/seuros/gopher-shapes/src/color"
)

// Kind identifies what a Token carries.
type Kind uint8

const (
	// KindInvalid is the zero Token, left behind when a cached list is removed.
	KindInvalid Kind = iota
	// KindCommand is a short drawing primitive code such as "mt" or "cv".
	KindCommand
	// KindNumber is a numeric argument.
	KindNumber
	// KindHexColor is a color still in its "#rrggbb" text form.
	KindHexColor
	// KindColor is a normalized 24-bit color.
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindNumber:
		return "number"
	case KindHexColor:
		return "hexcolor"
	case KindColor:
		return "color"
	default:
		return "invalid"
	}
}

// Token is a single element of a draw command list.
type Token struct {
	Kind   Kind
	Text   string  // command code or raw "#rrggbb" color
	Number float64 // numeric argument
	Color  uint32  // normalized color
}

// Command returns a command code token.
func Command(code string) Token { return Token{Kind: KindCommand, Text: code} }

// Number returns a numeric argument token.
func Number(n float64) Token { return Token{Kind: KindNumber, Number: n} }

// HexColor returns a raw, not yet normalized color token.
func HexColor(s string) Token { return Token{Kind: KindHexColor, Text: s} }

// Color returns a normalized color token.
func Color(c uint32) Token { return Token{Kind: KindColor, Color: c} }

// Value returns the token payload as a plain Go value: string for commands and
// raw colors, float64 for numbers, uint32 for colors and nil for invalid
// tokens.
func (t Token) Value() interface{} {
	switch t.Kind {
	case KindCommand, KindHexColor:
		return t.Text
	case KindNumber:
		return t.Number
	case KindColor:
		return t.Color
	default:
		return nil
	}
}

// String renders the token in the line format. Normalized colors render as
// "#rrggbb" so that encoded output decodes again.
func (t Token) String() string {
	switch t.Kind {
	case KindCommand, KindHexColor:
		return t.Text
	case KindNumber:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case KindColor:
		return color.ToHex(t.Color)
	default:
		return ""
	}
}
