package shapes

import (
	"fmt"

	"github.com/seuros/gopher-shapes/src/color"
)

// Commands is an ordered draw command list. Token order is drawing order.
type Commands []Token

// Normalize returns a copy of c with every raw hex color converted to its
// integer value. c itself is left untouched.
func (c Commands) Normalize() (Commands, error) {
	if c == nil {
		return nil, nil
	}
	out := make(Commands, len(c))
	for i, tok := range c {
		if tok.Kind == KindHexColor {
			v, err := color.HexToColor(tok.Text)
			if err != nil {
				return nil, fmt.Errorf("token %d: %w", i, err)
			}
			tok = Color(v)
		}
		out[i] = tok
	}
	return out, nil
}

// Normalized reports whether c contains no raw hex colors.
func (c Commands) Normalized() bool {
	for _, tok := range c {
		if tok.Kind == KindHexColor {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of c.
func (c Commands) Clone() Commands {
	if c == nil {
		return nil
	}
	out := make(Commands, len(c))
	copy(out, c)
	return out
}

// Equal reports whether c and other hold the same tokens in the same order.
func (c Commands) Equal(other Commands) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Values returns the plain Go values of every token, see Token.Value.
func (c Commands) Values() []interface{} {
	out := make([]interface{}, len(c))
	for i, tok := range c {
		out[i] = tok.Value()
	}
	return out
}
