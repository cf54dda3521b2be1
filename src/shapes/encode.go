package shapes

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/seuros/gopher-shapes/src/color"
)

// ErrUnencodable is returned when a shape cannot be written in the line
// format without changing its meaning on the next decode.
var ErrUnencodable = errors.New("shape cannot be encoded")

// Encode renders shapes in the line format, one shape per line in identifier
// order. Normalized colors are written back as "#rrggbb". Whenever Encode
// succeeds, decoding its output yields the same shapes (with colors raw).
func Encode(shapes map[string]Commands) (string, error) {
	ids := make([]string, 0, len(shapes))
	for id := range shapes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		if err := EncodeLine(&b, id, shapes[id]); err != nil {
			return "", err
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// EncodeLine writes a single shape without a trailing newline. Nothing is
// written when it returns an error.
func EncodeLine(b *strings.Builder, id string, cmds Commands) error {
	if strings.ContainsAny(id, " \n\r") {
		return fmt.Errorf("%w: identifier %q contains a separator", ErrUnencodable, id)
	}
	if id == "" && len(cmds) == 0 {
		return fmt.Errorf("%w: empty identifier without tokens", ErrUnencodable)
	}

	parts := make([]string, 0, len(cmds)+1)
	parts = append(parts, id)
	for i, tok := range cmds {
		if err := checkEncodable(tok); err != nil {
			return fmt.Errorf("%w: shape %q token %d: %v", ErrUnencodable, id, i, err)
		}
		parts = append(parts, tok.String())
	}
	b.WriteString(strings.Join(parts, " "))
	return nil
}

func checkEncodable(tok Token) error {
	switch tok.Kind {
	case KindCommand:
		if !isCommandCode(tok.Text) {
			return fmt.Errorf("command code %q", tok.Text)
		}
	case KindNumber:
		if math.IsNaN(tok.Number) || math.IsInf(tok.Number, 0) {
			return fmt.Errorf("number %v", tok.Number)
		}
	case KindHexColor:
		if !color.IsHexColor(tok.Text) {
			return fmt.Errorf("color %q", tok.Text)
		}
	case KindColor:
		if tok.Color > color.MaxColor {
			return fmt.Errorf("color %d out of range", tok.Color)
		}
	default:
		return fmt.Errorf("invalid token")
	}
	return nil
}

func isCommandCode(s string) bool {
	if len(s) < 1 || len(s) > 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
