package shapes

import (
	"fmt"
	"strings"
	"sync"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/seuros/gopher-shapes/src/color"
	"github.com/seuros/gopher-shapes/src/logging"
)

// Argument tokens are lexed one at a time; a token is valid only if it lexes
// to exactly one of these.
var argumentLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Color", Pattern: `#[0-9a-fA-F]{6}`},
	{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Command", Pattern: `[a-z]{1,2}`},
})

type argument struct {
	Color   *string  `parser:"@Color"`
	Number  *float64 `parser:"| @Number"`
	Command *string  `parser:"| @Command"`
}

// Decoder turns shape description text into draw command lists. It holds no
// mutable state and is safe for concurrent use.
type Decoder struct {
	parser *participle.Parser[argument]
	logger logging.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used to report overwritten identifiers.
func WithLogger(l logging.Logger) Option {
	return func(d *Decoder) { d.logger = logging.OrNoOp(l) }
}

// NewDecoder builds a decoder.
func NewDecoder(opts ...Option) (*Decoder, error) {
	parser, err := participle.Build[argument](
		participle.Lexer(argumentLexer),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}

	d := &Decoder{parser: parser, logger: &logging.NoOpLogger{}}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Decode parses text into a map from shape identifier to its commands.
// Colors are left in their "#rrggbb" form. Empty lines are skipped and a
// trailing "\r" is ignored. When an identifier repeats, the later line wins.
// The first bad token fails the whole call with a *DecodeError.
func (d *Decoder) Decode(text string) (map[string]Commands, error) {
	result := make(map[string]Commands)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		fields := strings.Split(line, " ")
		id := fields[0]

		cmds := make(Commands, 0, len(fields)-1)
		for _, raw := range fields[1:] {
			tok, err := d.parseArgument(raw)
			if err != nil {
				return nil, &DecodeError{Line: i + 1, Token: raw, Err: err}
			}
			cmds = append(cmds, tok)
		}

		if _, exists := result[id]; exists {
			d.logger.Debug("shape identifier redefined", "id", id, "line", i+1)
		}
		result[id] = cmds
	}

	return result, nil
}

func (d *Decoder) parseArgument(raw string) (Token, error) {
	if raw == "" {
		return Token{}, fmt.Errorf("%w: empty token", ErrInvalidNumericToken)
	}

	arg, err := d.parser.ParseString("", raw)
	if err != nil {
		if raw[0] == '#' {
			if _, cerr := color.HexToColor(raw); cerr != nil {
				return Token{}, cerr
			}
			return Token{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, raw)
		}
		return Token{}, fmt.Errorf("%w: %v", ErrInvalidNumericToken, err)
	}

	switch {
	case arg.Color != nil:
		return HexColor(*arg.Color), nil
	case arg.Command != nil:
		return Command(*arg.Command), nil
	case arg.Number != nil:
		return Number(*arg.Number), nil
	default:
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidNumericToken, raw)
	}
}

var defaultDecoder = sync.OnceValues(func() (*Decoder, error) {
	return NewDecoder()
})

// Decode parses text with a shared default decoder, see Decoder.Decode.
func Decode(text string) (map[string]Commands, error) {
	d, err := defaultDecoder()
	if err != nil {
		return nil, err
	}
	return d.Decode(text)
}
