package transformer

import (
	"errors"
	"fmt"
	"strings"

	"awesome-dragon.science/go/colourfmt/pkg/ansi"
)

// The two ways a template can be malformed. Both are wrapped with the byte
// offset of the offending character before being returned
var (
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrUnexpectedClose = errors.New("unexpected closing brace")
)

// Transformer rewrites templates against a style vocabulary. The zero value is
// not useful, use New
type Transformer struct {
	vocab map[string]string
}

// New constructs a Transformer over the given name to escape vocabulary. A nil
// vocab means the default ansi table. Passing ansi.FixedVocabulary() gets you
// the corrected underline behaviour
func New(vocab map[string]string) *Transformer {
	return &Transformer{vocab: vocab}
}

var defaultTransformer = New(nil)

// Transform rewrites a template using the default vocabulary. See
// Transformer.Transform
func Transform(in string) (string, error) {
	return defaultTransformer.Transform(in)
}

func (t *Transformer) lookup(name string) (string, bool) {
	if t.vocab == nil {
		return ansi.Lookup(name)
	}

	code, ok := t.vocab[name]

	return code, ok
}

func (t *Transformer) resetCode() string {
	if code, ok := t.lookup("reset"); ok {
		return code
	}

	return ansi.Reset
}

// Transform rewrites the template in a single left to right pass. Literal text
// and pass-through tokens are preserved byte-identical; style tokens are
// replaced with their escapes. The input is not modified and no state is kept
// between calls, so a single Transformer is safe for concurrent use
func (t *Transformer) Transform(in string) (string, error) {
	out := strings.Builder{}
	out.Grow(len(in))

	i := 0
	for i < len(in) {
		switch in[i] {
		case '{':
			if i+1 == len(in) {
				return "", fmt.Errorf("at byte %d: %w", i, ErrUnexpectedEOF)
			}

			switch in[i+1] {
			case '{':
				out.WriteByte('{')
				i += 2

				continue
			case '}':
				// an empty placeholder is for the downstream formatter
				out.WriteString("{}")
				i += 2

				continue
			}

			start := i

			i++

			nameEnd := strings.IndexByte(in[i:], '}')
			if nameEnd == -1 {
				return "", fmt.Errorf("at byte %d: %w", start, ErrUnexpectedEOF)
			}

			t.emitToken(&out, in[i:i+nameEnd])
			i += nameEnd + 1

		case '}':
			if i+1 < len(in) && in[i+1] == '}' {
				out.WriteByte('}')
				i += 2

				continue
			}

			return "", fmt.Errorf("at byte %d: %w", i, ErrUnexpectedClose)

		default:
			out.WriteByte(in[i])
			i++
		}
	}

	return out.String(), nil
}

// emitToken resolves the inside of a single brace token and writes the result.
// Resolution order: whole name as a style, then a value-with-style split on
// the first ':', then pass-through
func (t *Transformer) emitToken(out *strings.Builder, name string) {
	if code, ok := t.lookup(name); ok {
		out.WriteString(code)
		return
	}

	if split := strings.IndexByte(name, ':'); split != -1 {
		body, tail := name[:split], name[split+1:]

		if code, ok := t.lookup(tail); ok {
			reset := t.resetCode()

			out.WriteString(reset)
			out.WriteString(code)
			out.WriteByte('{')
			out.WriteString(body)
			out.WriteByte('}')
			out.WriteString(reset)

			return
		}
	}

	out.WriteByte('{')
	out.WriteString(name)
	out.WriteByte('}')
}
