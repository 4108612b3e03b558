// Package inline expands the brace-delimited directive mini-language embedded
// in documentation comment prose ({@code ...}, {@link ...}, {@literal ...}).
//
// Expansion is best effort over authored text: recognized directives are
// transformed, everything else passes through, and a parse failure leaves the
// caller with the original input rather than an aborted render.
package inline

import (
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/docmark/internal/logfields"
)

// maxDepth bounds directive nesting so adversarial input cannot blow the
// recursion budget.
const maxDepth = 64

// Expand transforms recognized {@directive ...} spans in text and returns the
// result. code, link and linkplain wrap their content in backticks; literal
// emits its content bare; an unknown directive is logged and its content
// emitted bare. A '}' with no enclosing span is kept as literal text.
//
// The returned error is recoverable: it reports an opening brace that never
// balances (or nesting past the depth cap), and callers are expected to fall
// back to the untransformed input. ExpandOrOriginal does exactly that.
func Expand(text string) (string, error) {
	if strings.IndexByte(text, '{') < 0 && strings.IndexByte(text, '}') < 0 {
		return text, nil
	}
	s := &scanner{src: text}
	var out strings.Builder
	out.Grow(len(text))
	for !s.empty() {
		if err := s.parseInner(&out); err != nil {
			return "", err
		}
		// parseInner only stops mid-input on a '}' that closes nothing at
		// the top level; keep it as literal text and carry on.
		if !s.empty() {
			out.WriteByte(s.next())
		}
	}
	return out.String(), nil
}

// ExpandOrOriginal is Expand with the documented fallback applied: on parse
// failure the input is returned untransformed.
func ExpandOrOriginal(text string) string {
	out, err := Expand(text)
	if err != nil {
		slog.Debug("inline directive parse failed, keeping original text", logfields.Error(err))
		return text
	}
	return out
}

type scanner struct {
	src   string
	pos   int
	depth int
}

func (s *scanner) empty() bool { return s.pos >= len(s.src) }
func (s *scanner) peek() byte  { return s.src[s.pos] }

func (s *scanner) next() byte {
	b := s.src[s.pos]
	s.pos++
	return b
}

func (s *scanner) expect(c byte) error {
	if s.empty() {
		return fmt.Errorf("want %q at offset %d, got end of input", c, s.pos)
	}
	if got := s.next(); got != c {
		return fmt.Errorf("want %q at offset %d, got %q", c, s.pos-1, got)
	}
	return nil
}

// parseInner copies text into out until end of input or a '}' belonging to
// the enclosing span, recursing on any nested '{'.
func (s *scanner) parseInner(out *strings.Builder) error {
	for !s.empty() {
		switch s.peek() {
		case '{':
			if err := s.parseSpan(out); err != nil {
				return err
			}
		case '}':
			return nil
		default:
			out.WriteByte(s.next())
		}
	}
	return nil
}

// parseSpan consumes one balanced {...} span, transforming it when it starts
// with a recognized directive.
func (s *scanner) parseSpan(out *strings.Builder) error {
	if err := s.expect('{'); err != nil {
		return err
	}
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > maxDepth {
		return fmt.Errorf("directive nesting exceeds %d levels at offset %d", maxDepth, s.pos)
	}

	if !s.empty() && s.peek() == '@' {
		name := s.directiveName()
		if !s.empty() && s.peek() == ' ' {
			s.pos++
		}
		switch name {
		case "code", "link", "linkplain":
			out.WriteByte('`')
			if err := s.parseInner(out); err != nil {
				return err
			}
			out.WriteByte('`')
		case "literal":
			if err := s.parseInner(out); err != nil {
				return err
			}
		default:
			slog.Warn("unknown inline directive", logfields.Directive(name))
			if err := s.parseInner(out); err != nil {
				return err
			}
		}
	} else if err := s.parseInner(out); err != nil {
		return err
	}
	return s.expect('}')
}

// directiveName consumes '@' and the maximal alphabetic run after it.
func (s *scanner) directiveName() string {
	s.pos++ // '@', checked by the caller
	start := s.pos
	for !s.empty() && isAlpha(s.peek()) {
		s.pos++
	}
	return s.src[start:s.pos]
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
