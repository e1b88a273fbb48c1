package extract

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseList reads a single list literal such as ["a", 'b', 3,] and returns its
// elements as strings. Only literal data is accepted: quoted strings (adjacent
// strings are concatenated), numbers and the constants True and False. Nested
// containers, None and any other expression are rejected.
func ParseList(src string) ([]string, error) {
	p := &literalParser{src: src}

	items, err := p.list()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("%w: unexpected %q after list at offset %d", ErrInvalidLiteral, p.src[p.pos:], p.pos)
	}

	return items, nil
}

type literalParser struct {
	src string
	pos int
}

func (p *literalParser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *literalParser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *literalParser) skipSpace() {
	for !p.eof() {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func (p *literalParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrInvalidLiteral, fmt.Sprintf(format, args...), p.pos)
}

func (p *literalParser) list() ([]string, error) {
	p.skipSpace()
	if p.peek() != '[' {
		return nil, p.errorf("expected '['")
	}
	p.pos++

	items := []string{}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unterminated list")
		}
		if p.peek() == ']' {
			p.pos++
			return items, nil
		}

		item, err := p.element()
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
		default:
			return nil, p.errorf("expected ',' or ']'")
		}
	}
}

func (p *literalParser) element() (string, error) {
	switch c := p.peek(); {
	case c == '"' || c == '\'':
		return p.stringLiteral()
	case c == '-' || c == '+' || c == '.' || isDigit(c):
		return p.number()
	case c == '[' || c == '(' || c == '{':
		return "", fmt.Errorf("%w: nested container at offset %d", ErrUnsupportedElement, p.pos)
	default:
		return p.constant()
	}
}

// stringLiteral reads one or more adjacent string literals.
func (p *literalParser) stringLiteral() (string, error) {
	var b strings.Builder
	for {
		s, err := p.quoted()
		if err != nil {
			return "", err
		}
		b.WriteString(s)

		p.skipSpace()
		if c := p.peek(); c != '"' && c != '\'' {
			return b.String(), nil
		}
	}
}

func (p *literalParser) quoted() (string, error) {
	quote := p.src[p.pos]
	p.pos++

	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated string")
		}

		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\n':
			return "", p.errorf("newline in string")
		case c == '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

var simpleEscapes = map[byte]string{
	'\\': "\\",
	'\'': "'",
	'"':  "\"",
	'a':  "\a",
	'b':  "\b",
	'f':  "\f",
	'n':  "\n",
	'r':  "\r",
	't':  "\t",
	'v':  "\v",
	'\n': "",
}

func (p *literalParser) escape(b *strings.Builder) error {
	p.pos++
	if p.eof() {
		return p.errorf("unterminated escape")
	}

	c := p.src[p.pos]
	if s, ok := simpleEscapes[c]; ok {
		b.WriteString(s)
		p.pos++
		return nil
	}

	var width int
	switch c {
	case 'x':
		width = 2
	case 'u':
		width = 4
	case 'U':
		width = 8
	default:
		// unknown escapes are kept verbatim
		b.WriteByte('\\')
		return nil
	}

	start := p.pos + 1
	if start+width > len(p.src) {
		return p.errorf("truncated \\%c escape", c)
	}

	code, err := strconv.ParseUint(p.src[start:start+width], 16, 32)
	if err != nil || code > utf8.MaxRune {
		return p.errorf("invalid \\%c escape", c)
	}

	b.WriteRune(rune(code))
	p.pos = start + width
	return nil
}

func (p *literalParser) number() (string, error) {
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}

	digits := p.digits()
	if p.peek() == '.' {
		p.pos++
		digits += p.digits()
	}
	if digits == 0 {
		return "", p.errorf("malformed number")
	}

	if c := p.peek(); c == 'e' || c == 'E' {
		p.pos++
		if c := p.peek(); c == '-' || c == '+' {
			p.pos++
		}
		if p.digits() == 0 {
			return "", p.errorf("malformed exponent")
		}
	}

	return strings.ReplaceAll(p.src[start:p.pos], "_", ""), nil
}

func (p *literalParser) digits() int {
	n := 0
	for !p.eof() && (isDigit(p.peek()) || (n > 0 && p.peek() == '_')) {
		p.pos++
		n++
	}
	return n
}

func (p *literalParser) constant() (string, error) {
	start := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}

	switch word := p.src[start:p.pos]; word {
	case "True", "False":
		return word, nil
	case "None":
		return "", fmt.Errorf("%w: None at offset %d", ErrUnsupportedElement, start)
	case "":
		return "", p.errorf("unexpected %q", p.peek())
	default:
		return "", fmt.Errorf("%w: name %q is not a literal at offset %d", ErrInvalidLiteral, word, start)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentByte(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
