package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrNoList             = errors.New("no list found in text")
	ErrInvalidLiteral     = errors.New("invalid list literal")
	ErrUnsupportedElement = errors.New("unsupported list element")
)

// UnparsedError is returned when no bracketed group could be located. Raw is the
// text as received and Cleaned is the text after normalization.
type UnparsedError struct {
	Raw     string
	Cleaned string
}

func (e *UnparsedError) Error() string {
	return fmt.Sprintf("no list found in %q", e.Cleaned)
}

func (e *UnparsedError) Unwrap() error {
	return ErrNoList
}

var (
	numberedListStart = regexp.MustCompile(`^\d+\.\s`)
	numberedListItem  = regexp.MustCompile(`\d+\.\s`)
	spaceAfterOpen    = regexp.MustCompile(`\[\s+`)
	spaceBeforeClose  = regexp.MustCompile(`\s+\]`)
)

// Extract recovers a list of strings from free-form model output.
//
// Text starting with a numbered item ("1. ") is split on the item markers and
// returned as is. Anything else goes through Normalize and the outermost
// bracketed group is parsed as a literal list. A nil error with an empty slice
// means an empty list was found; *UnparsedError means nothing was found.
func Extract(text string) ([]string, error) {
	if numberedListStart.MatchString(text) {
		return splitNumbered(text), nil
	}

	cleaned := Normalize(text)

	group, ok := OutermostGroup(cleaned)
	if !ok {
		return nil, &UnparsedError{Raw: text, Cleaned: cleaned}
	}

	items, err := ParseList(group)
	if err != nil {
		return nil, fmt.Errorf("failed to parse list %q: %w", group, err)
	}

	return items, nil
}

func splitNumbered(text string) []string {
	parts := numberedListItem.Split(text, -1)

	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		items = append(items, part)
	}

	return items
}

// Normalize rewrites loosely formatted list text into something ParseList can
// read: tabs are dropped, structural single quotes become double quotes while
// in-word apostrophes are kept, spaces and '#' comments outside strings are
// removed, and the text is cut down to the span between the first '[' and the
// last ']'.
func Normalize(text string) string {
	s := strings.ReplaceAll(text, "\t", "")
	s = convertQuotes(s)
	s = compact(s)
	s = spaceAfterOpen.ReplaceAllString(s, "[")
	s = spaceBeforeClose.ReplaceAllString(s, "]")

	start, end := strings.Index(s, "["), strings.LastIndex(s, "]")
	if start != -1 && end > start {
		s = s[start : end+1]
	}

	return s
}

func convertQuotes(s string) string {
	runes := []rune(s)

	var b strings.Builder
	b.Grow(len(s))

	for i, r := range runes {
		if r != '\'' {
			b.WriteRune(r)
			continue
		}

		inWord := i > 0 && i < len(runes)-1 && isWordRune(runes[i-1]) && isWordRune(runes[i+1])
		if inWord {
			b.WriteRune('\'')
		} else {
			b.WriteRune('"')
		}
	}

	return b.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// compact drops spaces outside double-quoted strings and strips '#' comments.
// A comment runs until the next double quote, which also toggles string mode.
// Inside a string a backslash and the rune after it are copied verbatim.
func compact(s string) string {
	var (
		b         strings.Builder
		inQuotes  bool
		inComment bool
	)
	b.Grow(len(s))

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if inQuotes && r == '\\' && i+1 < len(runes) {
			b.WriteRune(r)
			b.WriteRune(runes[i+1])
			i++
			continue
		}

		if r == '"' {
			inQuotes = !inQuotes
			inComment = false
		} else if r == '#' && !inQuotes && !inComment {
			inComment = true
			continue
		}

		if !inQuotes && r == ' ' {
			continue
		}
		if !inComment {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// OutermostGroup returns the first balanced "[...]" group in s, brackets
// included. Brackets inside double-quoted strings, including strings with
// escaped quotes, do not count towards the nesting depth.
func OutermostGroup(s string) (string, bool) {
	for start := strings.IndexByte(s, '['); start != -1; {
		if end, ok := matchBracket(s, start); ok {
			return s[start : end+1], true
		}

		next := strings.IndexByte(s[start+1:], '[')
		if next == -1 {
			break
		}
		start += next + 1
	}

	return "", false
}

func matchBracket(s string, start int) (int, bool) {
	depth := 0
	inString := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if inString {
			switch c {
			case '\\':
				i++
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}

	return 0, false
}
