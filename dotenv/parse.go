package dotenv

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

// maxLineSize bounds the length of a single line.
const maxLineSize = 1 << 20

var line = regexp.MustCompile(`^(?:export\s+)?([\w.-]+)\s*=\s*(.*)$`)

// Parse reads dotenv content from r.
//
// Blank lines and lines whose first non-blank character is '#' are skipped.
// When a key occurs more than once, the last occurrence wins. Any other line
// that is not a KEY=VALUE assignment yields a [*ParseError].
func Parse(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		if n == 1 {
			text = strings.TrimPrefix(text, "\ufeff")
		}

		key, val, ok, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: n, Text: text, Err: err}
		}

		if ok {
			out[key] = val
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ParseString parses dotenv content held in s.
func ParseString(s string) (map[string]string, error) {
	return Parse(strings.NewReader(s))
}

// parseLine returns ok == false for lines that carry no assignment.
func parseLine(text string) (key, val string, ok bool, err error) {
	trim := strings.TrimSpace(text)
	if trim == "" || strings.HasPrefix(trim, "#") {
		return "", "", false, nil
	}

	m := line.FindStringSubmatch(trim)
	if m == nil {
		return "", "", false, ErrMalformed
	}

	return m[1], unquote(strings.TrimSpace(m[2])), true, nil
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	switch first, last := s[0], s[len(s)-1]; {
	case first == '"' && last == '"':
		return strings.ReplaceAll(s[1:len(s)-1], `\n`, "\n")
	case first == '\'' && last == '\'':
		return s[1 : len(s)-1]
	default:
		return s
	}
}
