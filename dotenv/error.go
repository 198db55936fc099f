package dotenv

import (
	"errors"
	"log/slog"
	"strconv"
)

// ErrMalformed reports a line that is neither blank, a comment, nor a
// KEY=VALUE assignment.
var ErrMalformed = errors.New("malformed line")

// ParseError locates a syntax error within dotenv content.
type ParseError struct {
	Line int    // 1-based line number
	Text string // offending line, verbatim
	Err  error
}

func (e *ParseError) Error() string {
	return "line " + strconv.Itoa(e.Line) + ": " + e.Err.Error() +
		": " + strconv.Quote(e.Text)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("error", e.Err.Error()),
		slog.Int("line", e.Line),
		slog.String("text", e.Text),
	)
}
