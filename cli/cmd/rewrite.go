package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ardnew/uenv/inline"
	"github.com/ardnew/uenv/log"
)

// Rewrite substitutes resolved values into an expression and prints it.
type Rewrite struct {
	Diff   bool   `help:"Print a line diff against the input instead." short:"d"`
	Object string `default:"${object}" help:"Dotted path of the environment object."`
	Source string `arg:"" default:"-" help:"Expression file or '-' for stdin." name:"source"`
}

// Run executes the rewrite command.
func (r *Rewrite) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := settingsFrom(ctx)

	merged, err := s.load(ctx)
	if err != nil {
		return err
	}

	source, err := readSource(r.Source)
	if err != nil {
		return ErrReadSource.Wrap(err).With(slog.String("source", r.Source))
	}

	out, err := inline.Rewrite(source, s.adapter(merged, r.Object))
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "rewrote expression",
		slog.String("source", r.Source),
		slog.Bool("changed", out != source))

	w := stdout(ctx)

	if r.Diff {
		return writeLineDiff(w, source, out)
	}

	_, err = fmt.Fprintln(w, strings.TrimRight(out, "\n"))

	return err
}

// writeLineDiff prints every line of a line-level diff from a to b, marked
// with '-', '+', or ' '.
func writeLineDiff(w io.Writer, a, b string) error {
	dmp := diffmatchpatch.New()

	ra, rb, lines := dmp.DiffLinesToRunes(terminate(a), terminate(b))
	diffs := dmp.DiffCleanupMerge(dmp.DiffMainRunes(ra, rb, false))

	for _, d := range diffs {
		mark := " "

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			mark = "-"
		case diffmatchpatch.DiffInsert:
			mark = "+"
		case diffmatchpatch.DiffEqual:
		}

		for _, idx := range d.Text {
			if int(idx) >= len(lines) {
				continue
			}

			if _, err := fmt.Fprint(w, mark, lines[idx]); err != nil {
				return err
			}
		}
	}

	return nil
}

func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}

	return s + "\n"
}
