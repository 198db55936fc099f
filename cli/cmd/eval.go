package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/uenv/inline"
)

// Eval substitutes resolved values into an expression and evaluates it
// against the live environment.
type Eval struct {
	Object string `default:"${object}" help:"Dotted path of the environment object."`
	Source string `arg:"" default:"-" help:"Expression file or '-' for stdin." name:"source"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	s := settingsFrom(ctx)
	loader := s.loader()

	merged, err := loader.Load(ctx)
	if err != nil {
		return err
	}

	source, err := readSource(e.Source)
	if err != nil {
		return ErrReadSource.Wrap(err).With(slog.String("source", e.Source))
	}

	result, err := inline.Eval(ctx, source, s.adapter(merged, e.Object), loader.Environment())
	if err != nil {
		return err
	}

	return printResult(ctx, result)
}

// printResult prints scalars verbatim and composite values as YAML.
func printResult(ctx context.Context, v any) error {
	w := stdout(ctx)

	switch v := v.(type) {
	case nil:
		return nil
	case string, bool, int, int64, float64:
		_, err := fmt.Fprintln(w, v)

		return err
	default:
		data, err := yaml.MarshalContext(ctx, v)
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = w.Write(data)

		return err
	}
}
