package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/uenv/env"
	"github.com/ardnew/uenv/log"
)

// Output formats of the resolve command.
const (
	FormatDotenv = "dotenv"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatShell  = "shell"
)

// Resolve prints the merged dotenv mapping of the resolved mode.
type Resolve struct {
	Format  string   `default:"dotenv" enum:"dotenv,json,yaml,shell" help:"Output format (${enum})." short:"o"`
	Sources bool     `help:"Include the file that defined each key." short:"S"`
	Indent  int      `default:"2" help:"Indent width for JSON and YAML output."`
	Keys    []string `arg:"" help:"Only print these keys." optional:""`
}

// Run executes the resolve command.
func (r *Resolve) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	merged, err := settingsFrom(ctx).load(ctx)
	if err != nil {
		return err
	}

	entries := r.entries(merged)

	log.DebugContext(ctx, "resolved",
		slog.String("mode", merged.Mode().String()),
		slog.Int("keys", len(entries)),
		slog.Any("files", merged.Files()))

	w := stdout(ctx)

	switch r.Format {
	case FormatDotenv, "":
		return writeDotenv(w, entries, r.Sources)
	case FormatShell:
		return writeShell(w, entries, r.Sources)
	case FormatJSON:
		return writeJSON(w, entries, r.Sources, r.Indent)
	case FormatYAML:
		return writeYAML(ctx, w, entries, r.Sources, r.Indent)
	default:
		return ErrUnknownFormat.With(slog.String("format", r.Format))
	}
}

type entry struct {
	Key    string
	Value  string
	Source string
}

func (r *Resolve) entries(merged *env.Merged) []entry {
	keys := r.Keys
	if len(keys) == 0 {
		keys = merged.Keys()
	}

	out := make([]entry, 0, len(keys))

	for _, k := range keys {
		v, ok := merged.Lookup(k)
		if !ok {
			continue
		}

		src, _ := merged.Source(k)
		out = append(out, entry{Key: k, Value: v, Source: src})
	}

	return out
}

var bareValue = regexp.MustCompile(`^[^\s"'#\\$]*$`)

// dotenvQuote quotes v when it holds characters that dotenv readers treat
// specially. Single quotes keep the value literal; values that contain a
// single quote or a newline fall back to double quotes.
func dotenvQuote(v string) string {
	switch {
	case bareValue.MatchString(v):
		return v
	case !strings.ContainsAny(v, "'\n"):
		return "'" + v + "'"
	default:
		return `"` + strings.ReplaceAll(v, "\n", `\n`) + `"`
	}
}

func writeDotenv(w io.Writer, entries []entry, sources bool) error {
	for _, e := range entries {
		if sources {
			if _, err := fmt.Fprintf(w, "# %s\n", e.Source); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "%s=%s\n", e.Key, dotenvQuote(e.Value)); err != nil {
			return err
		}
	}

	return nil
}

var shellName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func shellQuote(v string) string {
	return "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
}

func writeShell(w io.Writer, entries []entry, sources bool) error {
	for _, e := range entries {
		// Keys such as "a.b" are valid dotenv but not shell names.
		if !shellName.MatchString(e.Key) {
			if _, err := fmt.Fprintf(w, "# skipped %s\n", e.Key); err != nil {
				return err
			}

			continue
		}

		if sources {
			if _, err := fmt.Fprintf(w, "# %s\n", e.Source); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, "export %s=%s\n", e.Key, shellQuote(e.Value)); err != nil {
			return err
		}
	}

	return nil
}

type sourced struct {
	Value  string `json:"value"  yaml:"value"`
	Source string `json:"source" yaml:"source"`
}

func writeJSON(w io.Writer, entries []entry, sources bool, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	var v any

	if sources {
		m := make(map[string]sourced, len(entries))
		for _, e := range entries {
			m[e.Key] = sourced{Value: e.Value, Source: e.Source}
		}

		v = m
	} else {
		m := make(map[string]string, len(entries))
		for _, e := range entries {
			m[e.Key] = e.Value
		}

		v = m
	}

	if err := enc.Encode(v); err != nil {
		return ErrJSONMarshal.Wrap(err)
	}

	return nil
}

func writeYAML(
	ctx context.Context,
	w io.Writer,
	entries []entry,
	sources bool,
	indent int,
) error {
	doc := make(yaml.MapSlice, 0, len(entries))

	for _, e := range entries {
		var v any = e.Value
		if sources {
			v = yaml.MapSlice{
				{Key: "value", Value: e.Value},
				{Key: "source", Value: e.Source},
			}
		}

		doc = append(doc, yaml.MapItem{Key: e.Key, Value: v})
	}

	opts := []yaml.EncodeOption{yaml.UseLiteralStyleIfMultiline(true)}
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	}

	if len(doc) == 0 {
		_, err := fmt.Fprintln(w, "{}")

		return err
	}

	data, err := yaml.MarshalContext(ctx, doc, opts...)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}
