package cmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/uenv/inline"
)

func TestEvalRun(t *testing.T) {
	files := map[string]string{
		".env":            "API=http://localhost\nDEBUG=false\n",
		".env.production": "API=https://example.com\n",
	}

	tests := []struct {
		name    string
		environ map[string]string
		source  string
		want    string
	}{
		{"fallback", nil, `process.env.API + "/v1"`, "http://localhost/v1"},
		{"mode_files", map[string]string{"NODE_ENV": "production"}, `process.env.API`, "https://example.com"},
		{"live_wins", map[string]string{"API": "http://live"}, `process.env.API`, "http://live"},
		{"mode_literal", nil, `process.env.NODE_ENV == "development"`, "true"},
		{"builtin", nil, `path.base("/a/b.txt")`, "b.txt"},
		{"number", nil, `1 + 2`, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf, dir := runContext(t, files, tt.environ)

			e := &Eval{Object: inline.DefaultObject, Source: writeSource(t, dir, tt.source)}
			if err := e.Run(ctx); err != nil {
				t.Fatal(err)
			}

			if got := strings.TrimSpace(buf.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalRun_Composite(t *testing.T) {
	ctx, buf, dir := runContext(t, map[string]string{".env": "A=foo\n"}, nil)

	e := &Eval{Object: inline.DefaultObject, Source: writeSource(t, dir, `{"a": process.env.A}`)}
	if err := e.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if got := strings.TrimSpace(buf.String()); got != "a: foo" {
		t.Errorf("output = %q, want %q", got, "a: foo")
	}
}

func TestEvalRun_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   error
	}{
		{"compile", "undefinedName + 1", inline.ErrExprCompile},
		{"evaluate", "int(process.env.A)", inline.ErrExprEvaluate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, dir := runContext(t, map[string]string{".env": "A=foo\n"}, nil)

			err := (&Eval{Object: inline.DefaultObject, Source: writeSource(t, dir, tt.source)}).Run(ctx)
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}
