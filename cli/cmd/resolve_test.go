package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

var resolveFiles = map[string]string{
	".env":             "HOST=localhost\nURL=http://${HOST}:${PORT}\nPORT=80\n",
	".env.development": "PORT=8080\nGREETING=hello world\n",
}

func TestDotenvQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"a=b", "a=b"},
		{"http://x:1/y", "http://x:1/y"},
		{"two words", "'two words'"},
		{"$HOME", "'$HOME'"},
		{`back\slash`, `'back\slash'`},
		{"#hash", "'#hash'"},
		{`say "hi"`, `'say "hi"'`},
		{"it's", `"it's"`},
		{"line1\nline2", `"line1\nline2"`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := dotenvQuote(tt.in); got != tt.want {
				t.Errorf("dotenvQuote(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShellQuote(t *testing.T) {
	if got, want := shellQuote("it's"), `'it'\''s'`; got != want {
		t.Errorf("shellQuote() = %q, want %q", got, want)
	}
}

func TestResolveRun_Dotenv(t *testing.T) {
	ctx, buf, _ := runContext(t, resolveFiles, nil)

	if err := (&Resolve{Format: FormatDotenv}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := "GREETING='hello world'\n" +
		"HOST=localhost\n" +
		"PORT=8080\n" +
		"URL=http://localhost:80\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestResolveRun_Keys(t *testing.T) {
	ctx, buf, _ := runContext(t, resolveFiles, nil)

	r := &Resolve{Format: FormatDotenv, Keys: []string{"PORT", "MISSING", "HOST"}}
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}

	if got, want := buf.String(), "PORT=8080\nHOST=localhost\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResolveRun_Sources(t *testing.T) {
	ctx, buf, _ := runContext(t, resolveFiles, nil)

	r := &Resolve{Format: FormatDotenv, Sources: true, Keys: []string{"PORT", "HOST"}}
	if err := r.Run(ctx); err != nil {
		t.Fatal(err)
	}

	want := "# .env.development\nPORT=8080\n# .env\nHOST=localhost\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResolveRun_JSON(t *testing.T) {
	ctx, buf, _ := runContext(t, resolveFiles, nil)

	if err := (&Resolve{Format: FormatJSON, Indent: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var got map[string]string
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if got["PORT"] != "8080" || got["GREETING"] != "hello world" || len(got) != 4 {
		t.Errorf("decoded = %v", got)
	}
}

func TestResolveRun_JSONSources(t *testing.T) {
	ctx, buf, _ := runContext(t, resolveFiles, nil)

	if err := (&Resolve{Format: FormatJSON, Sources: true}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var got map[string]sourced
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}

	if want := (sourced{Value: "localhost", Source: ".env"}); got["HOST"] != want {
		t.Errorf("HOST = %+v, want %+v", got["HOST"], want)
	}
}

func TestResolveRun_YAML(t *testing.T) {
	ctx, buf, _ := runContext(t, resolveFiles, nil)

	if err := (&Resolve{Format: FormatYAML, Indent: 2}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	var got map[string]string
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML %q: %v", buf.String(), err)
	}

	if got["HOST"] != "localhost" || got["PORT"] != "8080" || len(got) != 4 {
		t.Errorf("decoded = %v", got)
	}

	if !strings.HasPrefix(buf.String(), "GREETING:") {
		t.Errorf("keys not sorted: %q", buf.String())
	}
}

func TestWriteYAML_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := writeYAML(context.Background(), &buf, nil, false, 2); err != nil {
		t.Fatal(err)
	}

	if got := buf.String(); got != "{}\n" {
		t.Errorf("output = %q, want %q", got, "{}\n")
	}
}

func TestWriteShell(t *testing.T) {
	var buf bytes.Buffer

	entries := []entry{
		{Key: "A", Value: "it's", Source: ".env"},
		{Key: "a.b", Value: "x", Source: ".env"},
		{Key: "_OK1", Value: "", Source: ".env.local"},
	}

	if err := writeShell(&buf, entries, false); err != nil {
		t.Fatal(err)
	}

	want := "export A='it'\\''s'\n# skipped a.b\nexport _OK1=''\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestResolveRun_UnknownFormat(t *testing.T) {
	ctx, _, _ := runContext(t, resolveFiles, nil)

	err := (&Resolve{Format: "toml"}).Run(ctx)
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Run() error = %v, want %v", err, ErrUnknownFormat)
	}
}

func TestResolveRun_ParseError(t *testing.T) {
	ctx, _, _ := runContext(t, map[string]string{".env": "OK=1\nnot a pair\n"}, nil)

	if err := (&Resolve{}).Run(ctx); err == nil {
		t.Error("Run() succeeded on malformed file, want error")
	}
}
