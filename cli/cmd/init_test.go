package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

type initCLI struct {
	Dir      string `default:""`
	Base     string `default:".env"`
	Mode     string `default:""`
	Hidden   string `default:"secret" hidden:""`
	PprofDir string `default:"/tmp"`
	Version  kong.VersionFlag
}

func initContext(t *testing.T, confPath string, args ...string) context.Context {
	t.Helper()

	var cli initCLI

	parser, err := kong.New(&cli, kong.Vars{ConfigIdentifier: confPath, "version": "test"})
	if err != nil {
		t.Fatal(err)
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		t.Fatal(err)
	}

	return WithContext(context.Background(), ktx)
}

func TestInitRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		force   bool
		exists  bool
		wantErr error
	}{
		{name: "create_new_config"},
		{name: "overwrite_existing_with_force", force: true, exists: true},
		{name: "fail_without_force", exists: true, wantErr: ErrFileExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			confPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

			if tt.exists {
				if err := os.MkdirAll(filepath.Dir(confPath), 0o700); err != nil {
					t.Fatal(err)
				}

				if err := os.WriteFile(confPath, []byte("existing: true\n"), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			ctx := initContext(t, confPath, "--base=app.env", "--mode=test")

			err := (&Init{Force: tt.force}).Run(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatal(err)
			}

			data, err := os.ReadFile(confPath)
			if err != nil {
				t.Fatal(err)
			}

			var got map[string]any
			if err := yaml.Unmarshal(data, &got); err != nil {
				t.Fatalf("generated config is not valid YAML: %v\n%s", err, data)
			}

			want := map[string]any{"base": "app.env", "mode": "test"}
			if len(got) != len(want) {
				t.Errorf("config = %v, want %v", got, want)
			}

			for k, v := range want {
				if got[k] != v {
					t.Errorf("config[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestInitRun_NoTarget(t *testing.T) {
	if err := (&Init{}).Run(context.Background()); !errors.Is(err, ErrNoConfigTarget) {
		t.Errorf("Run() error = %v, want %v", err, ErrNoConfigTarget)
	}

	ctx := initContext(t, "")
	if err := (&Init{}).Run(ctx); !errors.Is(err, ErrNoConfigTarget) {
		t.Errorf("Run() error = %v, want %v", err, ErrNoConfigTarget)
	}
}

func TestFlagValues_Order(t *testing.T) {
	ctx := initContext(t, "unused", "--dir=/srv", "--mode=production")

	got := flagValues(kongContextFrom(ctx))

	var names []string
	for _, item := range got {
		names = append(names, item.Key.(string))
	}

	want := []string{"base", "mode"}
	if len(names) != len(want) {
		t.Fatalf("flagValues() keys = %v, want %v", names, want)
	}

	for i := range want {
		if names[i] != want[i] {
			t.Errorf("flagValues() keys = %v, want %v", names, want)

			break
		}
	}
}

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{"", true},
		{[]string{}, true},
		{map[string]int{}, true},
		{"x", false},
		{false, false},
		{0, false},
	}

	for _, tt := range tests {
		if got := isEmpty(tt.v); got != tt.want {
			t.Errorf("isEmpty(%#v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
