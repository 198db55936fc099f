package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/ardnew/uenv/env"
	"github.com/ardnew/uenv/inline"
	"github.com/ardnew/uenv/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the output writer of the kong context in ctx, or os.Stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// Settings locate the dotenv files and select the mode.
type Settings struct {
	Dir     string // working directory; "" is the current directory
	Base    string // base file name relative to Dir; "" is ".env"
	ModeKey string // mode variable; "" is NODE_ENV
	Mode    string // explicit mode overriding the mode variable

	// Environ replaces the process environment when non-nil.
	Environ *env.Environment
}

type settingsKey struct{}

// WithSettings returns a new context.Context containing s.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) Settings {
	s, _ := ctx.Value(settingsKey{}).(Settings)

	return s
}

// root splits Dir and Base into the directory served as the loader's file
// system and the base name within it.
func (s Settings) root() (dir, base string) {
	dir, base = s.Dir, s.Base

	if dir == "" {
		dir = "."
	}

	if base == "" {
		base = env.DefaultBase
	}

	full := base
	if !filepath.IsAbs(full) {
		full = filepath.Join(dir, base)
	}

	return filepath.Dir(full), filepath.Base(full)
}

func (s Settings) loader() env.Loader {
	dir, base := s.root()

	opts := []env.Option{
		env.WithFS(os.DirFS(dir)),
		env.WithBase(base),
		env.WithModeKey(s.ModeKey),
		env.WithMode(s.Mode),
		env.WithLogger(log.Default()),
	}

	if s.Environ != nil {
		opts = append(opts, env.WithEnvironment(*s.Environ))
	}

	return env.NewLoader(opts...)
}

func (s Settings) load(ctx context.Context) (*env.Merged, error) {
	return s.loader().Load(ctx)
}

func (s Settings) adapter(merged *env.Merged, object string) *inline.Adapter {
	return inline.New(merged,
		inline.WithModeKey(s.ModeKey),
		inline.WithObject(object),
		inline.WithLogger(log.Default()),
	)
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// readSource returns the contents of the named file, or of stdin for "-".
func readSource(name string) (string, error) {
	var r io.Reader = os.Stdin

	if name != stdinSource {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()

		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
