package env

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ardnew/uenv/dotenv"
	"github.com/ardnew/uenv/log"
)

// Loader reads and merges the dotenv files of one mode.
//
// A Loader holds no state between calls to [Loader.Load]; every call reads
// the files anew.
type Loader struct {
	fsys     fs.FS
	base     string
	environ  Environment
	snapshot bool
	mode     string
	modeKey  string
	parse    Parser
	logger   log.Logger
	maxDepth int
}

// NewLoader returns a Loader configured by opts.
//
// By default it reads from the current working directory, snapshots the
// process environment, and selects the mode from $NODE_ENV.
func NewLoader(opts ...Option) Loader {
	l := Loader{
		base:     DefaultBase,
		modeKey:  DefaultModeKey,
		parse:    dotenv.Parse,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&l)
		}
	}

	if l.fsys == nil {
		l.fsys = os.DirFS(".")
	}

	if !l.snapshot {
		l.environ = FromOS()
	}

	if l.logger.Logger == nil {
		l.logger = log.Default()
	}

	if l.parse == nil {
		l.parse = dotenv.Parse
	}

	if l.base == "" {
		l.base = DefaultBase
	}

	return l
}

// Mode returns the mode the loader will use.
func (l Loader) Mode() Mode {
	if l.mode != "" {
		return ParseMode(l.mode)
	}

	return ResolveMode(l.environ, l.modeKey)
}

// Environment returns the environment snapshot used by the loader.
func (l Loader) Environment() Environment { return l.environ }

// Candidate is a candidate file and whether it exists as a regular file.
type Candidate struct {
	Name   string
	Exists bool
}

// Candidates reports every candidate file of the loader's mode, most
// specific first.
func (l Loader) Candidates() ([]Candidate, error) {
	names := Candidates(l.base, l.Mode())
	out := make([]Candidate, 0, len(names))

	for _, name := range names {
		ok, err := l.exists(name)
		if err != nil {
			return nil, err
		}

		out = append(out, Candidate{Name: name, Exists: ok})
	}

	return out, nil
}

// Load merges the existing candidate files. Values from more specific files
// take precedence. A missing file is skipped; if no file exists the result
// is empty. The context is checked before each file is read.
func (l Loader) Load(ctx context.Context) (*Merged, error) {
	mode := l.Mode()
	merged := newMerged(mode)

	l.logger.DebugContext(ctx, "load dotenv",
		slog.String("mode", mode.String()),
		slog.String("base", l.base))

	for _, name := range Candidates(l.base, mode) {
		if err := ctx.Err(); err != nil {
			return nil, context.Cause(ctx)
		}

		ok, err := l.exists(name)
		if err != nil {
			return nil, err
		}

		if !ok {
			l.logger.TraceContext(ctx, "skip candidate", slog.String("file", name))

			continue
		}

		values, err := l.loadFile(name)
		if err != nil {
			return nil, err
		}

		added := merged.fold(name, values)

		l.logger.DebugContext(ctx, "merged candidate",
			slog.String("file", name),
			slog.Int("keys", len(values)),
			slog.Int("added", added))
	}

	return merged, nil
}

func (l Loader) loadFile(name string) (map[string]string, error) {
	f, err := l.fsys.Open(name)
	if err != nil {
		return nil, ErrReadFile.Wrap(err).With(slog.String("file", name))
	}
	defer f.Close()

	raw, err := l.parse(f)
	if err != nil {
		return nil, ErrParse.Wrap(err).With(slog.String("file", name))
	}

	values, err := Expand(raw, l.environ, WithExpandDepth(l.maxDepth))
	if err != nil {
		return nil, WrapError(err).With(slog.String("file", name))
	}

	return values, nil
}

// exists reports whether name is a regular file. Directories and other
// special files count as absent.
func (l Loader) exists(name string) (bool, error) {
	info, err := fs.Stat(l.fsys, name)

	switch {
	case err == nil:
		return info.Mode().IsRegular(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, ErrReadFile.Wrap(err).With(slog.String("file", name))
	}
}
