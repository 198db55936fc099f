package env

import (
	"io"
	"io/fs"

	"github.com/ardnew/uenv/log"
)

// Parser converts the contents of one dotenv file into a raw mapping.
type Parser func(io.Reader) (map[string]string, error)

// Option configures a [Loader].
type Option func(*Loader)

// WithFS sets the file system the candidate files are read from.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) { l.fsys = fsys }
}

// WithBase sets the base file name, [DefaultBase] by default. The name is a
// slash-separated path relative to the root of the loader's file system.
func WithBase(base string) Option {
	return func(l *Loader) { l.base = base }
}

// WithEnvironment sets the environment used to select the mode and to
// resolve references not defined in a file.
func WithEnvironment(environ Environment) Option {
	return func(l *Loader) {
		l.environ = environ
		l.snapshot = true
	}
}

// WithMode overrides the mode read from the environment. The value is
// normalized with [ParseMode]; an empty string restores the default
// behavior.
func WithMode(mode string) Option {
	return func(l *Loader) { l.mode = mode }
}

// WithModeKey sets the environment variable that selects the mode,
// [DefaultModeKey] by default.
func WithModeKey(key string) Option {
	return func(l *Loader) { l.modeKey = key }
}

// WithParser replaces the dotenv parser.
func WithParser(p Parser) Option {
	return func(l *Loader) { l.parse = p }
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithMaxDepth bounds the length of reference chains during expansion.
func WithMaxDepth(depth int) Option {
	return func(l *Loader) { l.maxDepth = depth }
}
