package inline

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/ardnew/uenv/env"
	"github.com/ardnew/uenv/log"
)

// DefaultObject is the object through which expressions read environment
// variables.
const DefaultObject = "process.env"

// Kind selects how a reference is replaced.
type Kind int

const (
	// Literal replaces the reference with a string constant.
	Literal Kind = iota + 1
	// Fallback keeps the live reference but falls back to a string constant
	// when the live value is empty.
	Fallback
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Fallback:
		return "fallback"
	default:
		return "none"
	}
}

// Replacement describes the substitution for one reference.
type Replacement struct {
	Kind  Kind
	Value string
}

// Resolver decides the replacement for a reference to the member path, such
// as ["process", "env", "KEY"]. It reports false to leave the reference
// untouched.
type Resolver interface {
	Resolve(path []string) (Replacement, bool)
}

// ResolverFunc adapts a function to [Resolver].
type ResolverFunc func(path []string) (Replacement, bool)

// Resolve calls f(path).
func (f ResolverFunc) Resolve(path []string) (Replacement, bool) { return f(path) }

// Adapter resolves references against a merged dotenv mapping.
// It never modifies the mapping.
type Adapter struct {
	merged  *env.Merged
	modeKey string
	object  []string
	logger  log.Logger
}

// Option configures an [Adapter].
type Option func(*Adapter)

// WithModeKey sets the key replaced by the mode literal,
// [env.DefaultModeKey] by default.
func WithModeKey(key string) Option {
	return func(a *Adapter) { a.modeKey = key }
}

// WithObject sets the dotted path of the environment object,
// [DefaultObject] by default.
func WithObject(object string) Option {
	return func(a *Adapter) { a.object = splitObject(object) }
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}

// New returns an Adapter over merged. A nil mapping is empty.
func New(merged *env.Merged, opts ...Option) *Adapter {
	a := &Adapter{
		merged:  merged,
		modeKey: env.DefaultModeKey,
		object:  splitObject(DefaultObject),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	if a.modeKey == "" {
		a.modeKey = env.DefaultModeKey
	}

	if len(a.object) == 0 {
		a.object = splitObject(DefaultObject)
	}

	if a.logger.Logger == nil {
		a.logger = log.Default()
	}

	return a
}

// Object returns the member path of the environment object.
func (a *Adapter) Object() []string { return slices.Clone(a.object) }

// Mode returns the mode inlined for the mode key.
func (a *Adapter) Mode() env.Mode { return a.merged.Mode() }

// Resolve implements [Resolver].
//
// A reference to the mode key yields the mode as a [Literal] whatever the
// mapping holds. A reference to any other key defined in the mapping yields
// a [Fallback] to its value.
func (a *Adapter) Resolve(path []string) (Replacement, bool) {
	n := len(a.object)
	if len(path) != n+1 || !slices.Equal(path[:n], a.object) {
		return Replacement{}, false
	}

	key := path[n]

	if key == a.modeKey {
		a.logger.Trace("inline mode",
			slog.String("key", key),
			slog.String("mode", a.Mode().String()))

		return Replacement{Kind: Literal, Value: a.Mode().String()}, true
	}

	if v, ok := a.merged.Lookup(key); ok {
		a.logger.Trace("inline fallback", slog.String("key", key))

		return Replacement{Kind: Fallback, Value: v}, true
	}

	return Replacement{}, false
}

func splitObject(object string) []string {
	var path []string

	for seg := range strings.SplitSeq(object, ".") {
		if seg = strings.TrimSpace(seg); seg != "" {
			path = append(path, seg)
		}
	}

	return path
}
