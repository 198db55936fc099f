package env

import (
	"log/slog"
	"regexp"
	"strings"
)

// DefaultMaxDepth bounds the length of a chain of references.
const DefaultMaxDepth = 64

// reference matches $NAME and ${NAME}.
var reference = regexp.MustCompile(`\$(\w+)|\$\{(\w+)\}`)

// ExpandOption configures [Expand].
type ExpandOption func(*expander)

// WithExpandDepth bounds the length of a chain of references. Values below
// one select [DefaultMaxDepth].
func WithExpandDepth(depth int) ExpandOption {
	return func(x *expander) { x.maxDepth = depth }
}

type expander struct {
	raw      map[string]string
	environ  Environment
	maxDepth int
}

// Expand resolves the variable references in every value of raw, the
// contents of one dotenv file, and returns a new mapping with the same keys.
//
// Each value is processed as follows. An empty value is first replaced by
// the value of the same key in environ. Then:
//
//   - a value starting with `\$` loses its leading backslash and is otherwise
//     kept verbatim;
//   - a value containing `\$` elsewhere has every `\$` replaced by `$` and is
//     otherwise kept verbatim;
//   - in any other value each $NAME or ${NAME} is replaced by the expansion of
//     NAME, looked up in raw, then environ, then defaulting to "".
//
// A reference that leads back to itself fails with [ErrReferenceCycle]; a
// chain longer than the configured depth fails with [ErrMaxDepthExceeded].
// Neither raw nor environ is modified.
func Expand(
	raw map[string]string,
	environ Environment,
	opts ...ExpandOption,
) (map[string]string, error) {
	x := expander{raw: raw, environ: environ}

	for _, opt := range opts {
		if opt != nil {
			opt(&x)
		}
	}

	if x.maxDepth < 1 {
		x.maxDepth = DefaultMaxDepth
	}

	out := make(map[string]string, len(raw))

	for key, val := range raw {
		if val == "" {
			val = environ.Get(key)
		}

		res, err := x.expand(val, []string{key})
		if err != nil {
			return nil, err
		}

		out[key] = res
	}

	return out, nil
}

// expand applies the escape and interpolation rules to val. chain holds the
// names being resolved, outermost first.
func (x *expander) expand(val string, chain []string) (string, error) {
	if strings.HasPrefix(val, `\$`) {
		return val[1:], nil
	}

	if strings.Contains(val, `\$`) {
		return strings.ReplaceAll(val, `\$`, "$"), nil
	}

	var err error

	res := reference.ReplaceAllStringFunc(val, func(tok string) string {
		if err != nil {
			return tok
		}

		var sub string

		sub, err = x.resolve(referenceName(tok), chain)

		return sub
	})
	if err != nil {
		return "", err
	}

	return res, nil
}

// resolve returns the expansion of the value named by name.
func (x *expander) resolve(name string, chain []string) (string, error) {
	for _, c := range chain {
		if c == name {
			return "", ErrReferenceCycle.With(
				slog.String("chain", strings.Join(append(chain, name), " -> ")),
			)
		}
	}

	if len(chain) >= x.maxDepth {
		return "", ErrMaxDepthExceeded.With(
			slog.Int("depth", x.maxDepth),
			slog.String("name", name),
		)
	}

	return x.expand(x.lookup(name), append(chain[:len(chain):len(chain)], name))
}

// lookup prefers a non-empty value from the file over the environment.
func (x *expander) lookup(name string) string {
	if v := x.raw[name]; v != "" {
		return v
	}

	return x.environ.Get(name)
}

func referenceName(tok string) string {
	m := reference.FindStringSubmatch(tok)
	if m[1] != "" {
		return m[1]
	}

	return m[2]
}
