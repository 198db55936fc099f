package cli

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"

	"github.com/ardnew/uenv/cli/cmd"
)

// loadYAML returns a [kong.ConfigurationLoader] for YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(loadYAML(path), path)
//
// Nested mappings are flattened by joining keys with a hyphen, so both of
// the following set --log-level:
//
//	log-level: debug
//
//	log:
//	  level: debug
//
// Keys may use underscores in place of hyphens. Command-line flags override
// config file values.
func loadYAML(path string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		var doc map[string]any

		err := yaml.NewDecoder(r).Decode(&doc)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, cmd.ErrConfigParse.
				With(slog.String("file", path)).
				Wrap(err)
		}

		cfg := config{}
		cfg.flatten("", doc)

		return cfg, nil
	}
}

// loadJSONC returns a [kong.ConfigurationLoader] for JSON config files that
// may contain comments and trailing commas.
func loadJSONC(path string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, cmd.ErrConfigParse.
				With(slog.String("file", path)).
				Wrap(err)
		}

		data = jsonc.ToJSON(data)
		if len(bytes.TrimSpace(data)) == 0 {
			return config{}, nil
		}

		res, err := kong.JSON(bytes.NewReader(data))
		if err != nil {
			return nil, cmd.ErrConfigParse.
				With(slog.String("file", path)).
				Wrap(err)
		}

		return res, nil
	}
}

// config implements [kong.Resolver] over a flattened configuration document.
type config map[string]any

// flatten stores the leaves of v under hyphen-joined keys.
func (r config) flatten(prefix string, v any) {
	switch v := v.(type) {
	case map[string]any:
		for k, sub := range v {
			r.flatten(join(prefix, k), sub)
		}

	case yaml.MapSlice:
		for _, item := range v {
			k, ok := item.Key.(string)
			if ok {
				r.flatten(join(prefix, k), item.Value)
			}
		}

	default:
		if prefix != "" {
			r[prefix] = scalar(v)
		}
	}
}

func join(prefix, key string) string {
	key = strings.ReplaceAll(key, "_", "-")
	if prefix == "" {
		return key
	}

	return prefix + "-" + key
}

// scalar converts numbers to strings, which kong parses per flag type.
func scalar(v any) any {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return v
	}
}

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	// Not found: let kong use defaults.
	return nil, nil
}
