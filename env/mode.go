package env

import (
	"iter"
	"slices"
)

// Mode is the active runtime profile. It selects which dotenv files are read.
type Mode string

const (
	Development Mode = "development"
	Test        Mode = "test"
	Production  Mode = "production"
)

// DefaultMode is used for any unrecognized mode value.
const DefaultMode = Development

// DefaultModeKey is the environment variable that selects the mode.
const DefaultModeKey = "NODE_ENV"

var modes = []Mode{Development, Test, Production}

// Modes returns an iterator over the recognized modes.
func Modes() iter.Seq[Mode] { return slices.Values(modes) }

// ParseMode returns s as a Mode if it names one exactly, and [DefaultMode]
// otherwise. Matching is case-sensitive and never fails.
func ParseMode(s string) Mode {
	if m := Mode(s); slices.Contains(modes, m) {
		return m
	}

	return DefaultMode
}

// ResolveMode reads the mode from variable key of environ. An empty key
// means [DefaultModeKey].
func ResolveMode(environ Environment, key string) Mode {
	if key == "" {
		key = DefaultModeKey
	}

	return ParseMode(environ.Get(key))
}

func (m Mode) String() string { return string(m) }
