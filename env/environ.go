package env

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// Environment is an immutable snapshot of environment variables.
//
// The zero value is an empty environment. Every constructor copies its input,
// so later changes to the source are not observed.
type Environment struct {
	vars map[string]string
}

// FromOS snapshots the process environment.
func FromOS() Environment { return FromList(os.Environ()) }

// FromMap snapshots m.
func FromMap(m map[string]string) Environment {
	return Environment{vars: maps.Clone(m)}
}

// FromList snapshots a list of "KEY=value" strings in the format of
// [os.Environ]. Entries without '=' are ignored; later entries win.
func FromList(list []string) Environment {
	vars := make(map[string]string, len(list))

	for _, kv := range list {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			vars[k] = v
		}
	}

	return Environment{vars: vars}
}

// Lookup returns the value of key and whether it is set.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e.vars[key]

	return v, ok
}

// Get returns the value of key, or "" if it is unset.
func (e Environment) Get(key string) string { return e.vars[key] }

// Keys returns the sorted variable names.
func (e Environment) Keys() []string {
	return slices.Sorted(maps.Keys(e.vars))
}

// Len returns the number of variables.
func (e Environment) Len() int { return len(e.vars) }

// Map returns a copy of the variables.
func (e Environment) Map() map[string]string {
	if e.vars == nil {
		return map[string]string{}
	}

	return maps.Clone(e.vars)
}

// List returns the variables in the format of [os.Environ], sorted by name.
func (e Environment) List() []string {
	list := make([]string, 0, len(e.vars))

	for _, k := range e.Keys() {
		list = append(list, k+"="+e.vars[k])
	}

	return list
}
