package env

import (
	"iter"
	"maps"
	"slices"
)

// Merged is the result of one [Loader.Load] call: every key defined by the
// mode's dotenv files with its expanded value. It is read-only.
//
// A nil *Merged behaves as an empty mapping.
type Merged struct {
	mode   Mode
	files  []string
	values map[string]string
	source map[string]string
}

func newMerged(mode Mode) *Merged {
	return &Merged{
		mode:   mode,
		values: make(map[string]string),
		source: make(map[string]string),
	}
}

// NewMerged builds a Merged mapping directly from values, attributing every
// key to no file.
func NewMerged(mode Mode, values map[string]string) *Merged {
	m := newMerged(ParseMode(string(mode)))
	maps.Copy(m.values, values)

	for k := range values {
		m.source[k] = ""
	}

	return m
}

// fold adds the keys of values not already present and returns how many
// were added.
func (m *Merged) fold(file string, values map[string]string) int {
	m.files = append(m.files, file)
	added := 0

	for k, v := range values {
		if _, ok := m.values[k]; ok {
			continue
		}

		m.values[k] = v
		m.source[k] = file
		added++
	}

	return added
}

// Mode returns the mode the mapping was resolved for.
func (m *Merged) Mode() Mode {
	if m == nil {
		return DefaultMode
	}

	return m.mode
}

// Files returns the files that were read, most specific first.
func (m *Merged) Files() []string {
	if m == nil {
		return nil
	}

	return slices.Clone(m.files)
}

// Lookup returns the value of key and whether it is defined.
func (m *Merged) Lookup(key string) (string, bool) {
	if m == nil {
		return "", false
	}

	v, ok := m.values[key]

	return v, ok
}

// Get returns the value of key, or "" if it is undefined.
func (m *Merged) Get(key string) string {
	v, _ := m.Lookup(key)

	return v
}

// Source returns the file that defined key.
func (m *Merged) Source(key string) (string, bool) {
	if m == nil {
		return "", false
	}

	f, ok := m.source[key]

	return f, ok
}

// Keys returns the sorted keys.
func (m *Merged) Keys() []string {
	if m == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(m.values))
}

// Len returns the number of keys.
func (m *Merged) Len() int {
	if m == nil {
		return 0
	}

	return len(m.values)
}

// Map returns a copy of the mapping.
func (m *Merged) Map() map[string]string {
	if m == nil {
		return map[string]string{}
	}

	return maps.Clone(m.values)
}

// All returns an iterator over the key/value pairs sorted by key.
func (m *Merged) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}
