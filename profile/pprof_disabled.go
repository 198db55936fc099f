//go:build !pprof

package profile

// Enabled reports whether profiling support is compiled in.
const Enabled = false

// Modes returns nil; no profiling modes are available without the pprof tag.
func Modes() []string { return nil }

func begin(string, settings) Session { return nop{} }
