// Package profile runs optional pprof profiling sessions for uenv.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof ./...
//	uenv --pprof-mode cpu --pprof-dir ./profiles resolve
//
// Without the tag [Start] returns a session whose Stop does nothing and
// [Modes] is empty. With the tag the package also registers the
// [net/http/pprof] handlers on [net/http.DefaultServeMux].
//
// Profiles are written by [github.com/pkg/profile] and can be inspected with
// "go tool pprof".
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
