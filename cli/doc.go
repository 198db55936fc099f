// Package cli contains the command line interface for uenv.
//
// # Usage
//
//	uenv [flags] [resolve] [KEY...]
//	uenv mode
//	uenv files [--all]
//	uenv rewrite [--diff] [SOURCE]
//	uenv eval [SOURCE]
//	uenv browse [--query=TEXT]
//	uenv init [--force]
//
// Global flags select the dotenv files and the mode:
//
//   - --dir: directory containing the dotenv files
//   - --base: base file name (default ".env")
//   - --mode-var: variable naming the mode (default "NODE_ENV")
//   - --mode: explicit mode overriding the variable
//
// # Configuration
//
// Flag defaults may be set in config.yaml (YAML) or config.json (JSON with
// comments) in the user configuration directory, e.g. ~/.config/uenv.
// Nested keys are joined with a hyphen and underscores may replace hyphens:
//
//	base: .env
//	log:
//	  level: debug
//	  pretty: false
//
// Command-line flags override config file values. "uenv init" writes the
// current flag values to config.yaml.
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: output format (json, text)
//   - --log-time-layout: timestamp format (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information
//   - --log-pretty: colorized pretty printing
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o uenv .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default ~/.cache/uenv/pprof)
package cli
