// Package log wraps [log/slog] with the small set of knobs uenv exposes on the
// command line: minimum level, output format, timestamp layout, caller info,
// and pretty printing.
//
// A [Logger] is an immutable value. Configuration is applied once at
// construction with functional options, and [Logger.Wrap] derives a new
// Logger from an existing one:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText))
//	logger.Debug("candidate", slog.String("path", ".env.local"))
//
// Every level has a context-aware variant. The context-unaware methods pass
// [DefaultContextProvider] to their counterparts.
//
// The package also keeps a process-wide default logger used by the
// package-level functions ([Info], [DebugContext], ...). [Config] replaces it
// with a wrapped copy, so loggers previously returned by [Default] are not
// affected.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-key detail that is
// too noisy for debug output. Level names are printed upper case.
//
// # Pretty printing
//
// When pretty printing is enabled, text records are written as key=value pairs
// without quoting and JSON records are written one attribute per line. Colors
// are applied with lipgloss and are dropped automatically when the output is
// not a terminal.
package log
