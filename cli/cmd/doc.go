// Package cmd implements the uenv subcommands.
//
// Commands receive a [context.Context] carrying the parsed [kong.Context]
// (see [WithContext]) and the resolver [Settings] (see [WithSettings]). They
// write results to the kong context's standard output.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the YAML configuration file.
	ConfigIdentifier = "config"
)
