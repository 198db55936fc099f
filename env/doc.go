// Package env resolves mode-specific dotenv files into a single mapping.
//
// A [Loader] determines the active [Mode], reads the candidate files returned
// by [Candidates] (most specific first), expands variable references in each
// file with [Expand], and folds the results into a read-only [Merged]
// mapping in which the most specific file wins.
//
// The process environment is only ever read through an [Environment]
// snapshot. Nothing in this package writes environment variables or files.
package env
