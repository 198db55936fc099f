// Package inline substitutes resolved dotenv values into expressions.
//
// An [Adapter] answers lookups of environment references against an
// [env.Merged] mapping. The mode variable becomes a string literal; any
// other key defined in the mapping becomes a conditional that prefers the
// live value at run time and falls back to the resolved one:
//
//	process.env.NODE_ENV  =>  "production"
//	process.env.API_URL   =>  process.env.API_URL != "" ? process.env.API_URL : "https://api"
//
// References to unknown keys, and to objects other than the configured one,
// are left untouched.
//
// The host syntax is that of [github.com/expr-lang/expr]. [Patcher] returns an
// [ast.Visitor] that applies an adapter to a parsed tree, [Rewrite] prints the
// patched source, and [Eval] compiles and runs it against a live
// environment.
package inline
