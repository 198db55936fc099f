// Package dotenv parses dotenv files into flat string mappings.
//
// The accepted syntax is the one understood by the JavaScript dotenv package:
//
//	# comment
//	KEY=value
//	export OTHER = "quoted\nvalue"
//	SINGLE='no $expansion here'
//
// Values are returned verbatim apart from quote handling. Variable references
// such as $NAME are left untouched; expanding them is the job of package env.
package dotenv
