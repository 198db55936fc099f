package env

// DefaultBase is the base name of the least specific dotenv file.
const DefaultBase = ".env"

// Candidates returns the dotenv file names for mode, most specific first:
//
//	<base>.<mode>.local
//	<base>.<mode>
//	<base>.local     (omitted in Test mode)
//	<base>
//
// Test mode skips the shared local override so that test runs do not depend
// on a developer's machine.
func Candidates(base string, mode Mode) []string {
	if base == "" {
		base = DefaultBase
	}

	name := make([]string, 0, 4)
	name = append(name, base+"."+string(mode)+".local", base+"."+string(mode))

	if mode != Test {
		name = append(name, base+".local")
	}

	return append(name, base)
}
