package config

import "os"

// expandEnv expands ${VAR} / $VAR references in raw YAML bytes using the
// standard library, the same shell-style substitution rule used for every
// other config file in this codebase. Missing variables expand to empty
// string; validate() is what is expected to catch the resulting empty
// required fields.
func expandEnv(data []byte) []byte {
	return []byte(os.Expand(string(data), os.Getenv))
}
