package remver

import "strings"

// Valid returns the canonical form of s when it parses with opts.
func Valid(s string, opts Options) (string, bool) {
	v, err := Parse(s, opts)
	if err != nil {
		return "", false
	}

	return v.version, true
}

// Clean strips surrounding whitespace and a leading run of "=" / "v" before
// parsing, so "  =v1.2.3 " cleans to "1.2.3" even in strict mode.
func Clean(s string, opts Options) (string, bool) {
	t := strings.TrimLeft(strings.TrimSpace(s), "=v")

	return Valid(t, opts)
}
