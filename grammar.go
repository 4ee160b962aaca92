package remver

import (
	"strconv"
	"strings"
)

const (
	// MaxLength bounds the raw input; longer strings are rejected before matching.
	MaxLength = 256

	// MaxSafeComponentLength bounds the digits of MAJOR, MINOR and PATCH.
	MaxSafeComponentLength = 16

	// MaxSafeInteger is the largest accepted MAJOR, MINOR or PATCH value.
	MaxSafeInteger uint64 = 1<<53 - 1
)

// parts is a successful grammar match, already normalized.
type parts struct {
	major, minor, patch uint64
	pre                 []Identifier
	build               []string
}

// match runs the mode's grammar over raw and decomposes the result.
func match(raw string, mode Mode) (parts, error) {
	if len(raw) > MaxLength {
		return parts{}, lengthExceeded(raw, mode)
	}

	s := raw
	if mode == ModeLoose {
		s = strings.TrimSpace(s)
	}

	m := grammar(mode).FindStringSubmatch(s)
	if m == nil {
		return parts{}, grammarMismatch(raw, mode)
	}

	var p parts
	for i, dst := range []*uint64{&p.major, &p.minor, &p.patch} {
		n, ok := parseComponent(m[i+1])
		if !ok {
			return parts{}, grammarMismatch(raw, mode)
		}
		*dst = n
	}

	if m[4] != "" {
		ids := strings.Split(m[4], ".")
		p.pre = make([]Identifier, len(ids))
		for i, id := range ids {
			p.pre[i] = ParseIdentifier(id)
		}
	}

	if m[5] != "" {
		p.build = strings.Split(m[5], ".")
	}

	return p, nil
}

// parseComponent converts a main-tuple digit run, rejecting values wider than
// MaxSafeComponentLength digits or above MaxSafeInteger.
func parseComponent(s string) (uint64, bool) {
	s = trimZeros(s)
	if len(s) > MaxSafeComponentLength {
		return 0, false
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil || n > MaxSafeInteger {
		return 0, false
	}

	return n, true
}

// validPreID reports whether id is an acceptable prerelease argument in mode.
func validPreID(id string, mode Mode) bool {
	return len(id) <= MaxLength && preIDGrammar(mode).MatchString(id)
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
