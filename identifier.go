package remver

import (
	"cmp"
	"strconv"
	"strings"
)

// Identifier is one dot-separated prerelease element. It is either numeric,
// holding a decimal digit string of any width without leading zeros, or text.
// Numeric values never overflow: they are compared by length, then digits.
type Identifier struct {
	s   string
	num bool
}

// NumericIdentifier returns a numeric identifier for n.
func NumericIdentifier(n uint64) Identifier {
	return Identifier{s: strconv.FormatUint(n, 10), num: true}
}

// ParseIdentifier classifies s. All-digit strings become numeric with leading
// zeros removed; anything else is kept as text.
func ParseIdentifier(s string) Identifier {
	if isDigits(s) {
		return Identifier{s: trimZeros(s), num: true}
	}

	return Identifier{s: s}
}

// IsNumeric reports whether the identifier is numeric.
func (id Identifier) IsNumeric() bool { return id.num }

// String returns the identifier as it appears in a version string.
func (id Identifier) String() string { return id.s }

// Uint64 returns the numeric value when it fits into uint64.
func (id Identifier) Uint64() (uint64, bool) {
	if !id.num {
		return 0, false
	}

	n, err := strconv.ParseUint(id.s, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// Compare orders identifiers: numeric ones numerically, text ones
// lexicographically, numeric before text.
func (id Identifier) Compare(o Identifier) int {
	switch {
	case id.num && o.num:
		return compareDigits(id.s, o.s)
	case id.num:
		return -1
	case o.num:
		return 1
	default:
		return strings.Compare(id.s, o.s)
	}
}

// next returns the numeric successor. Only valid for numeric identifiers.
func (id Identifier) next() Identifier {
	return Identifier{s: incDigits(id.s), num: true}
}

// compareIdentifiers compares two prerelease sequences position by position;
// a strict prefix is less than the longer sequence.
func compareIdentifiers(a, b []Identifier) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// compareBuildIdent compares build identifiers with the prerelease rule:
// digits-only ones numerically and before any text one.
func compareBuildIdent(a, b string) int {
	return ParseIdentifier(a).Compare(ParseIdentifier(b))
}

// compareDigits compares decimal strings without leading zeros.
func compareDigits(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

// incDigits adds one to a decimal digit string.
func incDigits(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}

	return "1" + string(b)
}

// trimZeros strips leading zeros, keeping a single "0".
func trimZeros(s string) string {
	t := strings.TrimLeft(s, "0")
	if t == "" && s != "" {
		return "0"
	}

	return t
}
