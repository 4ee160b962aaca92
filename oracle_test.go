package remver

import (
	"testing"

	"github.com/woozymasta/semver"
)

// TestCompare_AgreesWithSemver cross-checks precedence against an independent
// SemVer implementation on pairs whose order is unambiguous.
func TestCompare_AgreesWithSemver(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"1.2.3", "1.2.4"},
		{"2.0.0", "1.9.9"},
		{"1.10.0", "1.9.0"},
		{"0.0.1", "0.0.0"},
		{"10.0.0", "9.99.99"},
		{"1.0.0", "1.0.0-rc.1"},
		{"1.2.3-alpha", "1.2.4-alpha"},
	}

	sign := func(n int) int {
		switch {
		case n < 0:
			return -1
		case n > 0:
			return 1
		default:
			return 0
		}
	}

	for _, p := range pairs {
		want := oracleCompare(t, p[0], p[1])

		got, err := Compare(p[0], p[1], false)
		if err != nil {
			t.Fatalf("Compare(%q, %q): %v", p[0], p[1], err)
		}
		if got != sign(want) {
			t.Fatalf("Compare(%q, %q) = %d; semver says %d", p[0], p[1], got, sign(want))
		}
	}
}

func oracleCompare(t *testing.T, a, b string) int {
	t.Helper()

	va, ok := semver.Parse(a)
	if !ok || !va.IsValid() {
		t.Fatalf("oracle rejected %q", a)
	}

	vb, ok := semver.Parse(b)
	if !ok || !vb.IsValid() {
		t.Fatalf("oracle rejected %q", b)
	}

	return va.Compare(vb)
}
