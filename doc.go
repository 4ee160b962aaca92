/*
Package remver parses, compares and increments version identifiers of the
form MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].

The package performs no I/O. Every Version is immutable once built, so values
can be shared between goroutines freely.

Grammar notes:
  - Strict mode (the zero Options) accepts only the canonical grammar: no
    leading "v" or "=", no whitespace, no leading zeros.
  - Loose mode also accepts "  =v01.02.03", "1.2.3-beta.01" and "1.2.3foo"
    (read as 1.2.3-foo); numbers are normalized.
  - Inputs longer than MaxLength fail with CodeLengthExceeded before any
    matching. MAJOR, MINOR and PATCH are capped at MaxSafeInteger.
  - Numeric prerelease identifiers may be arbitrarily wide; they are kept as
    digit strings and compared by length, then digits.

Ordering notes:
  - Compare ignores build metadata; CompareWithBuild and CompareBuild use it
    to break ties.
  - A release orders after every prerelease of the same MAJOR.MINOR.PATCH.

Usage example:

	v, err := remver.Parse("1.2.3-alpha.1", remver.Strict)
	if err != nil {
		return err
	}

	next, _ := v.Inc(remver.KindPrerelease, "", remver.BaseZero)
	fmt.Println(next) // 1.2.3-alpha.2

	ok, _ := remver.Cmp("1.2.3", ">", "1.2.3-rc.1", false)
	fmt.Println(ok) // true
*/
package remver
