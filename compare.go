package remver

import "cmp"

// Compare returns -1, 0 or 1 as v orders before, equal to, or after o.
// Build metadata is ignored.
func (v *Version) Compare(o *Version) int {
	if c := v.CompareMain(o); c != 0 {
		return c
	}

	return v.ComparePre(o)
}

// CompareMain compares MAJOR, MINOR and PATCH only.
func (v *Version) CompareMain(o *Version) int {
	if c := cmp.Compare(v.major, o.major); c != 0 {
		return c
	}

	if c := cmp.Compare(v.minor, o.minor); c != 0 {
		return c
	}

	return cmp.Compare(v.patch, o.patch)
}

// ComparePre compares prerelease identifiers only. A version without a
// prerelease orders after one with a prerelease.
func (v *Version) ComparePre(o *Version) int {
	switch {
	case len(v.pre) == 0 && len(o.pre) == 0:
		return 0
	case len(v.pre) == 0:
		return 1
	case len(o.pre) == 0:
		return -1
	}

	return compareIdentifiers(v.pre, o.pre)
}

// CompareBuild compares build identifiers only. No build orders before any
// build; a shorter prefix orders before the longer sequence.
func (v *Version) CompareBuild(o *Version) int {
	a, b := v.build, o.build
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareBuildIdent(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}

// CompareWithBuild orders like Compare and breaks ties with CompareBuild.
func (v *Version) CompareWithBuild(o *Version) int {
	if c := v.Compare(o); c != 0 {
		return c
	}

	return v.CompareBuild(o)
}

// Equal reports whether v and o have the same precedence.
func (v *Version) Equal(o *Version) bool {
	return v.Compare(o) == 0
}

// CompareTo compares v with a string or *Version. Strings are parsed with
// v's options; a parse failure is returned instead of a result.
func (v *Version) CompareTo(other any) (int, error) {
	o, err := New(other, v.opts)
	if err != nil {
		return 0, err
	}

	return v.Compare(o), nil
}

// CompareMainTo is CompareMain with coercion of the other operand.
func (v *Version) CompareMainTo(other any) (int, error) {
	o, err := New(other, v.opts)
	if err != nil {
		return 0, err
	}

	return v.CompareMain(o), nil
}

// ComparePreTo is ComparePre with coercion of the other operand.
func (v *Version) ComparePreTo(other any) (int, error) {
	o, err := New(other, v.opts)
	if err != nil {
		return 0, err
	}

	return v.ComparePre(o), nil
}

// CompareBuildTo is CompareBuild with coercion of the other operand.
func (v *Version) CompareBuildTo(other any) (int, error) {
	o, err := New(other, v.opts)
	if err != nil {
		return 0, err
	}

	return v.CompareBuild(o), nil
}

// parsePair coerces both operands with the given loose flag.
func parsePair(a, b any, loose bool) (*Version, *Version, error) {
	opts := Options{Loose: loose}

	va, err := New(a, opts)
	if err != nil {
		return nil, nil, err
	}

	vb, err := New(b, opts)
	if err != nil {
		return nil, nil, err
	}

	return va, vb, nil
}

// Compare parses a and b (strings or *Version) and compares them.
func Compare(a, b any, loose bool) (int, error) {
	va, vb, err := parsePair(a, b, loose)
	if err != nil {
		return 0, err
	}

	return va.Compare(vb), nil
}

// CompareLoose is Compare with the loose grammar.
func CompareLoose(a, b any) (int, error) {
	return Compare(a, b, true)
}

// CompareMain parses a and b and compares their main tuples.
func CompareMain(a, b any, loose bool) (int, error) {
	va, vb, err := parsePair(a, b, loose)
	if err != nil {
		return 0, err
	}

	return va.CompareMain(vb), nil
}

// ComparePre parses a and b and compares their prereleases.
func ComparePre(a, b any, loose bool) (int, error) {
	va, vb, err := parsePair(a, b, loose)
	if err != nil {
		return 0, err
	}

	return va.ComparePre(vb), nil
}

// CompareBuild parses a and b and orders them by precedence, then by build.
func CompareBuild(a, b any, loose bool) (int, error) {
	va, vb, err := parsePair(a, b, loose)
	if err != nil {
		return 0, err
	}

	return va.CompareWithBuild(vb), nil
}

// Rcompare is Compare with the operands swapped.
func Rcompare(a, b any, loose bool) (int, error) {
	return Compare(b, a, loose)
}
