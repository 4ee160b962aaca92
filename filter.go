package remver

// FilterOptions configures Filter.
type FilterOptions struct {
	// Parse selects the grammar used to accept entries.
	Parse Options

	// ReleaseOnly drops prereleases.
	ReleaseOnly bool

	// Deduplicate keeps only the first entry of each canonical version
	// (MAJOR.MINOR.PATCH + PRERELEASE; build is ignored).
	Deduplicate bool

	// OutputCanonical returns canonical strings instead of the inputs.
	OutputCanonical bool

	// Sort defines the output ordering.
	Sort SortMode

	// Limit caps the output length when > 0.
	Limit int
}

// Filter keeps the entries of in that parse with opt.Parse, then applies
// release gating, deduplication, sorting and the limit, in that order.
func Filter(in []string, opt FilterOptions) []string {
	vers := make([]*Version, 0, len(in))
	for _, t := range in {
		v, err := Parse(t, opt.Parse)
		if err != nil {
			continue
		}

		if opt.ReleaseOnly && v.IsPrerelease() {
			continue
		}

		vers = append(vers, v)
	}

	if opt.Deduplicate {
		vers = deduplicate(vers)
	}

	if opt.Sort != SortNone {
		sortVersions(vers, opt.Sort)
	}

	out := make([]string, 0, len(vers))
	for _, v := range vers {
		out = append(out, pick(v, opt.OutputCanonical))
	}

	return capStrings(out, opt.Limit)
}

// Output selection
func pick(v *Version, canonical bool) string {
	if canonical {
		return v.version
	}

	return v.raw
}

// deduplicate keeps the first version of each canonical string.
func deduplicate(vs []*Version) []*Version {
	seen := make(map[string]struct{}, len(vs))
	keep := vs[:0]

	for _, v := range vs {
		if _, ok := seen[v.version]; ok {
			continue
		}

		seen[v.version] = struct{}{}
		keep = append(keep, v)
	}

	return keep
}
