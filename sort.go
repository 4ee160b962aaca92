package remver

import "sort"

// Sort orders version strings by precedence, breaking ties by build
// metadata, and returns a new slice. Strings that do not parse with opts
// are dropped; use Filter to also deduplicate or canonicalize.
func Sort(in []string, mode SortMode, opts Options) []string {
	vers := make([]*Version, 0, len(in))
	for _, t := range in {
		v, err := Parse(t, opts)
		if err != nil {
			continue
		}
		vers = append(vers, v)
	}

	sortVersions(vers, mode)

	out := make([]string, len(vers))
	for i, v := range vers {
		out[i] = v.raw
	}

	return out
}

// sortVersions sorts in place; equal versions keep their relative order.
func sortVersions(vs []*Version, mode SortMode) {
	if mode == SortNone || len(vs) < 2 {
		return
	}

	sort.SliceStable(vs, func(i, j int) bool {
		cmp := vs[i].CompareWithBuild(vs[j])
		if mode == SortAsc {
			return cmp < 0
		}
		return cmp > 0 // SortDesc
	})
}

// SortN sorts and then returns at most N items.
func SortN(in []string, mode SortMode, opts Options, n int) []string {
	return capStrings(Sort(in, mode, opts), n)
}

// Max returns the highest valid version in the list, or nil when none parse.
func Max(in []string, opts Options) *Version {
	return pickBest(in, opts, 1)
}

// Min returns the lowest valid version in the list, or nil when none parse.
func Min(in []string, opts Options) *Version {
	return pickBest(in, opts, -1)
}

func pickBest(in []string, opts Options, sign int) *Version {
	var best *Version
	for _, t := range in {
		v, err := Parse(t, opts)
		if err != nil {
			continue
		}

		if best == nil || v.Compare(best)*sign > 0 {
			best = v
		}
	}

	return best
}
