package remver

// Options configures how version strings are parsed.
type Options struct {
	// Loose accepts non-canonical input: surrounding whitespace, a leading
	// "v" or "=", leading zeros and a prerelease without "-" ("1.2.3foo").
	Loose bool

	// IncludePrerelease is carried for range collaborators. It takes part in
	// option identity (see New) but does not change the grammar.
	IncludePrerelease bool
}

// Strict is the zero Options value.
var Strict = Options{}

// Loose parses with the tolerant grammar.
var Loose = Options{Loose: true}

// mode returns the grammar mode these options select.
func (o Options) mode() Mode {
	if o.Loose {
		return ModeLoose
	}

	return ModeStrict
}

// Mode selects one of the two grammars.
type Mode uint8

const (
	// ModeStrict accepts only canonical MAJOR.MINOR.PATCH[-PRE][+BUILD].
	ModeStrict Mode = iota
	// ModeLoose tolerates prefixes, whitespace and leading zeros.
	ModeLoose
)

// String returns a stable textual representation for Mode.
func (m Mode) String() string {
	if m == ModeLoose {
		return "loose"
	}

	return "strict"
}

// ReleaseKind names an increment transition.
type ReleaseKind uint8

const (
	// KindInvalid is returned by ParseReleaseKind for unknown tokens.
	KindInvalid ReleaseKind = iota
	// KindMajor bumps MAJOR and zeroes the rest.
	KindMajor
	// KindMinor bumps MINOR and zeroes PATCH.
	KindMinor
	// KindPatch bumps PATCH.
	KindPatch
	// KindPremajor bumps MAJOR and starts a prerelease.
	KindPremajor
	// KindPreminor bumps MINOR and starts a prerelease.
	KindPreminor
	// KindPrepatch bumps PATCH and starts a prerelease.
	KindPrepatch
	// KindPrerelease advances the prerelease, bumping PATCH first on releases.
	KindPrerelease
	// KindPre advances or injects the prerelease without touching the main tuple.
	KindPre
	// KindRelease drops prerelease and build, keeping the main tuple.
	KindRelease
)

// String returns the canonical token for the kind.
func (k ReleaseKind) String() string {
	switch k {
	case KindMajor:
		return "major"
	case KindMinor:
		return "minor"
	case KindPatch:
		return "patch"
	case KindPremajor:
		return "premajor"
	case KindPreminor:
		return "preminor"
	case KindPrepatch:
		return "prepatch"
	case KindPrerelease:
		return "prerelease"
	case KindPre:
		return "pre"
	case KindRelease:
		return "release"
	default:
		return "invalid"
	}
}

// isPre reports whether the kind produces a prerelease.
func (k ReleaseKind) isPre() bool {
	switch k {
	case KindPremajor, KindPreminor, KindPrepatch, KindPrerelease, KindPre:
		return true
	default:
		return false
	}
}

// ParseReleaseKind maps a token to ReleaseKind (case-insensitive).
// Unknown tokens yield KindInvalid.
func ParseReleaseKind(s string) ReleaseKind {
	switch toTok(s) {
	case "major":
		return KindMajor
	case "minor":
		return KindMinor
	case "patch":
		return KindPatch
	case "premajor":
		return KindPremajor
	case "preminor":
		return KindPreminor
	case "prepatch":
		return KindPrepatch
	case "prerelease":
		return KindPrerelease
	case "pre":
		return KindPre
	case "release":
		return KindRelease
	default:
		return KindInvalid
	}
}

// Base selects the numeric identifier a new prerelease starts from.
type Base uint8

const (
	// BaseZero starts new prereleases at 0 ("1.2.4-alpha.0").
	BaseZero Base = iota
	// BaseOne starts new prereleases at 1 ("1.2.4-alpha.1").
	BaseOne
	// BaseNone appends no number after a supplied identifier ("1.2.4-alpha").
	BaseNone
)

// String returns a stable textual representation for Base.
func (b Base) String() string {
	switch b {
	case BaseOne:
		return "1"
	case BaseNone:
		return "false"
	default:
		return "0"
	}
}

// digits returns the numeric value used for a fresh prerelease.
func (b Base) digits() string {
	if b == BaseOne {
		return "1"
	}

	return "0"
}

// ParseBase maps free-form strings to Base.
// Supported aliases (case-insensitive):
//
//	zero: "", "0", "zero"
//	one:  "1", "one"
//	none: "false", "none", "no"
func ParseBase(s string) Base {
	switch toTok(s) {
	case "1", "one":
		return BaseOne
	case "false", "none", "no":
		return BaseNone
	default:
		return BaseZero
	}
}

// SortMode controls the ordering of collection helpers.
type SortMode uint8

const (
	// SortNone preserves the existing order.
	SortNone SortMode = iota
	// SortAsc sorts ascending by version precedence.
	SortAsc
	// SortDesc sorts descending by version precedence.
	SortDesc
)

// String returns a stable textual representation for SortMode.
func (m SortMode) String() string {
	switch m {
	case SortAsc:
		return "ascending"
	case SortDesc:
		return "descending"
	default:
		return "none"
	}
}

// ParseSort maps strings to SortMode.
// Supported aliases:
//
//	asc:  "asc","ascending","inc","increase","up"
//	desc: "desc","descending","dec","decrease","down"
//	none: "none","default","asis"
func ParseSort(s string) SortMode {
	switch toTok(s) {
	case "asc", "ascending", "inc", "increase", "up":
		return SortAsc

	case "desc", "descending", "dec", "decrease", "down", "rsort":
		return SortDesc

	default:
		return SortNone
	}
}
