package remver

import (
	"strconv"
	"strings"
)

// Version is a parsed, immutable version identifier.
// The zero value is not valid; obtain instances from Parse or New.
type Version struct {
	raw     string
	version string
	build   []string
	pre     []Identifier
	major   uint64
	minor   uint64
	patch   uint64
	opts    Options
}

// New builds a Version from a string or an existing Version.
//
// A *Version whose Options equal opts is returned as is. Versions parsed with
// other options are rebuilt from their canonical string. Any other input type,
// as well as a nil or zero Version, fails with a CodeTypeMismatch error.
func New(value any, opts Options) (*Version, error) {
	switch v := value.(type) {
	case *Version:
		if v == nil || v.version == "" {
			return nil, typeMismatch(value)
		}
		if v.opts == opts {
			return v, nil
		}
		return Parse(v.version, opts)

	case Version:
		return New(&v, opts)

	case string:
		return Parse(v, opts)

	default:
		return nil, typeMismatch(value)
	}
}

// Parse parses s with the grammar selected by opts.
func Parse(s string, opts Options) (*Version, error) {
	p, err := match(s, opts.mode())
	if err != nil {
		return nil, err
	}

	v := &Version{
		raw:   s,
		major: p.major,
		minor: p.minor,
		patch: p.patch,
		pre:   p.pre,
		build: p.build,
		opts:  opts,
	}
	v.version = v.format()
	if len(v.version) > MaxLength {
		return nil, lengthExceeded(s, opts.mode())
	}

	return v, nil
}

// ParseStrict parses s with the strict grammar.
func ParseStrict(s string) (*Version, error) {
	return Parse(s, Strict)
}

// ParseLoose parses s with the loose grammar.
func ParseLoose(s string) (*Version, error) {
	return Parse(s, Loose)
}

// MustParse is like Parse but panics on error.
// Use it for hardcoded versions only.
func MustParse(s string, opts Options) *Version {
	v, err := Parse(s, opts)
	if err != nil {
		panic("remver: MustParse: " + err.Error())
	}

	return v
}

// Major returns the MAJOR component.
func (v *Version) Major() uint64 { return v.major }

// Minor returns the MINOR component.
func (v *Version) Minor() uint64 { return v.minor }

// Patch returns the PATCH component.
func (v *Version) Patch() uint64 { return v.patch }

// Prerelease returns a copy of the prerelease identifiers.
func (v *Version) Prerelease() []Identifier {
	if len(v.pre) == 0 {
		return nil
	}

	return append([]Identifier(nil), v.pre...)
}

// Build returns a copy of the build identifiers.
func (v *Version) Build() []string {
	if len(v.build) == 0 {
		return nil
	}

	return append([]string(nil), v.build...)
}

// IsPrerelease reports whether the version carries prerelease identifiers.
func (v *Version) IsPrerelease() bool { return len(v.pre) > 0 }

// Options returns the options the version was parsed with.
func (v *Version) Options() Options { return v.opts }

// Raw returns the input the version was built from. For incremented
// versions this is the new canonical form.
func (v *Version) Raw() string { return v.raw }

// String returns the canonical MAJOR.MINOR.PATCH[-PRERELEASE] form.
// Build metadata is never included.
func (v *Version) String() string { return v.version }

// Canonical is an alias of String.
func (v *Version) Canonical() string { return v.version }

// Full returns the canonical form followed by "+BUILD" when present.
func (v *Version) Full() string {
	if len(v.build) == 0 {
		return v.version
	}

	return v.version + "+" + strings.Join(v.build, ".")
}

// format renders the canonical string from the structured fields.
func (v *Version) format() string {
	var b strings.Builder
	b.Grow(16)
	b.WriteString(strconv.FormatUint(v.major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.patch, 10))

	for i, id := range v.pre {
		if i == 0 {
			b.WriteByte('-')
		} else {
			b.WriteByte('.')
		}
		b.WriteString(id.s)
	}

	return b.String()
}
