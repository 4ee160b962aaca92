package remver

import "strings"

// Inc returns the version that follows v for the given kind. v is left
// unchanged and the result never carries build metadata.
//
// identifier names the prerelease tag used by the pre* kinds ("alpha",
// "rc.1", ...); base selects the number appended to a fresh tag.
func (v *Version) Inc(kind ReleaseKind, identifier string, base Base) (*Version, error) {
	mode := v.opts.mode()

	var tag []Identifier
	if kind.isPre() {
		if identifier == "" && base == BaseNone {
			return nil, invalidIncrement(v.raw, mode, "identifier is empty")
		}

		if identifier != "" {
			if !validPreID(identifier, mode) {
				return nil, invalidIncrement(v.raw, mode, "invalid identifier: %s", identifier)
			}
			for _, id := range strings.Split(identifier, ".") {
				tag = append(tag, ParseIdentifier(id))
			}
		}
	}

	w := &Version{
		raw:   v.raw,
		major: v.major,
		minor: v.minor,
		patch: v.patch,
		pre:   v.pre,
		opts:  v.opts,
	}

	switch kind {
	case KindMajor:
		if w.minor != 0 || w.patch != 0 || len(w.pre) == 0 {
			w.major++
		}
		w.minor, w.patch, w.pre = 0, 0, nil

	case KindMinor:
		if w.patch != 0 || len(w.pre) == 0 {
			w.minor++
		}
		w.patch, w.pre = 0, nil

	case KindPatch:
		w.bumpPatch()

	case KindPremajor:
		w.major++
		w.minor, w.patch, w.pre = 0, 0, nil
		if err := w.bumpPre(tag, base); err != nil {
			return nil, err
		}

	case KindPreminor:
		w.minor++
		w.patch, w.pre = 0, nil
		if err := w.bumpPre(tag, base); err != nil {
			return nil, err
		}

	case KindPrepatch:
		w.pre = nil
		w.bumpPatch()
		if err := w.bumpPre(tag, base); err != nil {
			return nil, err
		}

	case KindPrerelease:
		if len(w.pre) == 0 {
			w.bumpPatch()
		}
		if err := w.bumpPre(tag, base); err != nil {
			return nil, err
		}

	case KindPre:
		if err := w.bumpPre(tag, base); err != nil {
			return nil, err
		}

	case KindRelease:
		w.pre = nil

	default:
		return nil, invalidIncrement(v.raw, mode, "%s", kind)
	}

	if w.major > MaxSafeInteger || w.minor > MaxSafeInteger || w.patch > MaxSafeInteger {
		return nil, invalidIncrement(v.raw, mode, "%s overflows %d", kind, MaxSafeInteger)
	}

	w.version = w.format()
	if len(w.version) > MaxLength {
		return nil, lengthExceeded(w.version, mode)
	}
	w.raw = w.version

	return w, nil
}

// bumpPatch increments PATCH unless a prerelease of it is being finalized.
func (v *Version) bumpPatch() {
	if len(v.pre) == 0 {
		v.patch++
	}
	v.pre = nil
}

// bumpPre advances the prerelease sequence of v in place. v.pre may alias the
// source version, so it is copied before being modified.
func (v *Version) bumpPre(tag []Identifier, base Base) error {
	start := Identifier{s: base.digits(), num: true}

	if len(v.pre) == 0 {
		v.pre = []Identifier{start}
	} else {
		pre := append([]Identifier(nil), v.pre...)

		i := len(pre) - 1
		for ; i >= 0; i-- {
			if pre[i].num {
				pre[i] = pre[i].next()
				break
			}
		}

		if i < 0 {
			if base == BaseNone && compareIdentifiers(pre, tag) == 0 {
				return invalidIncrement(v.raw, v.opts.mode(), "identifier already exists")
			}
			pre = append(pre, start)
		}

		v.pre = pre
	}

	if len(tag) == 0 {
		return nil
	}

	if hasTag(v.pre, tag) {
		return nil
	}

	fresh := append([]Identifier(nil), tag...)
	if base != BaseNone {
		fresh = append(fresh, start)
	}
	v.pre = fresh

	return nil
}

// hasTag reports whether pre starts with tag followed by a numeric identifier.
func hasTag(pre, tag []Identifier) bool {
	if len(pre) <= len(tag) {
		return false
	}

	for i := range tag {
		if pre[i].Compare(tag[i]) != 0 {
			return false
		}
	}

	return pre[len(tag)].num
}

// Inc parses version with opts and increments it. kind is a token accepted
// by ParseReleaseKind.
func Inc(version any, kind string, opts Options, identifier string, base Base) (*Version, error) {
	v, err := New(version, opts)
	if err != nil {
		return nil, err
	}

	k := ParseReleaseKind(kind)
	if k == KindInvalid {
		return nil, invalidIncrement(v.raw, opts.mode(), "%s", kind)
	}

	return v.Inc(k, identifier, base)
}
