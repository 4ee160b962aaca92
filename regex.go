package remver

import "regexp"

const (
	numericIdent      = `0|[1-9]\d*`
	numericIdentLoose = `\d+`
	nonNumericIdent   = `\d*[a-zA-Z-][a-zA-Z0-9-]*`
	buildIdent        = `[0-9A-Za-z-]+`

	preIdent      = `(?:` + numericIdent + `|` + nonNumericIdent + `)`
	preIdentLoose = `(?:` + numericIdentLoose + `|` + nonNumericIdent + `)`

	preRelease      = preIdent + `(?:\.` + preIdent + `)*`
	preReleaseLoose = preIdentLoose + `(?:\.` + preIdentLoose + `)*`
	build           = buildIdent + `(?:\.` + buildIdent + `)*`

	mainVersion      = `(` + numericIdent + `)\.(` + numericIdent + `)\.(` + numericIdent + `)`
	mainVersionLoose = `(` + numericIdentLoose + `)\.(` + numericIdentLoose + `)\.(` + numericIdentLoose + `)`
)

var (
	// Strict: MAJOR.MINOR.PATCH[-PRE][+BUILD], nothing around it.
	fullRe = regexp.MustCompile(`^` + mainVersion + `(?:-(` + preRelease + `))?(?:\+(` + build + `))?$`)

	// Loose: leading "v"/"="/space run, optional "-" before the prerelease.
	looseRe = regexp.MustCompile(`^[v=\s]*` + mainVersionLoose + `(?:-?(` + preReleaseLoose + `))?(?:\+(` + build + `))?$`)

	// Prerelease identifier arguments accepted by Inc.
	preIDRe      = regexp.MustCompile(`^` + preRelease + `$`)
	preIDLooseRe = regexp.MustCompile(`^` + preReleaseLoose + `$`)
)

// grammar returns the full-version matcher for mode.
func grammar(m Mode) *regexp.Regexp {
	if m == ModeLoose {
		return looseRe
	}

	return fullRe
}

// preIDGrammar returns the prerelease-argument matcher for mode.
func preIDGrammar(m Mode) *regexp.Regexp {
	if m == ModeLoose {
		return preIDLooseRe
	}

	return preIDRe
}
