/*
Package main is the remver cli tool: it validates, increments and sorts
version identifiers given as arguments or on stdin.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/woozymasta/remver"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type Options struct {
	// betteralign:ignore

	// Grammar
	OptionsParse OptionsParse `group:"Parsing"`
	// Increment
	OptionsInc OptionsInc `group:"Increment"`
	// Output format
	OptionsOutput OptionsOutput `group:"Output"`

	Verbose bool `long:"verbose" description:"Log skipped inputs to stderr"`
}

type OptionsParse struct {
	Loose             bool `short:"l" long:"loose"              description:"Accept non-canonical input (v/= prefix, leading zeros, 1.2.3foo)"`
	IncludePrerelease bool `short:"p" long:"include-prerelease" description:"Parse with includePrerelease set"`
}

type OptionsInc struct {
	Kind  string `short:"i" long:"increment" description:"Increment every version by this kind" choice:"major" choice:"minor" choice:"patch" choice:"premajor" choice:"preminor" choice:"prepatch" choice:"prerelease" choice:"pre" choice:"release"`
	PreID string `long:"preid"               description:"Identifier for the pre* increments (alpha, beta, rc...)"`
	Base  string `short:"n" long:"base"      description:"Number a new prerelease starts at; false appends none" choice:"0" choice:"1" choice:"false" default:"0"`
}

type OptionsOutput struct {
	Canonical   bool   `short:"c" long:"canonical-out" description:"Print canonical MAJOR.MINOR.PATCH[-PRERELEASE] (drop +BUILD and prefixes)"`
	Deduplicate bool   `short:"d" long:"deduplicate"   description:"Collapse aliases of the same version"`
	SortMode    string `short:"S" long:"sort"          description:"Sort output versions" choice:"none" choice:"asc" choice:"desc" default:"asc"`
	Limit       int    `long:"limit"                   description:"Max number of output versions (<=0 = unlimited)" default:"0"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the cli and returns the process exit code:
// 0 on success, 1 when nothing valid is printed, 2 on usage or I/O errors.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt Options
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "remver"
	parser.Usage = "[OPTIONS] [VERSION...]"
	parser.LongDescription = `Prints valid versions, optionally incremented, sorted by precedence.
Versions are read from arguments, or one per line from stdin when none are given.`

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, flagErr.Message)
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := newLogger(stderr, opt.Verbose)

	in := rest
	if len(in) == 0 {
		in, err = readLines(stdin)
		if err != nil {
			log.WithError(err).Error("read stdin")
			return 2
		}
	}

	popts := remver.Options{
		Loose:             opt.OptionsParse.Loose,
		IncludePrerelease: opt.OptionsParse.IncludePrerelease,
	}

	valid, err := collect(in, popts, opt.OptionsInc, log)
	if err != nil {
		log.WithError(err).Error("increment")
		return 1
	}

	out := remver.Filter(valid, remver.FilterOptions{
		Parse:           popts,
		Deduplicate:     opt.OptionsOutput.Deduplicate,
		OutputCanonical: opt.OptionsOutput.Canonical,
		Sort:            remver.ParseSort(opt.OptionsOutput.SortMode),
		Limit:           opt.OptionsOutput.Limit,
	})
	if len(out) == 0 {
		return 1
	}

	for _, s := range out {
		fmt.Fprintln(stdout, s)
	}

	return 0
}

// collect drops invalid inputs and applies the requested increment.
func collect(in []string, popts remver.Options, inc OptionsInc, log *logrus.Logger) ([]string, error) {
	kind := remver.ParseReleaseKind(inc.Kind)
	base := remver.ParseBase(inc.Base)

	out := make([]string, 0, len(in))
	for _, s := range in {
		v, err := remver.Parse(s, popts)
		if err != nil {
			log.WithFields(logrus.Fields{
				"input": s,
				"code":  remver.CodeOf(err),
			}).Debug("skip invalid version")
			continue
		}

		if inc.Kind == "" {
			out = append(out, s)
			continue
		}

		next, err := v.Inc(kind, inc.PreID, base)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}

		log.WithFields(logrus.Fields{
			"from": v.Raw(),
			"to":   next.String(),
			"kind": kind,
		}).Debug("incremented")
		out = append(out, next.String())
	}

	return out, nil
}

// readLines reads non-empty trimmed lines.
func readLines(r io.Reader) ([]string, error) {
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(r)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}

	return in, sc.Err()
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}
