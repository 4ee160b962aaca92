package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_SortsArgs(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "", "1.2.3", "1.10.0", "junk", "1.2.3-rc.1")
	require.Equal(t, 0, code)
	assert.Equal(t, "1.2.3-rc.1\n1.2.3\n1.10.0\n", out)
}

func TestRun_ReadsStdin(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "2.0.0\n\n  1.0.0  \nnope\n", "-S", "desc")
	require.Equal(t, 0, code)
	assert.Equal(t, "2.0.0\n1.0.0\n", out)
}

func TestRun_LooseCanonicalDedup(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "", "-l", "-c", "-d", "v1.2.3", "=1.2.3", "01.02.04")
	require.Equal(t, 0, code)
	assert.Equal(t, "1.2.3\n1.2.4\n", out)
}

func TestRun_Increment(t *testing.T) {
	t.Parallel()

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-i", "minor", "1.2.3"}, "1.3.0\n"},
		{[]string{"-i", "prerelease", "1.2.3-alpha.1"}, "1.2.3-alpha.2\n"},
		{[]string{"-i", "prerelease", "--preid", "beta", "1.2.3"}, "1.2.4-beta.0\n"},
		{[]string{"-i", "premajor", "--preid", "rc", "-n", "1", "1.2.3"}, "2.0.0-rc.1\n"},
		{[]string{"-i", "prerelease", "--preid", "rc", "-n", "false", "1.2.3"}, "1.2.4-rc\n"},
		{[]string{"-i", "release", "1.2.3-rc.4+b"}, "1.2.3\n"},
	}

	for _, tc := range cases {
		code, out, stderr := runCLI(t, "", tc.args...)
		require.Equal(t, 0, code, "args=%v stderr=%s", tc.args, stderr)
		assert.Equal(t, tc.want, out, "args=%v", tc.args)
	}
}

func TestRun_IncrementFailure(t *testing.T) {
	t.Parallel()

	code, out, stderr := runCLI(t, "", "-i", "prerelease", "--preid", "a..b", "1.2.3")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, stderr, "invalid identifier")
}

func TestRun_NoValidInput(t *testing.T) {
	t.Parallel()

	code, out, _ := runCLI(t, "", "v1.2.3", "junk")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
}

func TestRun_VerboseLogsSkipped(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, "", "--verbose", "1.2.3", "junk")
	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "skip invalid version")
	assert.Contains(t, stderr, "GRAMMAR_MISMATCH")

	code, _, stderr = runCLI(t, "", "1.2.3", "junk")
	require.Equal(t, 0, code)
	assert.NotContains(t, stderr, "skip invalid version")
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, "", "-i", "bogus", "1.2.3")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, stderr)

	code, _, _ = runCLI(t, "", "--no-such-flag")
	assert.Equal(t, 2, code)

	code, out, _ := runCLI(t, "", "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "remver")
}
