package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunStats(t *testing.T) {
	resetGlobals(t)
	c, out, _ := testCmd()
	require.NoError(t, runStats(c, []string{"testdata/good.nc"}))
	s := out.String()
	require.Contains(t, s, "FILE")
	require.Contains(t, s, "LINES")
	require.Contains(t, s, "testdata/good.nc")
	// 4 lines, 3 blocks, 8 words
	require.Regexp(t, `good\.nc\s+4\s+3\s+8\s+\d+`, s)
}

func TestRunStats_badFile(t *testing.T) {
	resetGlobals(t)
	c, _, errOut := testCmd()
	err := runStats(c, []string{"testdata/bad.nc"})
	require.EqualError(t, err, "1 of 1 files failed")
	require.Contains(t, errOut.String(), "invalid line number")
}

func TestRunStats_missingFile(t *testing.T) {
	resetGlobals(t)
	c, _, errOut := testCmd()
	err := runStats(c, []string{"testdata/no-such.nc"})
	require.EqualError(t, err, "1 of 1 files failed")
	require.Contains(t, errOut.String(), "no-such.nc")
}
