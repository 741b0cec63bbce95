package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cncforge/gcode"
)

func TestBuildOptions_defaults(t *testing.T) {
	resetGlobals(t)
	o, err := buildOptions()
	require.NoError(t, err)
	require.Equal(t, gcode.DefaultOptions().Limits, o.Limits)
	require.True(t, o.ValidateChecksum)
	require.True(t, o.ValidateLineNumbers)
	require.True(t, o.StrictComments)
	require.True(t, o.IgnoreUnknownCharacters)
	require.Equal(t, 64, o.FloatBits)
	require.Same(t, gcode.FullAddressConfig(), o.Addresses)
}

func TestBuildOptions_flags(t *testing.T) {
	resetGlobals(t)
	letters = "GXY"
	caseSensitive = true
	floatBits = 32
	noChecksum = true
	noLineNumbers = true
	lenientComm = true
	rejectUnknown = true

	o, err := buildOptions()
	require.NoError(t, err)
	require.Equal(t, 32, o.FloatBits)
	require.False(t, o.ValidateChecksum)
	require.False(t, o.ValidateLineNumbers)
	require.False(t, o.StrictComments)
	require.False(t, o.IgnoreUnknownCharacters)
	require.True(t, o.Addresses.Accepts('G'))
	require.False(t, o.Addresses.Accepts('g'), "case-sensitive letter set")
	require.False(t, o.Addresses.Accepts('Z'))
}

func TestBuildOptions_badLetters(t *testing.T) {
	resetGlobals(t)
	letters = "G1"
	_, err := buildOptions()
	require.ErrorIs(t, err, gcode.ErrNonASCIILetter)
}

func TestBuildOptions_configFile(t *testing.T) {
	resetGlobals(t)
	path := filepath.Join(t.TempDir(), "opts.toml")
	require.NoError(t, os.WriteFile(path, []byte("validate_checksum = false\nfloat_bits = 32\n"), 0o644))
	cfgFile = path

	o, err := buildOptions()
	require.NoError(t, err)
	require.False(t, o.ValidateChecksum)
	require.Equal(t, 32, o.FloatBits)
	// flags still override the file
	floatBits = 64
	o, err = buildOptions()
	require.NoError(t, err)
	require.Equal(t, 64, o.FloatBits)
}

func TestBuildOptions_badConfigFile(t *testing.T) {
	resetGlobals(t)
	cfgFile = filepath.Join(t.TempDir(), "missing.toml")
	_, err := buildOptions()
	require.ErrorContains(t, err, "load config")
}
