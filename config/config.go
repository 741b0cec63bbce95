// Package config loads parser options from TOML and YAML files.
//
// The schema mirrors gcode.Options field by field; every field is
// optional and unset fields keep their defaults, so a configuration
// file only states what it changes:
//
//	dialect = "full"
//	float_bits = 32
//	validate_checksum = false
//
//	[limits]
//	max_line_length = 1024
//
// The address letter set is either a named dialect or an explicit
// letters string:
//
//	letters = "GMXYZFSTN"
//	case_sensitive = false
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/cncforge/gcode"
)

// Errors returned by the loader.
var (
	ErrUnknownFormat  = errors.New("unknown configuration format")
	ErrUnknownDialect = errors.New("unknown dialect")
)

// Format identifies a configuration file format.
type Format int

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = iota
	// FormatTOML forces TOML.
	FormatTOML
	// FormatYAML forces YAML.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// file is the on-disk schema. Pointer fields distinguish unset from
// zero so that partial files inherit defaults.
type file struct {
	Dialect       string `toml:"dialect" yaml:"dialect"`
	Letters       string `toml:"letters" yaml:"letters"`
	CaseSensitive *bool  `toml:"case_sensitive" yaml:"case_sensitive"`
	FloatBits     *int   `toml:"float_bits" yaml:"float_bits"`

	StrictComments          *bool `toml:"strict_comments" yaml:"strict_comments"`
	SkipEmptyLines          *bool `toml:"skip_empty_lines" yaml:"skip_empty_lines"`
	IgnoreUnknownCharacters *bool `toml:"ignore_unknown_characters" yaml:"ignore_unknown_characters"`
	SupportQuotedStrings    *bool `toml:"support_quoted_strings" yaml:"support_quoted_strings"`
	ValidateChecksum        *bool `toml:"validate_checksum" yaml:"validate_checksum"`
	ValidateLineNumbers     *bool `toml:"validate_line_numbers" yaml:"validate_line_numbers"`

	Limits struct {
		MaxInputSize     *int64 `toml:"max_input_size" yaml:"max_input_size"`
		MaxBlocks        *int64 `toml:"max_blocks" yaml:"max_blocks"`
		MaxWordsPerBlock *int   `toml:"max_words_per_block" yaml:"max_words_per_block"`
		MaxLineLength    *int   `toml:"max_line_length" yaml:"max_line_length"`
		MaxLines         *int64 `toml:"max_lines" yaml:"max_lines"`
	} `toml:"limits" yaml:"limits"`
}

// DetectFormat maps a file extension to its Format. Unrecognized
// extensions map to FormatAuto, which the loaders reject.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Load reads the file at path and returns the parser options it
// describes, detecting the format from the extension.
func Load(path string) (gcode.Options, error) {
	return LoadFormat(path, FormatAuto)
}

// LoadFormat reads the file at path in the given format. FormatAuto
// detects the format from the extension.
func LoadFormat(path string, f Format) (gcode.Options, error) {
	if f == FormatAuto {
		if f = DetectFormat(path); f == FormatAuto {
			return gcode.Options{}, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return gcode.Options{}, err
	}
	return Parse(data, f)
}

// Parse decodes data in the given format (FormatAuto is rejected) and
// returns the described options on top of gcode.DefaultOptions.
func Parse(data []byte, f Format) (gcode.Options, error) {
	var cfg file
	switch f {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return gcode.Options{}, fmt.Errorf("decode toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return gcode.Options{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return gcode.Options{}, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return cfg.options()
}

// options assembles gcode.Options from the decoded schema.
func (c *file) options() (gcode.Options, error) {
	o := gcode.DefaultOptions()

	switch {
	case c.Letters != "":
		cs := false
		if c.CaseSensitive != nil {
			cs = *c.CaseSensitive
		}
		ac, err := gcode.NewAddressConfig([]byte(c.Letters), cs)
		if err != nil {
			return gcode.Options{}, fmt.Errorf("letters: %w", err)
		}
		o.Addresses = ac
	case c.Dialect == "" || strings.EqualFold(c.Dialect, "full"):
		o.Addresses = gcode.FullAddressConfig()
	default:
		return gcode.Options{}, fmt.Errorf("%w: %q", ErrUnknownDialect, c.Dialect)
	}

	setBool(&o.StrictComments, c.StrictComments)
	setBool(&o.SkipEmptyLines, c.SkipEmptyLines)
	setBool(&o.IgnoreUnknownCharacters, c.IgnoreUnknownCharacters)
	setBool(&o.SupportQuotedStrings, c.SupportQuotedStrings)
	setBool(&o.ValidateChecksum, c.ValidateChecksum)
	setBool(&o.ValidateLineNumbers, c.ValidateLineNumbers)
	if c.FloatBits != nil {
		o.FloatBits = *c.FloatBits
	}

	l := &o.Limits
	if v := c.Limits.MaxInputSize; v != nil {
		l.MaxInputSize = *v
	}
	if v := c.Limits.MaxBlocks; v != nil {
		l.MaxBlocks = *v
	}
	if v := c.Limits.MaxWordsPerBlock; v != nil {
		l.MaxWordsPerBlock = *v
	}
	if v := c.Limits.MaxLineLength; v != nil {
		l.MaxLineLength = *v
	}
	if v := c.Limits.MaxLines; v != nil {
		l.MaxLines = *v
	}
	return o, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
