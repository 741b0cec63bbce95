// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package gcode

// Unlimited disables a single ceiling in Limits.
const Unlimited = 0

// Limits bounds the resources a Parser may consume. A zero field means
// unbounded; DefaultLimits returns the defaults used by DefaultOptions.
type Limits struct {
	// MaxInputSize is the total number of bytes the parser may consume
	// from its source, line delimiters included.
	MaxInputSize int64
	// MaxBlocks is the total number of blocks the parser may emit.
	MaxBlocks int64
	// MaxWordsPerBlock is the word count ceiling for a single block.
	MaxWordsPerBlock int
	// MaxLineLength is the byte length ceiling for a single line,
	// excluding the trailing delimiter.
	MaxLineLength int
	// MaxLines is the total number of lines the parser may read.
	MaxLines int64
}

// DefaultLimits returns the default resource ceilings.
func DefaultLimits() Limits {
	return Limits{
		MaxInputSize:     100 << 20,
		MaxBlocks:        10_000_000,
		MaxWordsPerBlock: 50,
		MaxLineLength:    256 << 10,
		MaxLines:         5_000_000,
	}
}

// Options control parser behavior. They are set through functional
// options at construction time and immutable afterwards.
type Options struct {
	// Addresses is the set of accepted address letters. nil selects
	// FullAddressConfig.
	Addresses *AddressConfig
	// Limits bounds resource consumption, see Limits.
	Limits Limits
	// StrictComments makes an unclosed parenthetical comment at end of
	// line an error instead of silently closing it.
	StrictComments bool
	// SkipEmptyLines elides lines that produce no words. Empty lines
	// never emit a block either way; the toggle is kept for
	// compatibility with configuration files.
	SkipEmptyLines bool
	// IgnoreUnknownCharacters skips bytes with no meaning between
	// words instead of failing with ErrUnexpectedChar.
	IgnoreUnknownCharacters bool
	// SupportQuotedStrings enables "..." values after a letter, with ""
	// as an embedded literal quote.
	SupportQuotedStrings bool
	// ValidateChecksum verifies a trailing *nnn XOR checksum when one
	// is present.
	ValidateChecksum bool
	// ValidateLineNumbers requires N words to hold strictly increasing
	// non-negative integers across the stream.
	ValidateLineNumbers bool
	// FloatBits selects the precision numeric values are parsed at,
	// 32 or 64.
	FloatBits int
}

// DefaultOptions returns the default parser options: full alphabet,
// default limits, every toggle enabled, 64-bit floats.
func DefaultOptions() Options {
	return Options{
		Addresses:               FullAddressConfig(),
		Limits:                  DefaultLimits(),
		StrictComments:          true,
		SkipEmptyLines:          true,
		IgnoreUnknownCharacters: true,
		SupportQuotedStrings:    true,
		ValidateChecksum:        true,
		ValidateLineNumbers:     true,
		FloatBits:               64,
	}
}

// An Option is a configuration option for a new Parser, applied on top
// of DefaultOptions.
type Option func(*Options)

// WithOptions replaces the options wholesale. It is meant for options
// assembled elsewhere, e.g. loaded from a configuration file.
func WithOptions(o Options) Option {
	return func(dst *Options) { *dst = o }
}

// WithAddresses sets the accepted address letters.
func WithAddresses(c *AddressConfig) Option {
	return func(o *Options) { o.Addresses = c }
}

// WithLimits sets the resource ceilings.
func WithLimits(l Limits) Option {
	return func(o *Options) { o.Limits = l }
}

// WithFloatBits sets the numeric parsing precision, 32 or 64.
func WithFloatBits(bits int) Option {
	return func(o *Options) { o.FloatBits = bits }
}

// WithStrictComments toggles failing on unclosed parenthetical comments.
func WithStrictComments(on bool) Option {
	return func(o *Options) { o.StrictComments = on }
}

// WithSkipEmptyLines sets Options.SkipEmptyLines. Wordless lines never
// emit a block, whichever value is set.
func WithSkipEmptyLines(on bool) Option {
	return func(o *Options) { o.SkipEmptyLines = on }
}

// WithIgnoreUnknownCharacters toggles skipping meaningless bytes between
// words.
func WithIgnoreUnknownCharacters(on bool) Option {
	return func(o *Options) { o.IgnoreUnknownCharacters = on }
}

// WithQuotedStrings toggles support for quoted string values.
func WithQuotedStrings(on bool) Option {
	return func(o *Options) { o.SupportQuotedStrings = on }
}

// WithChecksumValidation toggles verification of trailing *nnn
// checksums.
func WithChecksumValidation(on bool) Option {
	return func(o *Options) { o.ValidateChecksum = on }
}

// WithLineNumberValidation toggles N word monotonicity checks.
func WithLineNumberValidation(on bool) Option {
	return func(o *Options) { o.ValidateLineNumbers = on }
}
