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

import "fmt"

// An AddressConfig is the compiled set of address letters a tokenizer
// accepts as the start of a word. Lookup is a constant-time table probe.
// An AddressConfig is immutable after construction and safe for
// concurrent use by any number of parsers.
type AddressConfig struct {
	accept        [256]bool
	caseSensitive bool
}

// NewAddressConfig compiles letters into an AddressConfig. Every byte
// must be ASCII alphabetic; the set must not be empty. When
// caseSensitive is false both cases of each letter are accepted and the
// tokenizer emits words with upper case letters.
func NewAddressConfig(letters []byte, caseSensitive bool) (*AddressConfig, error) {
	if len(letters) == 0 {
		return nil, ErrEmptyLetterSet
	}
	c := &AddressConfig{caseSensitive: caseSensitive}
	for _, b := range letters {
		if !isAlpha(b) {
			return nil, fmt.Errorf("%w: %#x", ErrNonASCIILetter, b)
		}
		c.accept[b] = true
		if !caseSensitive {
			c.accept[toUpper(b)] = true
			c.accept[toLower(b)] = true
		}
	}
	return c, nil
}

// full accepts A-Z case-insensitive. It is the default AddressConfig.
var full = func() *AddressConfig {
	c, err := NewAddressConfig([]byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), false)
	if err != nil {
		panic(err)
	}
	return c
}()

// FullAddressConfig returns the predefined configuration accepting the
// complete alphabet A-Z, case-insensitive. It is the default for parsers
// built without an explicit AddressConfig.
func FullAddressConfig() *AddressConfig {
	return full
}

// Accepts reports whether b starts a word under this configuration.
func (c *AddressConfig) Accepts(b byte) bool {
	return c.accept[b]
}

// CaseSensitive reports whether the configuration distinguishes letter
// case.
func (c *AddressConfig) CaseSensitive() bool {
	return c.caseSensitive
}

// norm returns the letter as it is emitted in words: unchanged for
// case-sensitive configurations, upper case otherwise.
func (c *AddressConfig) norm(b byte) byte {
	if c.caseSensitive {
		return b
	}
	return toUpper(b)
}

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func toUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
