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

/*
Package gcode implements a streaming, memory-bounded G-code (ISO 6983-1 /
RS274) tokenizer and validator.

A Parser reads raw bytes from a source, splits them into lines and runs a
deterministic state machine over each line, turning it into a Block: the
source line number plus an ordered list of words, where a word pairs an
ASCII address letter with a numeric or quoted-string value. Comments,
block-delete marks and program markers are skipped, trailing *nnn
checksums are verified, and N-word line numbers are checked for strict
monotonicity.

# Line tokenization

The tokenizer is built as a Deterministic Finite State Automaton whose
states and associated actions are implemented as functions:

	type stateFn func(t *tokenizer) stateFn

A stateFn is both state and action. It consumes bytes from the current
line and returns the next state; a nil return transitions back to the
idle state where a new word is expected. See Rob Pike's talk about
combining states and actions into state functions:
https://talks.golang.org/2011/lex.slide.

# Streaming and block ephemerality

Parser.Next yields one Block per non-empty source line. The returned
block's word slice aliases scratch storage that is reused by the
following call, so it is valid only until the parser advances:

	p, err := gcode.NewParserFile("part.nc")
	if err != nil {
		// ...
	}
	defer p.Close()
	for {
		b, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// parse errors are terminal; inspect with errors.Is
		}
		// b.Words is valid until the next call to p.Next;
		// use b.Clone() to retain it.
	}

Steady-state memory is O(maximum line length) regardless of input size.
Parser.Collect and the package level Parse functions drain the stream
into an owned Result backed by a single contiguous word buffer when
random access to all blocks is needed.

# Limits and options

All resource ceilings (total input size, line length, line, block and
per-block word counts) as well as the behavioral toggles (checksum and
line-number validation, quoted strings, comment strictness, unknown
character handling) are set through functional options at construction
time; see Options and DefaultOptions for the defaults. The set of
accepted address letters is compiled into an AddressConfig with O(1)
lookup.

# Error handling

All failure modes are explicit error values wrapping one of the package
sentinel errors; once Next has returned a non-nil error other than
io.EOF the parser must be discarded. There is no in-stream recovery:
G-code is a directive language where misinterpreting input past a fault
is worse than a hard stop.
*/
package gcode
