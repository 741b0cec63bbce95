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

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// eol is the return value from tokenizer.next at end of line.
const eol = -1

// A stateFn is a state function of the line tokenizer. It consumes bytes
// from the current line and returns the next state; a nil return
// transitions back to stateIdle.
type stateFn func(t *tokenizer) stateFn

// A tokenizer converts one raw line (delimiter stripped) into a word
// sequence. It performs no I/O. The word and string buffers are scratch
// reused across lines; lastN persists for the lifetime of the owning
// parser.
type tokenizer struct {
	opts *Options

	line []byte
	pos  int

	words  []Word // word accumulator, aliased by emitted blocks
	strBuf []byte // quoted string scratch

	letter     byte // letter of the word being read
	valueStart int  // offset of the first numeric value byte

	lastN    float64 // most recent validated N value
	hasLastN bool

	done bool
	err  error
}

// tokenize runs the state machine over line and reports whether any
// words were produced. The resulting words alias t.words until the next
// call.
func (t *tokenizer) tokenize(line []byte) (bool, error) {
	t.line = line
	t.pos = 0
	t.words = t.words[:0]
	t.done = false
	t.err = nil

	if t.opts.ValidateChecksum {
		if err := t.checksum(); err != nil {
			return false, err
		}
	}

	for state := stateFn(stateIdle); !t.done; {
		state = state(t)
		if t.err != nil {
			return false, t.err
		}
		if state == nil {
			state = stateIdle
		}
	}
	return len(t.words) > 0, nil
}

// checksum locates the last '*' on the line, verifies that the 1-3
// decimal digits following it equal the XOR of every byte preceding it,
// and restricts tokenization to that prefix. A trailing CR is ignored.
func (t *tokenizer) checksum() error {
	body := t.line
	if n := len(body); n > 0 && body[n-1] == '\r' {
		body = body[:n-1]
	}
	star := bytes.LastIndexByte(body, '*')
	if star < 0 {
		return nil
	}
	digits := body[star+1:]
	if len(digits) == 0 || len(digits) > 3 {
		return ErrInvalidChecksum
	}
	want := 0
	for _, c := range digits {
		if !isDigit(c) {
			return ErrInvalidChecksum
		}
		want = want*10 + int(c-'0')
	}
	var sum byte
	for _, c := range body[:star] {
		sum ^= c
	}
	if int(sum) != want {
		return fmt.Errorf("%w: line checksums to %d, expected %d", ErrChecksumMismatch, sum, want)
	}
	t.line = body[:star]
	return nil
}

// emit appends a word for the current letter, enforcing the per-block
// word ceiling.
func (t *tokenizer) emit(v Value) {
	if max := t.opts.Limits.MaxWordsPerBlock; max > Unlimited && len(t.words) >= max {
		t.err = ErrBlockTooLarge
		return
	}
	t.words = append(t.words, Word{Letter: t.letter, Value: v})
}

// next returns the next byte of the line, or eol.
func (t *tokenizer) next() int {
	if t.pos >= len(t.line) {
		return eol
	}
	b := t.line[t.pos]
	t.pos++
	return int(b)
}

// backup reverts the last call to next. Must not be called after next
// returned eol.
func (t *tokenizer) backup() {
	t.pos--
}

// peek returns the next byte without consuming it, or eol.
func (t *tokenizer) peek() int {
	if t.pos >= len(t.line) {
		return eol
	}
	return int(t.line[t.pos])
}

// stateIdle is the initial state, between words.
func stateIdle(t *tokenizer) stateFn {
	for {
		c := t.next()
		switch {
		case c == eol:
			t.done = true
			return nil
		case c == ' ' || c == '\t' || c == '\r':
			// inter-word whitespace; CR also lands here on CRLF input
		case c == ';':
			return stateSkipLine
		case c == '(':
			return stateParenComment
		case c == '/' && t.pos == 1:
			// block delete mark, only at the start of the line
			return stateSkipLine
		case c == '%':
			return stateSkipLine
		case isDigit(byte(c)):
			t.err = fmt.Errorf("%w: digit %q outside a word", ErrUnexpectedChar, byte(c))
			return nil
		case isAlpha(byte(c)):
			if t.opts.Addresses.Accepts(byte(c)) {
				t.letter = t.opts.Addresses.norm(byte(c))
				return stateAfterLetter
			}
			return stateSkipUnknown
		default:
			if !t.opts.IgnoreUnknownCharacters {
				t.err = fmt.Errorf("%w: %q", ErrUnexpectedChar, byte(c))
				return nil
			}
		}
	}
}

// stateAfterLetter dispatches on the byte following an accepted letter:
// a double quote opens a string value, anything else (including end of
// line) is handed to the number state unconsumed.
func stateAfterLetter(t *tokenizer) stateFn {
	c := t.next()
	if t.opts.SupportQuotedStrings && c == '"' {
		t.strBuf = t.strBuf[:0]
		return stateString
	}
	if c != eol {
		t.backup()
	}
	t.valueStart = t.pos
	return stateNumber
}

// stateNumber consumes the numeric value of the current word and emits
// it. Scientific notation is rejected: 'e' terminates the value and is
// reinspected as a fresh letter by stateIdle.
func stateNumber(t *tokenizer) stateFn {
	for {
		c := t.next()
		if c == eol {
			break
		}
		if isDigit(byte(c)) || c == '.' || c == '-' || c == '+' {
			continue
		}
		t.backup()
		break
	}
	raw := t.line[t.valueStart:t.pos]
	if len(raw) == 0 {
		t.err = fmt.Errorf("%w: %q", ErrEmptyValue, t.letter)
		return nil
	}
	if bytes.ContainsAny(raw, "eE") {
		t.err = fmt.Errorf("%w: scientific notation in %q", ErrInvalidNumber, raw)
		return nil
	}
	v, err := strconv.ParseFloat(string(raw), t.opts.FloatBits)
	if err != nil {
		t.err = fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
		return nil
	}
	if (t.letter == 'N' || t.letter == 'n') && t.opts.ValidateLineNumbers {
		if v < 0 || v != math.Floor(v) {
			t.err = fmt.Errorf("%w: N%s is not a non-negative integer", ErrInvalidLineNumber, raw)
			return nil
		}
		if t.hasLastN && v <= t.lastN {
			t.err = fmt.Errorf("%w: N%s does not increase over N%s",
				ErrInvalidLineNumber, raw, strconv.FormatFloat(t.lastN, 'f', -1, 64))
			return nil
		}
		t.lastN = v
		t.hasLastN = true
	}
	t.emit(NumberValue(v))
	return nil
}

// stateString consumes a quoted string value. A doubled quote is an
// embedded literal quote; the string value receives an owned copy of the
// scratch bytes.
func stateString(t *tokenizer) stateFn {
	for {
		c := t.next()
		switch {
		case c == eol:
			t.err = ErrUnclosedString
			return nil
		case c == '"':
			if t.peek() == '"' {
				t.strBuf = append(t.strBuf, '"')
				t.next()
				continue
			}
			t.emit(StringValue(append([]byte(nil), t.strBuf...)))
			return nil
		default:
			t.strBuf = append(t.strBuf, byte(c))
		}
	}
}

// stateSkipLine consumes the rest of the line. It serves semicolon
// comments, block delete marks and program markers alike.
func stateSkipLine(t *tokenizer) stateFn {
	t.pos = len(t.line)
	t.done = true
	return nil
}

// stateParenComment consumes an inline (...) comment. Nesting is not
// supported; the first ')' closes the comment.
func stateParenComment(t *tokenizer) stateFn {
	for {
		switch t.next() {
		case eol:
			if t.opts.StrictComments {
				t.err = ErrUnclosedComment
				return nil
			}
			t.done = true
			return nil
		case ')':
			return nil
		}
	}
}

// stateSkipUnknown consumes a word whose letter is not in the address
// set: the letter itself plus any following letters and number bytes.
func stateSkipUnknown(t *tokenizer) stateFn {
	for {
		c := t.next()
		if c == eol {
			t.done = true
			return nil
		}
		if isAlpha(byte(c)) || isDigit(byte(c)) || c == '.' || c == '-' || c == '+' {
			continue
		}
		t.backup()
		return nil
	}
}
