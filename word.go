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
	"strconv"
	"strings"
)

// A ValueKind discriminates the two variants of a word Value.
type ValueKind uint8

// Value kinds.
const (
	KindNumber ValueKind = iota // numeric value, see Value.Number
	KindString                  // quoted string value, see Value.Bytes
)

// A Value is the typed payload of a word: either a number or a quoted
// string. The zero Value is the number 0.
type Value struct {
	kind ValueKind
	num  float64
	str  []byte
}

// NumberValue returns a numeric Value.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// StringValue returns a string Value referencing b. The bytes are not
// copied.
func StringValue(b []byte) Value {
	return Value{kind: KindString, str: b}
}

// Kind returns the variant of v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Number returns the numeric payload of v, or 0 if v is a string value.
func (v Value) Number() float64 {
	return v.num
}

// Bytes returns the string payload of v, or nil if v is a number value.
// For values produced by a Parser the returned slice is an owned copy
// and remains valid after the parser advances.
func (v Value) Bytes() []byte {
	return v.str
}

// String returns the canonical G-code rendering of v: numbers in their
// shortest decimal form, strings double-quoted with embedded quotes
// doubled.
func (v Value) String() string {
	if v.kind == KindNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	var b strings.Builder
	b.Grow(len(v.str) + 2)
	b.WriteByte('"')
	for _, c := range v.str {
		if c == '"' {
			b.WriteByte('"')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

// Clone returns a deep copy of v. For string values the payload bytes
// are duplicated.
func (v Value) Clone() Value {
	if v.kind == KindString && v.str != nil {
		v.str = append([]byte(nil), v.str...)
	}
	return v
}

// A Word pairs an ASCII address letter with a typed value. For parsers
// built with a case-insensitive AddressConfig the letter is always upper
// case.
type Word struct {
	Letter byte
	Value  Value
}

// String returns the canonical rendering of w, e.g. "G1" or `P"abc"`.
func (w Word) String() string {
	return string(w.Letter) + w.Value.String()
}

// Clone returns a deep copy of w.
func (w Word) Clone() Word {
	w.Value = w.Value.Clone()
	return w
}

// A Block is one effective line of G-code: its 1-based source line
// number and a non-empty ordered word list.
//
// Blocks returned by Parser.Next are ephemeral: Words aliases parser
// scratch storage and is overwritten by the following call. Use Clone to
// retain a block across iterations. Blocks held in a Result are owned.
type Block struct {
	Words []Word
	Line  int64
}

// Clone returns a deep copy of b with its own word storage.
func (b *Block) Clone() *Block {
	words := make([]Word, len(b.Words))
	for i, w := range b.Words {
		words[i] = w.Clone()
	}
	return &Block{Words: words, Line: b.Line}
}

// String returns the canonical one-line rendering of the block's words
// separated by single spaces.
func (b *Block) String() string {
	var sb strings.Builder
	for i, w := range b.Words {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.String())
	}
	return sb.String()
}
