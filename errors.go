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
	"errors"
	"fmt"
)

// Sentinel errors for all tokenizer and driver failure modes. Errors
// returned by Parser.Next wrap one of these (see ParseError); use
// errors.Is to classify them.
var (
	ErrEmptyValue        = errors.New("word with empty value")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrUnclosedComment   = errors.New("unclosed comment")
	ErrUnclosedString    = errors.New("unclosed string")
	ErrUnexpectedChar    = errors.New("unexpected character")
	ErrInputTooLarge     = errors.New("input size limit exceeded")
	ErrTooManyBlocks     = errors.New("block count limit exceeded")
	ErrTooManyLines      = errors.New("line count limit exceeded")
	ErrLineTooLong       = errors.New("line length limit exceeded")
	ErrBlockTooLarge     = errors.New("too many words in block")
	ErrChecksumMismatch  = errors.New("checksum mismatch")
	ErrInvalidChecksum   = errors.New("invalid checksum")
	ErrInvalidLineNumber = errors.New("invalid line number")
	ErrRead              = errors.New("read failure")
)

// Errors returned by NewAddressConfig and the parser constructors.
var (
	ErrEmptyLetterSet = errors.New("empty letter set")
	ErrNonASCIILetter = errors.New("letter is not ASCII alphabetic")
	ErrFloatBits      = errors.New("float size must be 32 or 64")
)

// A ParseError is the error type returned by Parser.Next. It carries the
// parser's line count at the time of the failure (see Parser.Line) and
// wraps the sentinel error describing it. For tokenizer errors and the
// line and block count limits, Line is the 1-based number of the failing
// line. ErrInputTooLarge, ErrLineTooLong and read failures occur before
// the line is counted, so Line is the number of the last line read (0 if
// none). Both
//
//	var pe *gcode.ParseError
//	errors.As(err, &pe)
//
// and errors.Is(err, gcode.ErrChecksumMismatch) work as expected. Read
// failures additionally wrap the underlying I/O error.
type ParseError struct {
	Line int64
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
