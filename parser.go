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
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// readBufferSize is the minimum size of the buffer in front of the byte
// source, amortizing per-byte read overhead.
const readBufferSize = 4 << 10

// A Parser is a stateful cursor over a stream of G-code blocks. It owns
// its scratch buffers, which are reused across iterations: memory stays
// O(maximum line length) no matter how large the input is.
//
// A Parser must not be used concurrently. One is created per source;
// after Next has returned an error other than io.EOF the parser must be
// discarded (the error is sticky and the stream cannot be resumed).
type Parser struct {
	opts   Options
	src    *bufio.Reader
	closer io.Closer // non-nil for sources owned by the parser

	tok     tokenizer
	lineBuf []byte
	blk     Block

	bytesRead int64
	line      int64 // 1-based number of the most recently read line
	blocks    int64

	eof bool
	err error
}

// NewParser returns a Parser reading from r. The reader remains owned by
// the caller: Close does not close it. r is wrapped in a buffered reader
// unless it already is one of sufficient size.
func NewParser(r io.Reader, opts ...Option) (*Parser, error) {
	return newParser(r, nil, opts)
}

// NewParserBytes returns a Parser reading from b. The slice must not be
// mutated while the parser is in use.
func NewParserBytes(b []byte, opts ...Option) (*Parser, error) {
	return newParser(bytes.NewReader(b), nil, opts)
}

// NewParserFile opens path and returns a Parser reading from it. The
// parser owns the file handle; Close releases it.
func NewParserFile(path string, opts ...Option) (*Parser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newParser(f, f, opts)
}

func newParser(r io.Reader, c io.Closer, opts []Option) (*Parser, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.FloatBits != 32 && o.FloatBits != 64 {
		return nil, fmt.Errorf("%w: %d", ErrFloatBits, o.FloatBits)
	}
	if o.Addresses == nil {
		o.Addresses = FullAddressConfig()
	}
	p := &Parser{
		opts:   o,
		src:    bufio.NewReaderSize(r, readBufferSize),
		closer: c,
	}
	p.tok.opts = &p.opts
	return p, nil
}

// Next returns the next non-empty block, io.EOF once the source is
// exhausted, or a *ParseError. The returned block's Words slice aliases
// parser scratch and is valid only until the following call; use
// Block.Clone to retain it.
func (p *Parser) Next() (*Block, error) {
	if p.err != nil {
		return nil, p.err
	}
	for {
		if p.eof {
			return nil, io.EOF
		}

		max := p.opts.Limits.MaxLineLength
		if in := p.opts.Limits.MaxInputSize; in > Unlimited {
			rem := in - p.bytesRead
			if rem <= 0 {
				return nil, p.fail(ErrInputTooLarge)
			}
			if max == Unlimited || int64(max) > rem {
				max = int(rem)
			}
		}

		delim, err := p.readLine(max)
		if err != nil {
			return nil, p.fail(err)
		}
		n := len(p.lineBuf)
		if !delim && n == 0 {
			// clean EOF, nothing buffered
			return nil, io.EOF
		}
		p.bytesRead += int64(n)
		if delim {
			p.bytesRead++
		}
		p.line++
		if max := p.opts.Limits.MaxLines; max > Unlimited && p.line > max {
			return nil, p.fail(ErrTooManyLines)
		}

		ok, err := p.tok.tokenize(p.lineBuf)
		if err != nil {
			return nil, p.fail(err)
		}
		if !ok {
			continue
		}
		p.blocks++
		if max := p.opts.Limits.MaxBlocks; max > Unlimited && p.blocks > max {
			return nil, p.fail(ErrTooManyBlocks)
		}
		p.blk = Block{Words: p.tok.words, Line: p.line}
		return &p.blk, nil
	}
}

// readLine fills lineBuf with the next line, up to but excluding the
// '\n' delimiter, failing with ErrLineTooLong once the buffered content
// exceeds max. It reports whether a delimiter was consumed; false with
// an empty buffer means clean end of input. A lone '\r' is not a line
// break; it stays in the buffer for the tokenizer, which treats it as
// whitespace.
func (p *Parser) readLine(max int) (bool, error) {
	p.lineBuf = p.lineBuf[:0]
	for {
		frag, err := p.src.ReadSlice('\n')
		switch err {
		case nil:
			p.lineBuf = append(p.lineBuf, frag[:len(frag)-1]...)
			if max > Unlimited && len(p.lineBuf) > max {
				return false, ErrLineTooLong
			}
			return true, nil
		case bufio.ErrBufferFull:
			p.lineBuf = append(p.lineBuf, frag...)
			if max > Unlimited && len(p.lineBuf) > max {
				return false, ErrLineTooLong
			}
		case io.EOF:
			p.lineBuf = append(p.lineBuf, frag...)
			if max > Unlimited && len(p.lineBuf) > max {
				return false, ErrLineTooLong
			}
			p.eof = true
			return false, nil
		default:
			return false, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
}

// fail records err as the parser's terminal error and returns it.
func (p *Parser) fail(err error) error {
	p.err = &ParseError{Line: p.line, Err: err}
	return p.err
}

// BytesRead returns the total number of source bytes consumed so far,
// line delimiters included. It remains readable after an error.
func (p *Parser) BytesRead() int64 {
	return p.bytesRead
}

// Line returns the 1-based number of the most recently read line. It
// remains readable after an error. It identifies the failing line when
// the line was read; a failure while acquiring a line (ErrInputTooLarge,
// ErrLineTooLong, read errors) leaves it at the previous line.
func (p *Parser) Line() int64 {
	return p.line
}

// Blocks returns the number of blocks emitted so far.
func (p *Parser) Blocks() int64 {
	return p.blocks
}

// Close releases any source owned by the parser (the file handle for
// parsers built with NewParserFile). It is a no-op for caller-owned
// readers and for repeated calls.
func (p *Parser) Close() error {
	if p.closer == nil {
		return nil
	}
	c := p.closer
	p.closer = nil
	return c.Close()
}
