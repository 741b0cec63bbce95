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

import "io"

// A Result holds a fully collected program. All block word slices are
// subranges of a single contiguous word buffer; the blocks and their
// words are owned by the Result and stay valid indefinitely.
type Result struct {
	Blocks []Block
	words  []Word // contiguous backing store for every block's Words
}

// WordCount returns the total number of words across all blocks.
func (r *Result) WordCount() int {
	return len(r.words)
}

// blockSpan records one collected block as a range into the growing
// word buffer. Spans are resolved to slices only once collection is
// done, since appends may move the buffer.
type blockSpan struct {
	start, n int
	line     int64
}

// Collect drains the parser into an owned Result. On a parse failure
// the partial result is dropped and the error returned. Collect leaves
// the parser exhausted; it does not close it.
func (p *Parser) Collect() (*Result, error) {
	blockHint := int64(1000)
	if max := p.opts.Limits.MaxBlocks; max > Unlimited && max < blockHint {
		blockHint = max
	}
	wordHint := blockHint
	if max := p.opts.Limits.MaxWordsPerBlock; max > Unlimited {
		wordHint *= int64(max)
	}

	spans := make([]blockSpan, 0, blockHint)
	words := make([]Word, 0, wordHint)
	for {
		b, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		spans = append(spans, blockSpan{start: len(words), n: len(b.Words), line: b.Line})
		words = append(words, b.Words...)
	}

	r := &Result{
		Blocks: make([]Block, len(spans)),
		words:  words,
	}
	for i, s := range spans {
		r.Blocks[i] = Block{
			Words: words[s.start : s.start+s.n : s.start+s.n],
			Line:  s.line,
		}
	}
	return r, nil
}

// Parse reads all of r and returns the collected result.
func Parse(r io.Reader, opts ...Option) (*Result, error) {
	p, err := NewParser(r, opts...)
	if err != nil {
		return nil, err
	}
	return p.Collect()
}

// ParseBytes parses b and returns the collected result.
func ParseBytes(b []byte, opts ...Option) (*Result, error) {
	p, err := NewParserBytes(b, opts...)
	if err != nil {
		return nil, err
	}
	return p.Collect()
}

// ParseFile parses the file at path and returns the collected result.
// The file is closed before returning.
func ParseFile(path string, opts ...Option) (*Result, error) {
	p, err := NewParserFile(path, opts...)
	if err != nil {
		return nil, err
	}
	defer p.Close()
	return p.Collect()
}
