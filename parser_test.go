package gcode_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/cncforge/gcode"
)

// drain runs p to completion, returning the rendered blocks and the
// terminal error (nil for clean EOF).
func drain(p *gcode.Parser) ([]string, error) {
	var got []string
	for {
		b, err := p.Next()
		if err == io.EOF {
			return got, nil
		}
		if err != nil {
			return got, err
		}
		got = append(got, b.String())
	}
}

func TestParser_emptyInput(t *testing.T) {
	p, err := gcode.NewParserBytes(nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := p.Next()
	if b != nil || err != io.EOF {
		t.Fatalf("got (%v, %v), expected (nil, io.EOF)", b, err)
	}
	// exhaustion is stable
	if _, err = p.Next(); err != io.EOF {
		t.Fatalf("got %v, expected io.EOF", err)
	}
	if p.BytesRead() != 0 || p.Line() != 0 || p.Blocks() != 0 {
		t.Errorf("counters moved on empty input: %d bytes, %d lines, %d blocks",
			p.BytesRead(), p.Line(), p.Blocks())
	}
}

func TestParser_accounting(t *testing.T) {
	const in = "G1 X1\nG2 X2" // no trailing delimiter on the last line
	p, err := gcode.NewParserBytes([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := drain(p); err != nil {
		t.Fatal(err)
	}
	if got := p.BytesRead(); got != int64(len(in)) {
		t.Errorf("BytesRead() = %d, expected %d", got, len(in))
	}
	if got := p.Line(); got != 2 {
		t.Errorf("Line() = %d, expected 2", got)
	}
	if got := p.Blocks(); got != 2 {
		t.Errorf("Blocks() = %d, expected 2", got)
	}
}

func TestParser_maxInputSize(t *testing.T) {
	limits := gcode.DefaultLimits()
	limits.MaxInputSize = 2
	p, err := gcode.NewParserBytes([]byte("G1\nG2\n"), gcode.WithLimits(limits))
	if err != nil {
		t.Fatal(err)
	}
	got, err := drain(p)
	if len(got) != 1 || got[0] != "G1" {
		t.Errorf("blocks = %v, expected [G1]", got)
	}
	if !errors.Is(err, gcode.ErrInputTooLarge) {
		t.Errorf("got %v, expected ErrInputTooLarge", err)
	}
}

func TestParser_maxLineLength(t *testing.T) {
	limits := gcode.DefaultLimits()
	limits.MaxLineLength = 4

	// exactly at the cap, delimited: fine
	p, err := gcode.NewParserBytes([]byte("G1X2\n"), gcode.WithLimits(limits))
	if err != nil {
		t.Fatal(err)
	}
	if got, err := drain(p); err != nil || len(got) != 1 {
		t.Errorf("got (%v, %v), expected one block", got, err)
	}

	// exactly at the cap, end of input: treated as the last line
	p, err = gcode.NewParserBytes([]byte("G1X2"), gcode.WithLimits(limits))
	if err != nil {
		t.Fatal(err)
	}
	if got, err := drain(p); err != nil || len(got) != 1 {
		t.Errorf("got (%v, %v), expected one block", got, err)
	}

	// one byte over
	p, err = gcode.NewParserBytes([]byte("G1 X2\n"), gcode.WithLimits(limits))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := drain(p); !errors.Is(err, gcode.ErrLineTooLong) {
		t.Errorf("got %v, expected ErrLineTooLong", err)
	}
}

func TestParser_maxLines(t *testing.T) {
	limits := gcode.DefaultLimits()
	limits.MaxLines = 2
	p, err := gcode.NewParserBytes([]byte("G1\nG2\nG3\n"), gcode.WithLimits(limits))
	if err != nil {
		t.Fatal(err)
	}
	got, err := drain(p)
	if len(got) != 2 {
		t.Errorf("blocks = %v, expected two", got)
	}
	if !errors.Is(err, gcode.ErrTooManyLines) {
		t.Errorf("got %v, expected ErrTooManyLines", err)
	}

	// empty lines count against the ceiling too
	p, err = gcode.NewParserBytes([]byte("\n\n\nG1\n"), gcode.WithLimits(limits))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := drain(p); !errors.Is(err, gcode.ErrTooManyLines) {
		t.Errorf("got %v, expected ErrTooManyLines", err)
	}
}

func TestParser_maxBlocks(t *testing.T) {
	limits := gcode.DefaultLimits()
	limits.MaxBlocks = 2
	p, err := gcode.NewParserBytes([]byte("G1\nG2\nG3\n"), gcode.WithLimits(limits))
	if err != nil {
		t.Fatal(err)
	}
	got, err := drain(p)
	if len(got) != 2 {
		t.Errorf("blocks = %v, expected two", got)
	}
	if !errors.Is(err, gcode.ErrTooManyBlocks) {
		t.Errorf("got %v, expected ErrTooManyBlocks", err)
	}
}

func TestParser_stickyError(t *testing.T) {
	p, err := gcode.NewParserBytes([]byte("G1 X\n"))
	if err != nil {
		t.Fatal(err)
	}
	_, err1 := p.Next()
	if !errors.Is(err1, gcode.ErrEmptyValue) {
		t.Fatalf("got %v, expected ErrEmptyValue", err1)
	}
	_, err2 := p.Next()
	if err1 != err2 {
		t.Errorf("error not sticky: %v then %v", err1, err2)
	}
	if p.Line() != 1 {
		t.Errorf("Line() = %d after error, expected 1", p.Line())
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func TestParser_readError(t *testing.T) {
	cause := errors.New("device unplugged")
	p, err := gcode.NewParser(errReader{err: cause})
	if err != nil {
		t.Fatal(err)
	}
	_, err = p.Next()
	if !errors.Is(err, gcode.ErrRead) {
		t.Errorf("got %v, expected ErrRead", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("error %v does not wrap the read failure", err)
	}
}

func TestParser_file(t *testing.T) {
	p, err := gcode.NewParserFile("testdata/simple.nc")
	if err != nil {
		t.Fatal(err)
	}
	got, derr := drain(p)
	if derr != nil {
		t.Fatal(derr)
	}
	expected := []string{
		"N10 G21",
		"N20 G90",
		"N30 G1 X10.5 Y-4.25 F1500",
		"N40 M30",
	}
	if len(got) != len(expected) {
		t.Fatalf("\nGot     : %v\nExpected: %v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("\nGot     : %v\nExpected: %v", got[i], expected[i])
		}
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestParser_missingFile(t *testing.T) {
	if _, err := gcode.NewParserFile("testdata/no-such-file.nc"); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParser_reader(t *testing.T) {
	p, err := gcode.NewParser(strings.NewReader("G1 X1\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, derr := drain(p)
	if derr != nil || len(got) != 1 {
		t.Fatalf("got (%v, %v), expected one block", got, derr)
	}
	// Close must not touch a caller-owned reader
	if err := p.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestParser_floatBits(t *testing.T) {
	if _, err := gcode.NewParserBytes(nil, gcode.WithFloatBits(16)); !errors.Is(err, gcode.ErrFloatBits) {
		t.Errorf("got %v, expected ErrFloatBits", err)
	}
	if _, err := gcode.NewParserBytes(nil, gcode.WithFloatBits(32)); err != nil {
		t.Errorf("got %v, expected 32-bit floats to be accepted", err)
	}
}

func TestBlock_clone(t *testing.T) {
	p, err := gcode.NewParserBytes([]byte("G1 P\"abc\"\nG2 X2\n"))
	if err != nil {
		t.Fatal(err)
	}
	b1, err := p.Next()
	if err != nil {
		t.Fatal(err)
	}
	c := b1.Clone()
	if &c.Words[0] == &b1.Words[0] {
		t.Error("clone shares word storage with the ephemeral block")
	}
	if _, err := p.Next(); err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != `G1 P"abc"` {
		t.Errorf("clone = %q after advancing, expected %q", got, `G1 P"abc"`)
	}
}
