package gcode_test

import (
	"errors"
	"testing"

	"github.com/cncforge/gcode"
)

func TestNewAddressConfig(t *testing.T) {
	t.Run("empty set", func(t *testing.T) {
		if _, err := gcode.NewAddressConfig(nil, false); !errors.Is(err, gcode.ErrEmptyLetterSet) {
			t.Errorf("got %v, expected ErrEmptyLetterSet", err)
		}
	})
	t.Run("non alphabetic", func(t *testing.T) {
		if _, err := gcode.NewAddressConfig([]byte("G1"), false); !errors.Is(err, gcode.ErrNonASCIILetter) {
			t.Errorf("got %v, expected ErrNonASCIILetter", err)
		}
	})
	t.Run("non ascii", func(t *testing.T) {
		if _, err := gcode.NewAddressConfig([]byte{0xc3}, false); !errors.Is(err, gcode.ErrNonASCIILetter) {
			t.Errorf("got %v, expected ErrNonASCIILetter", err)
		}
	})
}

func TestAddressConfig_accepts(t *testing.T) {
	ci, err := gcode.NewAddressConfig([]byte("gx"), false)
	if err != nil {
		t.Fatal(err)
	}
	cs, err := gcode.NewAddressConfig([]byte("Gx"), true)
	if err != nil {
		t.Fatal(err)
	}
	data := []struct {
		b      byte
		ci, cs bool
	}{
		{'g', true, false},
		{'G', true, true},
		{'x', true, true},
		{'X', true, false},
		{'y', false, false},
		{'0', false, false},
		{'*', false, false},
	}
	for _, d := range data {
		if got := ci.Accepts(d.b); got != d.ci {
			t.Errorf("case-insensitive Accepts(%q) = %v, expected %v", d.b, got, d.ci)
		}
		if got := cs.Accepts(d.b); got != d.cs {
			t.Errorf("case-sensitive Accepts(%q) = %v, expected %v", d.b, got, d.cs)
		}
	}
}

// Two configs built from the same inputs accept the same byte set.
func TestAddressConfig_idempotent(t *testing.T) {
	a, err := gcode.NewAddressConfig([]byte("GXYZnf"), false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := gcode.NewAddressConfig([]byte("GXYZnf"), false)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 256; i++ {
		if a.Accepts(byte(i)) != b.Accepts(byte(i)) {
			t.Fatalf("configs disagree on %#x", i)
		}
	}
}

func TestFullAddressConfig(t *testing.T) {
	c := gcode.FullAddressConfig()
	for b := byte('A'); b <= 'Z'; b++ {
		if !c.Accepts(b) || !c.Accepts(toLower(b)) {
			t.Errorf("full config rejects %q", b)
		}
	}
	if c.Accepts('0') || c.Accepts(' ') || c.Accepts(0x80) {
		t.Error("full config accepts non-letters")
	}
	if c.CaseSensitive() {
		t.Error("full config should be case-insensitive")
	}
}

func toLower(b byte) byte { return b - 'A' + 'a' }
