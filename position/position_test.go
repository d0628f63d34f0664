package position

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/testconfig"
)

func TestMapper(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := NewMapper([]byte("naïve")) // ï occupies bytes 2 and 3
	if idx, err := m.Map(0); err != nil || idx != 0 {
		t.Errorf("expected byte 0 to map to cp 0, is %d (%v)", idx, err)
	}
	if idx, err := m.Map(4); err != nil || idx != 3 {
		t.Errorf("expected byte 4 to map to cp 3, is %d (%v)", idx, err)
	}
	if idx, err := m.Map(6); err != nil || idx != 5 {
		t.Errorf("expected end offset to map to cp count 5, is %d (%v)", idx, err)
	}
}

func TestMapperErrors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := NewMapper([]byte("naïve"))
	if _, err := m.Map(3); !errors.Is(err, ErrMidSequence) {
		t.Errorf("expected mid-sequence error for byte 3, is %v", err)
	}
	if _, err := m.Map(7); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected out-of-range error for byte 7, is %v", err)
	}
	if _, err := m.Map(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected out-of-range error for byte -1, is %v", err)
	}
}

func TestMapperCache(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := NewMapper([]byte("αβγδε")) // two bytes per cp
	for i, want := range []int{0, 1, 2, 3, 4, 5} {
		if idx, err := m.Map(2 * i); err != nil || idx != want {
			t.Errorf("sequential query at byte %d: expected cp %d, is %d (%v)",
				2*i, want, idx, err)
		}
	}
	// regression before both cache points restarts from zero
	if idx, err := m.Map(2); err != nil || idx != 1 {
		t.Errorf("expected byte 2 to map to cp 1 after restart, is %d (%v)", idx, err)
	}
}

func TestReverseMapper(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := NewReverseMapper("naïve")
	if off, err := m.Map(3); err != nil || off != 4 {
		t.Errorf("expected cp 3 to map to byte 4, is %d (%v)", off, err)
	}
	if off, err := m.Map(5); err != nil || off != 6 {
		t.Errorf("expected cp count to map to len, is %d (%v)", off, err)
	}
	if off, err := m.Map(1); err != nil || off != 1 {
		t.Errorf("expected cp 1 to map to byte 1, is %d (%v)", off, err)
	}
	if _, err := m.Map(6); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected out-of-range error for cp 6, is %v", err)
	}
}

func TestOffsetMapper(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// source: "Hello, World!", the tokens keep their source offsets
	m := NewOffsetMapper()
	m.Add("Hello", 0, 5)
	m.Separate()
	m.Separate() // collapses
	m.Add("World", 7, 12)
	if text := m.Text(); text != "Hello World" {
		t.Errorf("expected text 'Hello World', is %q", text)
	}
	cases := []struct{ out, source int }{
		{0, 0}, {4, 4}, {5, 5}, {6, 7}, {10, 11},
	}
	for _, c := range cases {
		if src, err := m.Map(c.out); err != nil || src != c.source {
			t.Errorf("expected output %d to originate at %d, is %d (%v)",
				c.out, c.source, src, err)
		}
	}
	if _, err := m.Map(11); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected out-of-range error past the text, is %v", err)
	}
}

func TestOffsetMapperBackward(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := NewOffsetMapper()
	m.Add("one", 0, 3)
	m.Separate()
	m.Add("two", 4, 7)
	m.Text()
	if src, err := m.Map(5); err != nil || src != 5 {
		t.Errorf("expected output 5 to originate at 5, is %d (%v)", src, err)
	}
	if src, err := m.Map(1); err != nil || src != 1 { // before the cached span
		t.Errorf("expected output 1 to originate at 1, is %d (%v)", src, err)
	}
}

func TestOffsetMapperPhases(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := NewOffsetMapper()
	m.Add("x", 0, 1)
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected Map() before Text() to panic, did not")
			}
		}()
		m.Map(0)
	}()
	m.Text()
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected Add() after Text() to panic, did not")
			}
		}()
		m.Add("y", 1, 2)
	}()
}

func TestOffsetMapperMonotonic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	m := NewOffsetMapper()
	m.Add("abc", 4, 7)
	defer func() {
		if recover() == nil {
			t.Errorf("expected overlapping source span to panic, did not")
		}
	}()
	m.Add("def", 2, 5)
}
