package random

import (
	"regexp"
	"testing"
	"time"
)

var icdPattern = regexp.MustCompile(`^[A-Z][0-9]{2}\.[0-9]$`)

func TestSource_SameSeedSameSequence(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 50; i++ {
		if x, y := a.Digits(12), b.Digits(12); x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
		if x, y := a.ICDCode(), b.ICDCode(); x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
	}
}

func TestSource_Digits(t *testing.T) {
	s := New(1)
	d := s.Digits(12)
	if !regexp.MustCompile(`^[0-9]{12}$`).MatchString(d) {
		t.Errorf("Digits(12) = %q", d)
	}
	if s.Digits(0) != "" {
		t.Error("Digits(0) should be empty")
	}
}

func TestSource_UpperAlnum(t *testing.T) {
	got := New(2).UpperAlnum(11)
	if !regexp.MustCompile(`^[A-Z0-9]{11}$`).MatchString(got) {
		t.Errorf("UpperAlnum(11) = %q", got)
	}
}

func TestSource_ICDCodeFormat(t *testing.T) {
	s := New(3)
	for i := 0; i < 200; i++ {
		if c := s.ICDCode(); !icdPattern.MatchString(c) {
			t.Fatalf("ICDCode() = %q", c)
		}
	}
}

func TestSource_DateInclusiveRange(t *testing.T) {
	s := New(4)
	start := time.Date(2026, 1, 30, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 2, 1, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		d := s.Date(start, end)
		if d.Before(Day(start)) || d.After(Day(end)) {
			t.Fatalf("date %v outside range", d)
		}
		seen[d.Format("20060102")] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 days to be drawn, saw %v", seen)
	}
	if got := s.Date(end, start); !got.Equal(Day(end)) {
		t.Errorf("reversed range should return start, got %v", got)
	}
}

func TestSource_ClockTime(t *testing.T) {
	s := New(5)
	re := regexp.MustCompile(`^([01][0-9]|2[0-3])[0-5][0-9]$`)
	for i := 0; i < 200; i++ {
		if c := s.ClockTime(); !re.MatchString(c) {
			t.Fatalf("ClockTime() = %q", c)
		}
	}
}

func TestSource_Between(t *testing.T) {
	s := New(6)
	for i := 0; i < 200; i++ {
		if v := s.Between(1, 14); v < 1 || v > 14 {
			t.Fatalf("Between(1,14) = %d", v)
		}
	}
	if s.Between(3, 3) != 3 {
		t.Error("degenerate range")
	}
}

func TestFirstNames_Fallback(t *testing.T) {
	if len(FirstNames("?")) == 0 {
		t.Fatal("unknown gender should fall back to neutral pool")
	}
	for _, g := range GenderCodes {
		if len(FirstNames(g)) == 0 {
			t.Errorf("no names for %s", g)
		}
	}
}
