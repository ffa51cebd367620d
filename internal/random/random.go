// Package random draws synthetic field values from an explicitly seeded
// generator. Nothing here touches the global math/rand source, so equal
// seeds and equal call sequences yield equal values.
package random

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	digits     = "0123456789"
	upperAlnum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	letters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Source is a seeded generator. It is not safe for concurrent use; give each
// goroutine its own Source.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a value in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Between returns a value in [lo, hi].
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Digits returns n random decimal digits (leading zeros allowed).
func (s *Source) Digits(n int) string {
	return s.fromAlphabet(digits, n)
}

// UpperAlnum returns n random characters from A-Z0-9.
func (s *Source) UpperAlnum(n int) string {
	return s.fromAlphabet(upperAlnum, n)
}

func (s *Source) fromAlphabet(alphabet string, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[s.rng.Intn(len(alphabet))]
	}
	return string(b)
}

// Date returns a calendar date in the inclusive range [start, end], truncated
// to midnight in start's location. If end precedes start, start is returned.
func (s *Source) Date(start, end time.Time) time.Time {
	start = Day(start)
	end = Day(end)
	days := daysBetween(start, end)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, s.rng.Intn(days+1))
}

// Pick returns one element of pool. pool must not be empty.
func (s *Source) Pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// ICDCode returns an ICD-like code such as "K35.8". It makes no claim to be
// a valid ICD-10-GM code.
func (s *Source) ICDCode() string {
	return fmt.Sprintf("%c%02d.%d", letters[s.rng.Intn(len(letters))], s.rng.Intn(100), s.rng.Intn(10))
}

// ClockTime returns a random wall-clock time as HHMM.
func (s *Source) ClockTime() string {
	return fmt.Sprintf("%02d%02d", s.rng.Intn(24), s.rng.Intn(60))
}

// daysBetween counts calendar days from a to b, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
