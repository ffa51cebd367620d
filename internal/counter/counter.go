// Package counter hands out interchange and message references. Each track
// holds the next value to use and wraps from 99999 back to 1.
package counter

import (
	"context"
	"fmt"

	"github.com/gyeh/dtalab/internal/model"
)

// Track names one reference sequence.
type Track string

const (
	TrackTestInterchange Track = "interchange_test"
	TrackProdInterchange Track = "interchange_prod"
	TrackMessage         Track = "message"
)

// AllTracks lists every track in display order.
var AllTracks = []Track{TrackTestInterchange, TrackProdInterchange, TrackMessage}

// MaxValue is the largest five-digit reference.
const MaxValue = 99999

// Store persists the next value of each track.
type Store interface {
	// Peek returns the next value without consuming it.
	Peek(ctx context.Context, track Track) (int, error)
	// Reserve consumes n consecutive values and returns the first one.
	Reserve(ctx context.Context, track Track, n int) (int, error)
	// Set overrides the next value.
	Set(ctx context.Context, track Track, next int) error
}

// InterchangeTrack returns the interchange track for a mode.
func InterchangeTrack(mode model.Mode) Track {
	if mode == model.ModeProd {
		return TrackProdInterchange
	}
	return TrackTestInterchange
}

// ParseTrack validates a track name.
func ParseTrack(s string) (Track, error) {
	for _, t := range AllTracks {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown counter track %q", s)
}

// Normalize maps v into [1, MaxValue]; out-of-range values restart at 1.
func Normalize(v int) int {
	if v < 1 || v > MaxValue {
		return 1
	}
	return v
}

// Advance returns the value n steps after v, wrapping 99999 -> 1.
func Advance(v, n int) int {
	v = Normalize(v)
	if n < 0 {
		n = 0
	}
	return (v-1+n)%MaxValue + 1
}
