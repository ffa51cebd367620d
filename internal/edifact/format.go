// Package edifact renders EDIFACT segments and wraps them in an interchange
// envelope (UNA/UNB/UNH ... UNT/UNZ) using the Anlage 4 separators.
package edifact

import (
	"fmt"
	"strconv"
	"strings"
)

// Service characters declared by the UNA line.
const (
	ComponentSep = ":"
	ElementSep   = "+"
	Terminator   = "'"

	// UNALine announces component ':', element '+', decimal '.', release '?'
	// and segment terminator '\''.
	UNALine = "UNA:+.? '"
)

// Pad renders n as a zero-padded decimal of exactly width digits.
// Values above 10^width-1 wrap modularly back into [1, 10^width-1], so
// Pad(100000, 5) == "00001". Values <= 0 map to 1.
func Pad(n, width int) string {
	if width <= 0 {
		return ""
	}
	limit := 1
	for i := 0; i < width; i++ {
		limit *= 10
	}
	limit--
	if n <= 0 {
		n = 1
	}
	n = (n-1)%limit + 1
	return fmt.Sprintf("%0*d", width, n)
}

// FormatAmount renders an amount given in cents with a comma decimal
// separator and exactly two fractional digits: 40000 -> "400,00".
// Negative amounts clamp to "0,00".
func FormatAmount(cents int64) string {
	if cents < 0 {
		cents = 0
	}
	return strconv.FormatInt(cents/100, 10) + "," + fmt.Sprintf("%02d", cents%100)
}

// Segment joins tag and fields with the element separator and appends the
// segment terminator. Empty fields keep their position: Segment("X", "a",
// "", "b") == "X+a++b'".
func Segment(tag string, fields ...string) string {
	var b strings.Builder
	b.WriteString(tag)
	for _, f := range fields {
		b.WriteString(ElementSep)
		b.WriteString(f)
	}
	b.WriteString(Terminator)
	return b.String()
}

// Composite joins data elements of a composite with the component separator.
func Composite(parts ...string) string {
	return strings.Join(parts, ComponentSep)
}
