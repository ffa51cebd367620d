package normalize

import (
	"regexp"
	"strings"
)

var (
	nonDigit       = regexp.MustCompile(`\D+`)
	appRefPattern  = regexp.MustCompile(`^[A-Z0-9]{11}$`)
	scenarioSpacer = regexp.MustCompile(`[\s-]+`)
)

// OnlyDigits strips every non-digit character: "10 123-456/7" -> "101234567".
func OnlyDigits(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// AppRef trims and uppercases an application reference.
func AppRef(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsAppRef reports whether s (already normalized) is an 11-character
// A-Z0-9 file name.
func IsAppRef(s string) bool {
	return appRefPattern.MatchString(s)
}

// ScenarioName lowercases and snake-cases a scenario flag so that
// "Discharge-Before-Admission" matches "discharge_before_admission".
func ScenarioName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return scenarioSpacer.ReplaceAllString(s, "_")
}
