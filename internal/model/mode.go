package model

import (
	"fmt"
	"strings"
)

// Mode selects the Verfahren: test and production files are numbered on
// separate interchange-reference tracks.
type Mode string

const (
	ModeTest Mode = "TEST"
	ModeProd Mode = "ECHT"
)

// ParseMode accepts TEST/ECHT (case-insensitive) and PROD as an alias.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TEST":
		return ModeTest, nil
	case "ECHT", "PROD":
		return ModeProd, nil
	}
	return "", fmt.Errorf("unknown mode %q (want TEST or ECHT)", s)
}
