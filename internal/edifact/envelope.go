package edifact

import (
	"strconv"
	"strings"
	"time"
)

// Service segment tags.
const (
	TagUNB = "UNB"
	TagUNH = "UNH"
	TagUNT = "UNT"
	TagUNZ = "UNZ"
)

// SyntaxIdentifier is the UNB S001 composite (UNOC, level 3).
const SyntaxIdentifier = "UNOC:3"

// Default message identifier components for TP4a messages.
const (
	DefaultVersion = "16"
	DefaultRelease = "000"
	DefaultAgency  = "00"
)

// Options controls envelope rendering.
type Options struct {
	IncludeUNA bool
	// Now stamps UNB; zero means time.Now().
	Now     time.Time
	Version string
	Release string
	Agency  string
}

// Interchange is one output file: exactly one message between UNB and UNZ.
type Interchange struct {
	SenderID       string
	ReceiverID     string
	InterchangeRef string // 5 digits, see Pad
	AppRef         string // 11-character file name
	MessageRef     string // 5 digits
	MessageType    string // e.g. AUFN
	Payload        []string
}

// Assemble renders the interchange as newline-separated segments with a
// trailing newline. UNT counts UNH, the payload and itself.
func Assemble(opts Options, ic Interchange) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	version := orDefault(opts.Version, DefaultVersion)
	release := orDefault(opts.Release, DefaultRelease)
	agency := orDefault(opts.Agency, DefaultAgency)

	lines := make([]string, 0, len(ic.Payload)+5)
	if opts.IncludeUNA {
		lines = append(lines, UNALine)
	}

	lines = append(lines, Segment(TagUNB,
		SyntaxIdentifier,
		ic.SenderID,
		ic.ReceiverID,
		Composite(now.Format("060102"), now.Format("1504")),
		ic.InterchangeRef,
		"", // S005 password, not used
		ic.AppRef,
	))
	lines = append(lines, Segment(TagUNH,
		ic.MessageRef,
		Composite(ic.MessageType, version, release, agency),
	))
	lines = append(lines, ic.Payload...)
	lines = append(lines, Segment(TagUNT, strconv.Itoa(MessageSegmentCount(len(ic.Payload))), ic.MessageRef))
	lines = append(lines, Segment(TagUNZ, "1", ic.InterchangeRef))

	return strings.Join(lines, "\n") + "\n"
}

// MessageSegmentCount is the UNT segment count for a payload of n segments.
func MessageSegmentCount(n int) int {
	return 1 + n + 1
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
