package generate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gyeh/dtalab/internal/casegen"
	"github.com/gyeh/dtalab/internal/counter"
	"github.com/gyeh/dtalab/internal/model"
	"github.com/gyeh/dtalab/internal/normalize"
)

var (
	participantID = regexp.MustCompile(`^[0-9]{9}$`)
	twoDigits     = regexp.MustCompile(`^[0-9]{2}$`)
)

// Request carries everything needed to produce one interchange.
type Request struct {
	SenderID    string
	ReceiverID  string
	AppRef      string
	MessageType string
	ProcessCode string
	SequenceNo  string
	IncludeUNA  bool
	Mode        model.Mode
	Scenarios   []string

	InterchangeRef int
	MessageRef     int

	// Today anchors case dates; Now stamps the UNB segment. Zero values
	// mean the current time.
	Today time.Time
	Now   time.Time
}

// Normalized returns a copy with non-digits stripped from the participant
// IDs, the application reference uppercased and scenario names canonicalized
// and deduplicated.
func (r Request) Normalized() Request {
	r.SenderID = normalize.OnlyDigits(r.SenderID)
	r.ReceiverID = normalize.OnlyDigits(r.ReceiverID)
	r.AppRef = normalize.AppRef(r.AppRef)
	r.MessageType = strings.ToUpper(strings.TrimSpace(r.MessageType))
	r.ProcessCode = strings.TrimSpace(r.ProcessCode)
	r.SequenceNo = strings.TrimSpace(r.SequenceNo)
	if r.Mode == "" {
		r.Mode = model.ModeTest
	} else if m, err := model.ParseMode(string(r.Mode)); err == nil {
		r.Mode = m
	}

	var scenarios []string
	seen := make(map[string]bool)
	for _, s := range r.Scenarios {
		s = normalize.ScenarioName(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		scenarios = append(scenarios, s)
	}
	r.Scenarios = scenarios
	return r
}

// ValidateRequest returns one human-readable message per problem in r. An
// empty result means r can be generated. r should already be normalized.
func ValidateRequest(r Request) []string {
	var problems []string
	if !participantID.MatchString(r.SenderID) {
		problems = append(problems, "sender id must be 9 numeric digits")
	}
	if !participantID.MatchString(r.ReceiverID) {
		problems = append(problems, "receiver id must be 9 numeric digits")
	}
	if !normalize.IsAppRef(r.AppRef) {
		problems = append(problems, "application reference must be 11 characters A-Z/0-9 (e.g. KRH00000001)")
	}
	if _, err := model.ParseMessageType(r.MessageType); err != nil {
		problems = append(problems, fmt.Sprintf("message type %q is not one of %s",
			r.MessageType, strings.Join(model.MessageTypeCodes(), ", ")))
	}
	if !twoDigits.MatchString(r.ProcessCode) {
		problems = append(problems, "process code must be 2 digits")
	}
	if !twoDigits.MatchString(r.SequenceNo) {
		problems = append(problems, "sequence number must be 2 digits")
	}
	if _, err := model.ParseMode(string(r.Mode)); err != nil {
		problems = append(problems, err.Error())
	}
	if r.InterchangeRef < 1 || r.InterchangeRef > counter.MaxValue {
		problems = append(problems, fmt.Sprintf("interchange reference %d out of range 1-%d", r.InterchangeRef, counter.MaxValue))
	}
	if r.MessageRef < 1 || r.MessageRef > counter.MaxValue {
		problems = append(problems, fmt.Sprintf("message reference %d out of range 1-%d", r.MessageRef, counter.MaxValue))
	}
	for _, name := range casegen.UnknownScenarios(r.Scenarios) {
		problems = append(problems, fmt.Sprintf("unknown scenario %q", name))
	}
	return problems
}
