// Package generate turns validated requests into interchange files, one at a
// time or as a batch.
package generate

import (
	"fmt"
	"time"

	"github.com/gyeh/dtalab/internal/casegen"
	"github.com/gyeh/dtalab/internal/edifact"
	"github.com/gyeh/dtalab/internal/model"
	"github.com/gyeh/dtalab/internal/payload"
)

const refWidth = 5

// FileName returns the suggested name for an interchange file.
func FileName(mode model.Mode, t model.MessageType, appRef string, interchangeRef int) string {
	return fmt.Sprintf("TP4a_%s_%s_%s_%s.edi", mode, t, appRef, edifact.Pad(interchangeRef, refWidth))
}

// Generate validates req and renders one interchange.
//
// Validation problems return a *ValidationError and no file. A payload
// invariant failure returns both the described file (with Err set) and a
// *StepError so that batch callers can report it.
func Generate(req Request) (*model.GeneratedFile, error) {
	req = req.Normalized().withClock(time.Now())
	if problems := ValidateRequest(req); len(problems) > 0 {
		return nil, &StepError{Step: StepValidate, Err: &ValidationError{Problems: problems}}
	}
	mt, _ := model.ParseMessageType(req.MessageType)

	f := &model.GeneratedFile{
		FileName:       FileName(req.Mode, mt, req.AppRef, req.InterchangeRef),
		Mode:           req.Mode,
		MessageType:    mt,
		InterchangeRef: edifact.Pad(req.InterchangeRef, refWidth),
		MessageRef:     edifact.Pad(req.MessageRef, refWidth),
		Seed:           casegen.SeedFor(req.InterchangeRef, req.MessageRef),
		Scenarios:      req.Scenarios,
	}

	c := casegen.New(req.Today).Build(f.Seed, req.SenderID, req.ReceiverID)
	c = casegen.ApplyScenarios(c, req.Scenarios)

	segments, err := payload.Build(mt, &c, req.ProcessCode, req.SequenceNo)
	if err != nil {
		f.Err = err
		return f, &StepError{Step: StepPayload, Err: err}
	}

	f.PayloadCount = len(segments)
	f.TotalCents = c.TotalCents
	f.Content = edifact.Assemble(edifact.Options{IncludeUNA: req.IncludeUNA, Now: req.Now}, edifact.Interchange{
		SenderID:       req.SenderID,
		ReceiverID:     req.ReceiverID,
		InterchangeRef: f.InterchangeRef,
		AppRef:         req.AppRef,
		MessageRef:     f.MessageRef,
		MessageType:    mt.String(),
		Payload:        segments,
	})
	return f, nil
}
