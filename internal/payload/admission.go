package payload

import (
	"github.com/gyeh/dtalab/internal/edifact"
	"github.com/gyeh/dtalab/internal/model"
)

// Admission renders an AUFN payload:
// FKT, INV, NAD, DPV, AUF, EAD.
func Admission(c *model.Case, processCode, sequenceNo string) ([]string, error) {
	return []string{
		buildFKT(c, processCode, sequenceNo),
		buildINV(c),
		buildNAD(c),
		buildDPV(c),
		edifact.Segment(TagAUF,
			date(c.AdmissionDate),
			c.AdmissionTime,
			AdmissionReason,
			c.Department,
			date(c.DischargeDate), // expected discharge
			"",
			"",
			c.ReferrerID,
		),
		edifact.Segment(TagEAD, diagnosis(c.AdmissionDiagnosis)),
	}, nil
}
