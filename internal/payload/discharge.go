package payload

import (
	"github.com/gyeh/dtalab/internal/edifact"
	"github.com/gyeh/dtalab/internal/model"
)

// Discharge renders an ENTL payload:
// FKT, INV, NAD, STA, DPV, DAU, ETL, NDG*.
// It refuses cases whose discharge date precedes admission.
func Discharge(c *model.Case, processCode, sequenceNo string) ([]string, error) {
	if c.DischargeDate.Before(c.AdmissionDate) {
		return nil, ErrDischargeBeforeAdmission
	}

	segments := []string{
		buildFKT(c, processCode, sequenceNo),
		buildINV(c),
		buildNAD(c),
		buildSTA(c),
		buildDPV(c),
		edifact.Segment(TagDAU, date(c.AdmissionDate), date(c.DischargeDate)),
		edifact.Segment(TagETL,
			date(c.DischargeDate),
			c.DischargeTime,
			DischargeReason,
			c.Department,
			diagnosis(c.PrincipalDiagnosis),
		),
	}
	for _, dx := range c.SecondaryDiagnoses {
		segments = append(segments, edifact.Segment(TagNDG, diagnosis(dx)))
	}
	return segments, nil
}
