package casegen

import (
	"github.com/gyeh/dtalab/internal/model"
)

// Scenario names one deliberate defect injected into a Case.
type Scenario string

const (
	ScenarioInvalidInsuredID         Scenario = "invalid_insured_id"
	ScenarioDischargeBeforeAdmission Scenario = "discharge_before_admission"
	ScenarioEmptyDepartment          Scenario = "empty_department"
	ScenarioInvalidDiagnosisCode     Scenario = "invalid_diagnosis_code"
	ScenarioInvalidAdmissionTime     Scenario = "invalid_admission_time"
)

const (
	invalidInsuredID = "X1234567890A"
	invalidDiagnosis = "XYZ"
)

// mutation is a pure transformation; it receives its own copy of the Case.
type mutation func(model.Case) model.Case

// catalog lists scenarios in application order. Each touches a disjoint set
// of fields.
var catalog = []struct {
	name   Scenario
	mutate mutation
}{
	{ScenarioInvalidInsuredID, func(c model.Case) model.Case {
		c.InsuredID = invalidInsuredID
		return c
	}},
	{ScenarioDischargeBeforeAdmission, func(c model.Case) model.Case {
		c.DischargeDate = c.AdmissionDate.AddDate(0, 0, -1)
		return c
	}},
	{ScenarioEmptyDepartment, func(c model.Case) model.Case {
		c.Department = ""
		return c
	}},
	{ScenarioInvalidDiagnosisCode, func(c model.Case) model.Case {
		c.AdmissionDiagnosis = invalidDiagnosis
		c.PrincipalDiagnosis = invalidDiagnosis
		return c
	}},
	{ScenarioInvalidAdmissionTime, func(c model.Case) model.Case {
		hour := "00"
		if len(c.AdmissionTime) >= 2 {
			hour = c.AdmissionTime[:2]
		}
		c.AdmissionTime = hour + "60"
		return c
	}},
}

// Scenarios returns every known scenario name in application order.
func Scenarios() []Scenario {
	out := make([]Scenario, len(catalog))
	for i, s := range catalog {
		out[i] = s.name
	}
	return out
}

// ApplyScenarios returns a copy of c with every named scenario applied.
// Unknown names are ignored; c itself is never modified.
func ApplyScenarios(c model.Case, names []string) model.Case {
	want := make(map[Scenario]bool, len(names))
	for _, n := range names {
		want[Scenario(n)] = true
	}
	out := c.Clone()
	for _, s := range catalog {
		if want[s.name] {
			out = s.mutate(out)
		}
	}
	return out
}

// UnknownScenarios returns the names ApplyScenarios would ignore.
func UnknownScenarios(names []string) []string {
	known := make(map[Scenario]bool, len(catalog))
	for _, s := range catalog {
		known[s.name] = true
	}
	var unknown []string
	for _, n := range names {
		if !known[Scenario(n)] {
			unknown = append(unknown, n)
		}
	}
	return unknown
}
