package casegen

import (
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/gyeh/dtalab/internal/model"
)

var (
	today      = time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	digits12   = regexp.MustCompile(`^[0-9]{12}$`)
	icdPattern = regexp.MustCompile(`^[A-Z][0-9]{2}\.[0-9]$`)
	hhmm       = regexp.MustCompile(`^([01][0-9]|2[0-3])[0-5][0-9]$`)
)

func build(seed int64) model.Case {
	return New(today).Build(seed, "123456789", "987654321")
}

func TestSeedFor(t *testing.T) {
	if got := SeedFor(1, 1); got != 100001 {
		t.Errorf("SeedFor(1,1) = %d", got)
	}
	seen := map[int64]bool{}
	for ic := 1; ic <= 30; ic++ {
		for msg := 99990; msg <= 99999; msg++ {
			s := SeedFor(ic, msg)
			if seen[s] {
				t.Fatalf("seed collision at %d/%d", ic, msg)
			}
			seen[s] = true
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a := build(100001)
	b := build(100001)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different cases:\n%+v\n%+v", a, b)
	}
	if reflect.DeepEqual(a, build(100002)) {
		t.Error("different seeds produced identical cases")
	}
}

func TestBuild_Invariants(t *testing.T) {
	for seed := int64(1); seed <= 500; seed++ {
		c := build(seed)

		if !digits12.MatchString(c.InsuredID) {
			t.Fatalf("seed %d: insured id %q", seed, c.InsuredID)
		}
		if c.DischargeDate.Before(c.AdmissionDate) {
			t.Fatalf("seed %d: discharge before admission", seed)
		}
		stay := int(c.DischargeDate.Sub(c.AdmissionDate).Hours() / 24)
		if stay < 1 || stay > 14 {
			t.Fatalf("seed %d: stay of %d days", seed, stay)
		}
		if c.AdmissionDate.After(today) || c.AdmissionDate.Before(today.AddDate(-1, 0, 0)) {
			t.Fatalf("seed %d: admission %v outside the past year", seed, c.AdmissionDate)
		}
		age := today.Year() - c.BirthDate.Year()
		if age < 18 || age > 90 {
			t.Fatalf("seed %d: implausible age %d", seed, age)
		}
		if !hhmm.MatchString(c.AdmissionTime) || !hhmm.MatchString(c.DischargeTime) {
			t.Fatalf("seed %d: bad times %q %q", seed, c.AdmissionTime, c.DischargeTime)
		}
		for _, dx := range append([]string{c.AdmissionDiagnosis, c.PrincipalDiagnosis}, c.SecondaryDiagnoses...) {
			if !icdPattern.MatchString(dx) {
				t.Fatalf("seed %d: diagnosis %q", seed, dx)
			}
		}
		if n := len(c.LineItems); n < 1 || n > 3 {
			t.Fatalf("seed %d: %d line items", seed, n)
		}
		for _, li := range c.LineItems {
			if li.Quantity < 1 || li.Quantity > 5 {
				t.Fatalf("seed %d: quantity %d", seed, li.Quantity)
			}
			if li.UnitCents < 5000 || li.UnitCents >= 250000 {
				t.Fatalf("seed %d: unit %d", seed, li.UnitCents)
			}
		}
		if c.CoPayment != nil && (c.CoPayment.Cents < 0 || c.CoPayment.Cents >= 10000) {
			t.Fatalf("seed %d: copay %d", seed, c.CoPayment.Cents)
		}
		delay := int(c.InvoiceDate.Sub(c.DischargeDate).Hours() / 24)
		if delay < 0 || delay > 5 {
			t.Fatalf("seed %d: invoice delay %d", seed, delay)
		}
		if c.InvoiceNumber[:4] != "2026" || len(c.InvoiceNumber) != 10 {
			t.Fatalf("seed %d: invoice number %q", seed, c.InvoiceNumber)
		}
	}
}

func TestBuild_TotalMatchesLineItems(t *testing.T) {
	for seed := int64(1); seed <= 300; seed++ {
		c := build(seed)
		var sum int64
		for _, li := range c.LineItems {
			sum += li.UnitCents * int64(li.Quantity)
		}
		if c.CoPayment != nil {
			sum -= c.CoPayment.Cents
		}
		if sum < 0 {
			sum = 0
		}
		if c.TotalCents != sum {
			t.Fatalf("seed %d: total %d, want %d", seed, c.TotalCents, sum)
		}
	}
}

func TestBuild_CoPaymentSometimes(t *testing.T) {
	with := 0
	for seed := int64(1); seed <= 400; seed++ {
		if build(seed).CoPayment != nil {
			with++
		}
	}
	// ~60% expected; allow a generous band.
	if with < 160 || with > 320 {
		t.Errorf("co-payment attached to %d of 400 cases", with)
	}
}

func TestBuild_IdentifiersCarried(t *testing.T) {
	c := build(5)
	if c.SenderID != "123456789" || c.ReceiverID != "987654321" {
		t.Errorf("identifiers not carried: %q %q", c.SenderID, c.ReceiverID)
	}
	// identifiers do not affect the random draws
	other := New(today).Build(5, "x", "y")
	if other.InsuredID != c.InsuredID || !other.AdmissionDate.Equal(c.AdmissionDate) {
		t.Error("identifiers changed the draw sequence")
	}
}

func TestApplyScenarios_EachMutation(t *testing.T) {
	base := build(100001)

	c := ApplyScenarios(base, []string{string(ScenarioInvalidInsuredID)})
	if digits12.MatchString(c.InsuredID) {
		t.Errorf("insured id still numeric: %q", c.InsuredID)
	}

	c = ApplyScenarios(base, []string{string(ScenarioDischargeBeforeAdmission)})
	if !c.DischargeDate.Equal(base.AdmissionDate.AddDate(0, 0, -1)) {
		t.Errorf("discharge = %v, want day before %v", c.DischargeDate, base.AdmissionDate)
	}

	c = ApplyScenarios(base, []string{string(ScenarioEmptyDepartment)})
	if c.Department != "" {
		t.Errorf("department = %q", c.Department)
	}

	c = ApplyScenarios(base, []string{string(ScenarioInvalidDiagnosisCode)})
	if icdPattern.MatchString(c.PrincipalDiagnosis) || icdPattern.MatchString(c.AdmissionDiagnosis) {
		t.Errorf("diagnoses still valid: %q %q", c.AdmissionDiagnosis, c.PrincipalDiagnosis)
	}

	c = ApplyScenarios(base, []string{string(ScenarioInvalidAdmissionTime)})
	if c.AdmissionTime[2:] < "60" || c.AdmissionTime[:2] != base.AdmissionTime[:2] {
		t.Errorf("admission time = %q", c.AdmissionTime)
	}
}

func TestApplyScenarios_OriginalUntouched(t *testing.T) {
	base := build(42)
	snapshot := base.Clone()
	all := make([]string, 0)
	for _, s := range Scenarios() {
		all = append(all, string(s))
	}
	_ = ApplyScenarios(base, all)
	if !reflect.DeepEqual(base, snapshot) {
		t.Error("ApplyScenarios mutated its input")
	}
}

func TestApplyScenarios_CombinedAndUnknown(t *testing.T) {
	base := build(7)
	names := []string{"empty_department", "no_such_scenario", "invalid_insured_id"}
	c := ApplyScenarios(base, names)
	if c.Department != "" || c.InsuredID != invalidInsuredID {
		t.Errorf("combined scenarios not applied: %+v", c)
	}
	if c.AdmissionDiagnosis != base.AdmissionDiagnosis {
		t.Error("unrequested scenario applied")
	}
	if got := UnknownScenarios(names); len(got) != 1 || got[0] != "no_such_scenario" {
		t.Errorf("UnknownScenarios = %v", got)
	}
	if !reflect.DeepEqual(ApplyScenarios(base, nil), base) {
		t.Error("no scenarios should return an equal case")
	}
}

func TestApplyScenarios_OrderIndependent(t *testing.T) {
	base := build(9)
	names := []string{}
	for _, s := range Scenarios() {
		names = append(names, string(s))
	}
	reversed := make([]string, len(names))
	for i, n := range names {
		reversed[len(names)-1-i] = n
	}
	if !reflect.DeepEqual(ApplyScenarios(base, names), ApplyScenarios(base, reversed)) {
		t.Error("scenario order is observable")
	}
}
