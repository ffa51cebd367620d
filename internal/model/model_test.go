package model

import (
	"testing"
	"time"
)

func TestParseMessageType(t *testing.T) {
	for _, code := range MessageTypeCodes() {
		mt, err := ParseMessageType(code)
		if err != nil {
			t.Fatalf("ParseMessageType(%q): %v", code, err)
		}
		if mt.String() != code {
			t.Errorf("round trip %q -> %q", code, mt.String())
		}
	}
	if mt, err := ParseMessageType(" rech "); err != nil || mt != MessageRECH {
		t.Errorf("lower-case input: %v %v", mt, err)
	}
	if _, err := ParseMessageType("XXXX"); err == nil {
		t.Error("expected error for unknown code")
	}
	if len(AllMessageTypes) != 17 {
		t.Errorf("catalog has %d entries, want 17", len(AllMessageTypes))
	}
}

func TestParseMode(t *testing.T) {
	if m, _ := ParseMode("test"); m != ModeTest {
		t.Errorf("got %q", m)
	}
	if m, _ := ParseMode("prod"); m != ModeProd {
		t.Errorf("got %q", m)
	}
	if _, err := ParseMode("LIVE"); err == nil {
		t.Error("expected error")
	}
}

func TestCase_ComputeTotalCents(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := Case{LineItems: []LineItem{
		{UnitCents: 20000, Quantity: 2, From: day, To: day},
		{UnitCents: 1050, Quantity: 3, From: day, To: day},
	}}
	if got := c.ComputeTotalCents(); got != 43150 {
		t.Errorf("total = %d, want 43150", got)
	}
	c.CoPayment = &CoPayment{Cents: 9999, Indicator: "1"}
	if got := c.ComputeTotalCents(); got != 33151 {
		t.Errorf("total with copay = %d, want 33151", got)
	}
	c.CoPayment.Cents = 1_000_000
	if got := c.ComputeTotalCents(); got != 0 {
		t.Errorf("total should floor at zero, got %d", got)
	}
}

func TestCase_CloneIsDeep(t *testing.T) {
	orig := Case{
		SecondaryDiagnoses: []string{"A00.0"},
		LineItems:          []LineItem{{ServiceCode: "X", Quantity: 1}},
		CoPayment:          &CoPayment{Cents: 10},
	}
	cp := orig.Clone()
	cp.SecondaryDiagnoses[0] = "B00.0"
	cp.LineItems[0].Quantity = 5
	cp.CoPayment.Cents = 99

	if orig.SecondaryDiagnoses[0] != "A00.0" || orig.LineItems[0].Quantity != 1 || orig.CoPayment.Cents != 10 {
		t.Errorf("clone shares state with original: %+v", orig)
	}
}
