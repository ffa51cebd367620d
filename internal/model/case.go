package model

import "time"

// Case is one synthetic hospital episode. Admission, discharge and billing
// messages built from the same Case describe the same stay.
type Case struct {
	SenderID   string
	ReceiverID string

	// Insurance (INV)
	InsuredID       string // 12 digits
	InsuranceClass  string
	PopulationCode  string
	DMPCode         string
	InsurerValidity string // MMYY
	InstitutionFlag string

	// Person (NAD)
	LastName  string
	FirstName string
	Gender    string // M, W or D
	BirthDate time.Time

	// Stay
	AdmissionDate time.Time
	AdmissionTime string // HHMM
	DischargeDate time.Time
	DischargeTime string // HHMM
	Department    string
	ReferrerID    string

	// Diagnoses
	AdmissionDiagnosis string
	PrincipalDiagnosis string
	SecondaryDiagnoses []string

	// Invoice
	Currency      string
	InvoiceNumber string
	InvoiceDate   time.Time
	InvoiceType   string
	LineItems     []LineItem
	CoPayment     *CoPayment
	TotalCents    int64
}

// LineItem is one billed service (ENT).
type LineItem struct {
	ServiceCode string
	UnitCents   int64
	From        time.Time
	To          time.Time
	Quantity    int
}

// CoPayment is the patient's share deducted from the invoice (ZLG).
type CoPayment struct {
	Cents     int64
	Indicator string
}

// AmountCents is unit price times quantity.
func (li LineItem) AmountCents() int64 {
	return li.UnitCents * int64(li.Quantity)
}

// ComputeTotalCents returns the invoice total implied by the line items and
// co-payment, floored at zero.
func (c *Case) ComputeTotalCents() int64 {
	var sum int64
	for _, li := range c.LineItems {
		sum += li.AmountCents()
	}
	if c.CoPayment != nil {
		sum -= c.CoPayment.Cents
	}
	if sum < 0 {
		return 0
	}
	return sum
}

// Clone returns a deep copy; slices and the co-payment are not shared.
func (c Case) Clone() Case {
	out := c
	if c.SecondaryDiagnoses != nil {
		out.SecondaryDiagnoses = append([]string(nil), c.SecondaryDiagnoses...)
	}
	if c.LineItems != nil {
		out.LineItems = append([]LineItem(nil), c.LineItems...)
	}
	if c.CoPayment != nil {
		cp := *c.CoPayment
		out.CoPayment = &cp
	}
	return out
}
