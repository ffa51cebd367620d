// Package casegen derives reproducible synthetic cases from a seed and
// applies deliberate error scenarios for negative testing.
package casegen

import (
	"fmt"
	"time"

	"github.com/gyeh/dtalab/internal/model"
	"github.com/gyeh/dtalab/internal/random"
)

const (
	minStayDays      = 1
	maxStayDays      = 14
	maxInvoiceDelay  = 5
	minLineItems     = 1
	maxLineItems     = 3
	minUnitCents     = 5_000
	maxUnitCents     = 250_000
	maxQuantity      = 5
	maxSecondaryDx   = 3
	coPaymentChance  = 0.6
	maxCoPayCents    = 10_000 // exclusive
	coPayIndicator   = "1"
	defaultCurrency  = "EUR"
	oldestPatientAge = 90
	youngestAdultAge = 18
)

// SeedFor combines an interchange reference and a message reference into a
// case seed. It is injective for refs in [0, 99999].
func SeedFor(interchangeRef, messageRef int) int64 {
	return int64(interchangeRef)*100000 + int64(messageRef)
}

// Builder builds cases relative to a fixed reference day.
type Builder struct {
	// Today anchors all relative date ranges. Zero means the current day.
	Today time.Time
}

// New returns a Builder anchored at today.
func New(today time.Time) *Builder {
	return &Builder{Today: today}
}

// Build derives a Case from seed. Equal seed, identifiers and Today always
// produce equal cases. It never fails and does not validate identifiers.
//
// Draw order (append new draws at the end only):
// insured id, insurance class, population, DMP, validity month, validity
// year, institution flag, gender, first name, last name, birth date,
// admission date, admission time, stay length, discharge time, department,
// admission diagnosis, principal diagnosis, secondary count and codes,
// invoice delay, invoice number digits, invoice type, line count, per line
// (service, unit cents, quantity), co-payment chance and amount, referrer id.
func (b *Builder) Build(seed int64, senderID, receiverID string) model.Case {
	today := b.Today
	if today.IsZero() {
		today = time.Now()
	}
	today = random.Day(today)
	r := random.New(seed)

	c := model.Case{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Currency:   defaultCurrency,
	}

	c.InsuredID = r.Digits(12)
	c.InsuranceClass = r.Pick(random.InsuranceClasses)
	c.PopulationCode = r.Pick(random.PopulationCodes)
	c.DMPCode = r.Pick(random.DMPCodes)
	validMonth := r.Between(1, 12)
	validYear := today.Year() + r.Between(1, 3)
	c.InsurerValidity = fmt.Sprintf("%02d%02d", validMonth, validYear%100)
	c.InstitutionFlag = r.Pick(random.InstitutionFlags)

	c.Gender = r.Pick(random.GenderCodes)
	c.FirstName = r.Pick(random.FirstNames(c.Gender))
	c.LastName = r.Pick(random.LastNames)
	c.BirthDate = r.Date(
		time.Date(today.Year()-oldestPatientAge, time.January, 1, 0, 0, 0, 0, today.Location()),
		time.Date(today.Year()-youngestAdultAge, time.December, 31, 0, 0, 0, 0, today.Location()),
	)

	c.AdmissionDate = r.Date(today.AddDate(-1, 0, 0), today)
	c.AdmissionTime = r.ClockTime()
	c.DischargeDate = c.AdmissionDate.AddDate(0, 0, r.Between(minStayDays, maxStayDays))
	c.DischargeTime = r.ClockTime()
	c.Department = r.Pick(random.DepartmentCodes)

	c.AdmissionDiagnosis = r.ICDCode()
	c.PrincipalDiagnosis = r.ICDCode()
	if n := r.Between(0, maxSecondaryDx); n > 0 {
		c.SecondaryDiagnoses = make([]string, n)
		for i := range c.SecondaryDiagnoses {
			c.SecondaryDiagnoses[i] = r.ICDCode()
		}
	}

	c.InvoiceDate = c.DischargeDate.AddDate(0, 0, r.Between(0, maxInvoiceDelay))
	c.InvoiceNumber = fmt.Sprintf("%04d%s", today.Year(), r.Digits(6))
	c.InvoiceType = r.Pick(random.InvoiceTypes)

	c.LineItems = make([]model.LineItem, r.Between(minLineItems, maxLineItems))
	for i := range c.LineItems {
		c.LineItems[i] = model.LineItem{
			ServiceCode: r.Pick(random.ServiceCodes),
			UnitCents:   int64(r.Between(minUnitCents, maxUnitCents-1)),
			Quantity:    r.Between(1, maxQuantity),
			From:        c.AdmissionDate,
			To:          c.DischargeDate,
		}
	}
	if r.Chance(coPaymentChance) {
		c.CoPayment = &model.CoPayment{
			Cents:     int64(r.Intn(maxCoPayCents)),
			Indicator: coPayIndicator,
		}
	}
	c.TotalCents = c.ComputeTotalCents()

	c.ReferrerID = r.Digits(9)

	return c
}

// Build derives a Case anchored at the current day.
func Build(seed int64, senderID, receiverID string) model.Case {
	return New(time.Time{}).Build(seed, senderID, receiverID)
}
