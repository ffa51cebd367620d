// Package payload maps a Case onto the ordered payload segments of one TP4a
// message. Field positions are fixed; empty fields keep their slot.
package payload

import (
	"errors"
	"fmt"
	"time"

	"github.com/gyeh/dtalab/internal/edifact"
	"github.com/gyeh/dtalab/internal/model"
)

// Payload segment tags.
const (
	TagFKT = "FKT" // function
	TagINV = "INV" // insured / coverage
	TagNAD = "NAD" // name
	TagDPV = "DPV" // diagnosis version
	TagAUF = "AUF" // admission
	TagEAD = "EAD" // admission diagnosis
	TagSTA = "STA" // location / status
	TagDAU = "DAU" // duration of stay
	TagETL = "ETL" // discharge details
	TagNDG = "NDG" // secondary diagnosis
	TagCUX = "CUX" // currency
	TagREC = "REC" // invoice header
	TagZLG = "ZLG" // co-payment
	TagFAB = "FAB" // department
	TagENT = "ENT" // invoice line
)

// Fixed field values.
const (
	AdmissionReason = "0101"
	DischargeReason = "019"
	FacilityNumber  = "771234000"
)

// ErrInvariant marks a Case that breaks a structural rule of the message
// being built. Builders never repair such cases.
var ErrInvariant = errors.New("structural invariant violated")

var (
	ErrDischargeBeforeAdmission = fmt.Errorf("%w: discharge date precedes admission date", ErrInvariant)
	ErrNoLineItems              = fmt.Errorf("%w: invoice needs at least one line item", ErrInvariant)
	ErrTotalMismatch            = fmt.Errorf("%w: invoice total does not match line items", ErrInvariant)
)

// BuildFunc renders one message type.
type BuildFunc func(c *model.Case, processCode, sequenceNo string) ([]string, error)

// Build renders the payload for message type t. Types without a dedicated
// builder get the generic function-only payload.
func Build(t model.MessageType, c *model.Case, processCode, sequenceNo string) ([]string, error) {
	return For(t)(c, processCode, sequenceNo)
}

// For returns the builder for t.
func For(t model.MessageType) BuildFunc {
	switch t {
	case model.MessageAUFN:
		return Admission
	case model.MessageENTL:
		return Discharge
	case model.MessageRECH:
		return Billing
	case model.MessageVERL, model.MessageMBEG, model.MessageKHIN, model.MessageKANT,
		model.MessageAMBO, model.MessageZGUT, model.MessageKOUB, model.MessageANFM,
		model.MessageZAHL, model.MessageZAAO, model.MessageSAMU, model.MessageINKA,
		model.MessageKAIN, model.MessageFEHL:
		return Generic
	default:
		return Generic
	}
}

// Generic emits only the function segment.
func Generic(c *model.Case, processCode, sequenceNo string) ([]string, error) {
	return []string{buildFKT(c, processCode, sequenceNo)}, nil
}

func buildFKT(c *model.Case, processCode, sequenceNo string) string {
	return edifact.Segment(TagFKT, processCode, sequenceNo, c.SenderID, c.ReceiverID)
}

func buildINV(c *model.Case) string {
	return edifact.Segment(TagINV,
		c.InsuredID,
		c.InsuranceClass,
		c.PopulationCode,
		c.DMPCode,
		c.InsurerValidity,
		c.InstitutionFlag,
	)
}

func buildNAD(c *model.Case) string {
	return edifact.Segment(TagNAD, c.LastName, c.FirstName, c.Gender, date(c.BirthDate))
}

func buildDPV(c *model.Case) string {
	return edifact.Segment(TagDPV, fmt.Sprintf("%04d", c.AdmissionDate.Year()))
}

func buildSTA(c *model.Case) string {
	return edifact.Segment(TagSTA, FacilityNumber, date(c.DischargeDate), c.DischargeTime)
}

// diagnosis appends the trailing qualifier marker: "K35.8" -> "K35.8:".
func diagnosis(code string) string {
	return code + edifact.ComponentSep
}

func date(t time.Time) string {
	return t.Format("20060102")
}
