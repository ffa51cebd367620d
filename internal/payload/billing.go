package payload

import (
	"strconv"

	"github.com/gyeh/dtalab/internal/edifact"
	"github.com/gyeh/dtalab/internal/model"
)

// Billing renders a RECH payload:
// FKT, INV, NAD, STA, CUX, REC, [ZLG], FAB, ENT+.
// The REC total must equal the total implied by line items and co-payment.
func Billing(c *model.Case, processCode, sequenceNo string) ([]string, error) {
	if len(c.LineItems) == 0 {
		return nil, ErrNoLineItems
	}
	if c.TotalCents != c.ComputeTotalCents() {
		return nil, ErrTotalMismatch
	}

	segments := []string{
		buildFKT(c, processCode, sequenceNo),
		buildINV(c),
		buildNAD(c),
		buildSTA(c),
		edifact.Segment(TagCUX, c.Currency),
		edifact.Segment(TagREC,
			c.InvoiceNumber,
			date(c.InvoiceDate),
			c.InvoiceType,
			date(c.AdmissionDate),
			edifact.FormatAmount(c.TotalCents),
		),
	}
	if c.CoPayment != nil {
		segments = append(segments, edifact.Segment(TagZLG,
			edifact.FormatAmount(c.CoPayment.Cents),
			c.CoPayment.Indicator,
		))
	}
	segments = append(segments, edifact.Segment(TagFAB, c.Department))
	for _, li := range c.LineItems {
		segments = append(segments, edifact.Segment(TagENT,
			li.ServiceCode,
			edifact.FormatAmount(li.UnitCents),
			date(li.From),
			date(li.To),
			strconv.Itoa(li.Quantity),
		))
	}
	return segments, nil
}
