package manifest

import "sort"

// Summary aggregates a manifest for display.
type Summary struct {
	BatchIDs   []string
	Rows       int
	Generated  int
	Failed     int
	ByType     map[string]int
	ByScenario map[string]int
	// BilledCents sums total_cents over generated billing messages.
	BilledCents int64
}

// Summarize folds rows into a Summary.
func Summarize(rows []Row) Summary {
	s := Summary{
		Rows:       len(rows),
		ByType:     make(map[string]int),
		ByScenario: make(map[string]int),
	}
	batches := make(map[string]bool)
	for i := range rows {
		r := &rows[i]
		if !batches[r.BatchID] {
			batches[r.BatchID] = true
			s.BatchIDs = append(s.BatchIDs, r.BatchID)
		}
		if !r.OK() {
			s.Failed++
			continue
		}
		s.Generated++
		s.ByType[r.MessageType]++
		for _, sc := range r.Scenarios {
			s.ByScenario[sc]++
		}
		if r.TotalCents != nil {
			s.BilledCents += *r.TotalCents
		}
	}
	sort.Strings(s.BatchIDs)
	return s
}
