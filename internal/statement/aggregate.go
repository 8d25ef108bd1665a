package statement

// Aggregator folds records into a Summary: grand totals plus per-key groups.
// It is a pure fold; the final totals do not depend on insertion order, though
// the summary's transaction list preserves it.
type Aggregator struct {
	summary *Summary
}

func NewAggregator() *Aggregator {
	return &Aggregator{summary: NewSummary()}
}

// Add folds one record into the running summary. The record's description is
// its grouping key; no record lands in more than one group.
func (a *Aggregator) Add(rec Record) {
	s := a.summary

	s.Transactions = append(s.Transactions, rec)
	s.TotalDebit = s.TotalDebit.Add(rec.Debit)
	s.TotalCredit = s.TotalCredit.Add(rec.Credit)

	g, ok := s.Groups[rec.Description]
	if !ok {
		g = &Group{Key: rec.Description}
		s.Groups[rec.Description] = g
	}

	g.Count++
	g.TotalDebit = g.TotalDebit.Add(rec.Debit)
	g.TotalCredit = g.TotalCredit.Add(rec.Credit)
}

// Warn records a per-line warning without affecting totals.
func (a *Aggregator) Warn(line, reason string) {
	a.summary.Warnings = append(a.summary.Warnings, Warning{Line: line, Reason: reason})
}

// Summary returns the accumulated result.
func (a *Aggregator) Summary() *Summary {
	return a.summary
}
