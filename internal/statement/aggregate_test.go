package statement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

func TestAggregator_TotalsOrderIndependent(t *testing.T) {
	recs := []statement.Record{
		{Description: "Payment to A", Debit: dec("10.10"), Credit: decimal.Zero},
		{Description: "Refund from B", Debit: decimal.Zero, Credit: dec("5.05")},
		{Description: "Payment to A", Debit: dec("0.90"), Credit: decimal.Zero},
	}

	forward := statement.NewAggregator()
	for _, r := range recs {
		forward.Add(r)
	}

	backward := statement.NewAggregator()
	for i := len(recs) - 1; i >= 0; i-- {
		backward.Add(recs[i])
	}

	f, b := forward.Summary(), backward.Summary()

	assert.True(t, f.TotalDebit.Equal(b.TotalDebit))
	assert.True(t, f.TotalCredit.Equal(b.TotalCredit))
	assert.Equal(t, "11.00", f.TotalDebit.StringFixed(2))
	assert.Equal(t, "5.05", f.TotalCredit.StringFixed(2))

	// Source order is preserved regardless of fold determinism.
	assert.Equal(t, "Payment to A", f.Transactions[0].Description)
	assert.Equal(t, "Payment to A", b.Transactions[0].Description)
	assert.Equal(t, "Refund from B", b.Transactions[1].Description)
}

func TestAggregator_GroupsFoldOncePerRecord(t *testing.T) {
	agg := statement.NewAggregator()
	agg.Add(statement.Record{Description: "Cash-out to X", Debit: dec("100.00"), Credit: decimal.Zero})
	agg.Add(statement.Record{Description: "Cash-out to X", Debit: dec("200.00"), Credit: decimal.Zero})
	agg.Add(statement.Record{Description: "GCredit", Debit: dec("50.00"), Credit: decimal.Zero})

	sum := agg.Summary()
	require.Len(t, sum.Groups, 2)

	total := 0
	for _, g := range sum.Groups {
		total += g.Count
	}
	assert.Equal(t, len(sum.Transactions), total)

	g := sum.Groups["Cash-out to X"]
	require.NotNil(t, g)
	assert.Equal(t, 2, g.Count)
	assert.Equal(t, "300.00", g.TotalDebit.StringFixed(2))
}
