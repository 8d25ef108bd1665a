package gcash_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcarlounavas/gcashtrack/internal/parser/gcash"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

const homeAccount = "0912345670"

func parse(t *testing.T, text string) *statement.Summary {
	t.Helper()

	sum, err := gcash.NewParser().Parse(text, homeAccount)
	require.NoError(t, err)
	require.NotNil(t, sum)

	return sum
}

func TestParse_GGivesRepayment(t *testing.T) {
	sum := parse(t, "GGives Auto Repayment 7015697538 500.00")

	require.Len(t, sum.Transactions, 1)
	rec := sum.Transactions[0]
	assert.Equal(t, "GGives Auto Repayment", rec.Description)
	assert.Equal(t, "500.00", rec.Debit.StringFixed(2))
	assert.True(t, rec.Credit.IsZero())
	assert.Equal(t, "7015697538", rec.RefNo)
}

func TestParse_Refund(t *testing.T) {
	sum := parse(t, "Refund from Lazada 9018234761023 349.75")

	require.Len(t, sum.Transactions, 1)
	rec := sum.Transactions[0]
	assert.Equal(t, "Refund from Lazada", rec.Description)
	assert.True(t, rec.Debit.IsZero())
	assert.Equal(t, "349.75", rec.Credit.StringFixed(2))
	assert.Equal(t, "Lazada", rec.Sender)
	assert.Equal(t, "9018234761023", rec.RefNo)
}

func TestParse_Payment(t *testing.T) {
	sum := parse(t, "2023-05-01 10:12 AM Payment to Jane Doe 8010012345678 1,250.00")

	require.Len(t, sum.Transactions, 1)
	rec := sum.Transactions[0]
	assert.Equal(t, "Payment to Jane Doe", rec.Description)
	assert.Equal(t, "1250.00", rec.Debit.StringFixed(2))
	assert.Equal(t, "Jane Doe", rec.Receiver)
	assert.Equal(t, "2023-05-01 10:12 AM", rec.TxDate)
}

func TestParse_PaymentNumericReceiverBecomesOthers(t *testing.T) {
	sum := parse(t, "Payment to 12345678 0000001 250.00")

	require.Len(t, sum.Transactions, 1)
	rec := sum.Transactions[0]
	assert.Equal(t, "Payment to Others", rec.Description)
	assert.Equal(t, "250.00", rec.Debit.StringFixed(2))
	assert.Equal(t, "Others", rec.Receiver)
}

func TestParse_BillsPayment(t *testing.T) {
	sum := parse(t, "Bills Payment to Meralco 123456789 2,480.50")

	require.Len(t, sum.Transactions, 1)
	rec := sum.Transactions[0]
	assert.Equal(t, "Bills Payment to Meralco", rec.Description)
	assert.Equal(t, "2480.50", rec.Debit.StringFixed(2))
}

func TestParse_GCredit(t *testing.T) {
	sum := parse(t, "GCredit INV0001 4567890123456 35.00 700.00")

	require.Len(t, sum.Transactions, 1)
	rec := sum.Transactions[0]
	assert.Equal(t, "GCredit", rec.Description)
	assert.Equal(t, "700.00", rec.Debit.StringFixed(2))
	assert.True(t, rec.Credit.IsZero())
	assert.Equal(t, "4567890123456", rec.RefNo)
}

func TestParse_CashOut(t *testing.T) {
	sum := parse(t, "Cash-out to Palawan Express 90817263 3,000.00")

	require.Len(t, sum.Transactions, 1)
	rec := sum.Transactions[0]
	assert.Equal(t, "Cash-out to Palawan Express", rec.Description)
	assert.Equal(t, "3000.00", rec.Debit.StringFixed(2))
}

func TestParse_TransferDirection(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantDebit  string
		wantCredit string
	}{
		{
			name:       "HomeIsSender",
			line:       "Transfer from 0912345670 to 0917000001 1500.00",
			wantDebit:  "1500.00",
			wantCredit: "0.00",
		},
		{
			name:       "HomeIsReceiver",
			line:       "Transfer from 0917000001 to 0912345670 1500.00",
			wantDebit:  "0.00",
			wantCredit: "1500.00",
		},
		{
			name:       "ThirdPartyTransfer",
			line:       "Transfer from 0917000001 to 0918000002 1500.00",
			wantDebit:  "0.00",
			wantCredit: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum := parse(t, tt.line)

			require.Len(t, sum.Transactions, 1)
			rec := sum.Transactions[0]
			assert.Equal(t, tt.wantDebit, rec.Debit.StringFixed(2))
			assert.Equal(t, tt.wantCredit, rec.Credit.StringFixed(2))
			assert.Equal(t, tt.wantDebit, sum.TotalDebit.StringFixed(2))
			assert.Equal(t, tt.wantCredit, sum.TotalCredit.StringFixed(2))
		})
	}
}

func TestParse_TransferSecondAmountIgnored(t *testing.T) {
	sum := parse(t, "Transfer from 0912345670 to 0917000001 1500.00 15.00")

	require.Len(t, sum.Transactions, 1)
	assert.Equal(t, "1500.00", sum.TotalDebit.StringFixed(2))
}

func TestParse_InvalidAmountIsWarningNotRecord(t *testing.T) {
	sum := parse(t, "Payment to Shop 1234567 12,34.5.6")

	assert.Empty(t, sum.Transactions)
	assert.True(t, sum.TotalDebit.IsZero())
	assert.True(t, sum.TotalCredit.IsZero())
	require.Len(t, sum.Warnings, 1)
	assert.Contains(t, sum.Warnings[0].Reason, "invalid amount")
}

func TestParse_Grouping(t *testing.T) {
	text := strings.Join([]string{
		"Bills Payment to Meralco 123456789 100.00",
		"Payment to Jane Doe 8010012345678 50.00",
		"Bills Payment to Meralco 987654321 200.00",
	}, "\n")

	sum := parse(t, text)

	require.Len(t, sum.Transactions, 3)

	g, ok := sum.Groups["Bills Payment to Meralco"]
	require.True(t, ok)
	assert.Equal(t, 2, g.Count)
	assert.Equal(t, "300.00", g.TotalDebit.StringFixed(2))
	assert.Equal(t, "0.00", g.TotalCredit.StringFixed(2))
}

func TestParse_SumConsistency(t *testing.T) {
	text := strings.Join([]string{
		"statement header for 0912345670",
		"2023-05-01 Payment to Jane Doe 8010012345678 1,250.00",
		"Refund from Lazada 9018234761023 349.75 GGives Auto Repayment 500.00",
		"Transfer from 0917000001 to 0912345670 80.25",
		"Transfer from 0917000001 to 0918000002 999.99",
		"page 1 of 2",
	}, "\n")

	sum := parse(t, text)

	require.Len(t, sum.Transactions, 5)

	wantDebit := decimal.Zero
	wantCredit := decimal.Zero

	for _, rec := range sum.Transactions {
		wantDebit = wantDebit.Add(rec.Debit)
		wantCredit = wantCredit.Add(rec.Credit)
	}

	assert.True(t, sum.TotalDebit.Equal(wantDebit))
	assert.True(t, sum.TotalCredit.Equal(wantCredit))
	assert.Equal(t, "1750.00", sum.TotalDebit.StringFixed(2))
	assert.Equal(t, "430.00", sum.TotalCredit.StringFixed(2))

	for key, g := range sum.Groups {
		gotDebit := decimal.Zero
		gotCredit := decimal.Zero
		count := 0

		for _, rec := range sum.Transactions {
			if rec.Description == key {
				gotDebit = gotDebit.Add(rec.Debit)
				gotCredit = gotCredit.Add(rec.Credit)
				count++
			}
		}

		assert.Equal(t, count, g.Count)
		assert.True(t, g.TotalDebit.Equal(gotDebit))
		assert.True(t, g.TotalCredit.Equal(gotCredit))
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t  \n"} {
		sum := parse(t, text)

		assert.Empty(t, sum.Transactions)
		assert.True(t, sum.TotalDebit.IsZero())
		assert.True(t, sum.TotalCredit.IsZero())
		assert.Empty(t, sum.Groups)
	}
}

func TestParse_UnmatchedLinesProduceNothing(t *testing.T) {
	sum := parse(t, "GCash Transaction History\nAccount: 0912345670\nTotal balance 1,234.56")

	assert.Empty(t, sum.Transactions)
	assert.Empty(t, sum.Warnings)
}
