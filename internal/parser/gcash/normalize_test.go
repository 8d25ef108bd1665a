package gcash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_SplitsPackedEntries(t *testing.T) {
	in := "Payment to Alice 12345678 100.00 Payment to Bob 87654321 200.00"

	got := normalizeText(in)

	assert.Equal(t, "Payment to Alice 12345678 100.00 \nPayment to Bob 87654321 200.00", got)
}

func TestNormalizeText_Idempotent(t *testing.T) {
	in := "header junk Refund from Shop 123456789 50.00 Transfer from 0912345670 to 0917000001 75.00\nGCredit footer"

	once := normalizeText(in)
	twice := normalizeText(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeText_KeepsDateStampAttached(t *testing.T) {
	in := "2023-05-01 10:12 AM Payment to Alice 12345678 100.00"

	assert.Equal(t, in, normalizeText(in))
}

func TestNormalizeText_BillsNotSplitAtInnerPayment(t *testing.T) {
	in := "x Bills Payment to Meralco 123456789 100.00"

	got := normalizeText(in)

	assert.Equal(t, "x \nBills Payment to Meralco 123456789 100.00", got)
}

func TestLogicalLines_DropsBlanks(t *testing.T) {
	in := "\n\n  \nGGives Auto Repayment 500.00\n   \n"

	assert.Equal(t, []string{"GGives Auto Repayment 500.00"}, logicalLines(in))
}
