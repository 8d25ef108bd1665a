package gcash

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount means a numeric field matched by a rule is not a valid
// grouped decimal. The affected line is treated as unmatched; the amount is
// never coerced to zero or NaN.
var ErrInvalidAmount = errors.New("invalid amount")

// amountShape is the accepted literal after stripping grouping commas:
// a non-negative integer part with an optional one- or two-digit fraction.
var amountShape = regexp.MustCompile(`^\d+(?:\.\d{1,2})?$`)

// parseAmount converts a statement amount literal ("1,500.00", "250.00") into
// an exact decimal. Statement amounts use commas as grouping separators and a
// fixed two-decimal fraction; anything else ("12,34.5.6", "", "-5.00") fails.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if !amountShape.MatchString(clean) {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}

	return d, nil
}
