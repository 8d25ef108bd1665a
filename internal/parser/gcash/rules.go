package gcash

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

// Rule patterns share a few building blocks:
//
//	dateGroup — optional leading statement date stamp, carried into tx_date.
//	refNum    — long reference / account-like number.
//	amt       — an amount-shaped token. Deliberately loose: a line such as
//	            "Payment to Shop 1234567 12,34.5.6" should match the rule and
//	            then fail amount parsing, so the failure is reported as a
//	            warning instead of silently skipping the line.
const (
	dateGroup = `(?:(\d{4}-\d{2}-\d{2}(?:\s+\d{1,2}:\d{2}\s*(?:AM|PM))?)\s+)?`
	amt       = `(\d[\d,.]*)`
)

// rule is one transaction classifier. Rules are independent; order lives in
// the rules slice below, most specific first, first match wins per line.
type rule struct {
	name string
	re   *regexp.Regexp
	// build turns a successful regexp match into a record. It returns
	// ErrInvalidAmount when a numeric field does not parse; the line then
	// falls through as unmatched.
	build func(m []string, homeAccount string) (statement.Record, error)
}

// match attempts the rule against one logical line. A nil record with a nil
// error means the line does not belong to this rule.
func (r rule) match(line, homeAccount string) (*statement.Record, error) {
	m := r.re.FindStringSubmatch(line)
	if m == nil {
		return nil, nil
	}

	rec, err := r.build(m, homeAccount)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// onlyDigits reports whether a counterparty token is purely numeric, which is
// an extraction artifact rather than a real name.
var onlyDigits = regexp.MustCompile(`^\d+$`)

// rules is the fixed evaluation order. Every pattern is anchored at the line
// start, so a "Bills Payment to ..." line can never be claimed by the plain
// payment rule even though that one is tried first.
var rules = []rule{
	{
		name: "ggives repayment",
		re:   regexp.MustCompile(`^` + dateGroup + `GGives Auto Repayment\s+(?:(\d{7,})\s+)?` + amt + `\s*$`),
		build: func(m []string, _ string) (statement.Record, error) {
			amount, err := parseAmount(m[3])
			if err != nil {
				return statement.Record{}, err
			}

			return statement.Record{
				Description: "GGives Auto Repayment",
				Debit:       amount,
				Credit:      decimal.Zero,
				RefNo:       m[2],
				TxDate:      m[1],
			}, nil
		},
	},
	{
		name: "refund",
		re:   regexp.MustCompile(`^` + dateGroup + `Refund from\s+(.+?)\s+(\d{7,})\s+` + amt + `\s*$`),
		build: func(m []string, _ string) (statement.Record, error) {
			amount, err := parseAmount(m[4])
			if err != nil {
				return statement.Record{}, err
			}

			return statement.Record{
				Description: "Refund from " + m[2],
				Debit:       decimal.Zero,
				Credit:      amount,
				RefNo:       m[3],
				TxDate:      m[1],
				Sender:      m[2],
			}, nil
		},
	},
	{
		name: "payment",
		re:   regexp.MustCompile(`^` + dateGroup + `Payment to\s+(.+?)\s+(\d{7,})\s+` + amt + `\s*$`),
		build: func(m []string, _ string) (statement.Record, error) {
			amount, err := parseAmount(m[4])
			if err != nil {
				return statement.Record{}, err
			}

			receiver := m[2]
			if onlyDigits.MatchString(receiver) {
				// Numeric-only receiver names are an extraction artifact.
				receiver = "Others"
			}

			return statement.Record{
				Description: "Payment to " + receiver,
				Debit:       amount,
				Credit:      decimal.Zero,
				RefNo:       m[3],
				TxDate:      m[1],
				Receiver:    receiver,
			}, nil
		},
	},
	{
		name: "bills payment",
		re:   regexp.MustCompile(`^` + dateGroup + `Bills Payment to\s+(.+?)\s+(?:(\d{7,})\s+)?` + amt + `\s*$`),
		build: func(m []string, _ string) (statement.Record, error) {
			amount, err := parseAmount(m[4])
			if err != nil {
				return statement.Record{}, err
			}

			return statement.Record{
				Description: "Bills Payment to " + m[2],
				Debit:       amount,
				Credit:      decimal.Zero,
				RefNo:       m[3],
				TxDate:      m[1],
				Receiver:    m[2],
			}, nil
		},
	},
	{
		name: "gcredit",
		re:   regexp.MustCompile(`^` + dateGroup + `GCredit\s+(\S+)\s+(\d{10,})\s+` + amt + `\s+` + amt + `\s*$`),
		build: func(m []string, _ string) (statement.Record, error) {
			// Amounts come as a fee/principal pair; the principal (second
			// amount) is the one that moves money.
			amount, err := parseAmount(m[5])
			if err != nil {
				return statement.Record{}, err
			}

			return statement.Record{
				Description: "GCredit",
				Debit:       amount,
				Credit:      decimal.Zero,
				RefNo:       m[3],
				TxDate:      m[1],
			}, nil
		},
	},
	{
		name: "cash-out",
		re:   regexp.MustCompile(`^` + dateGroup + `Cash-out to\s+(.+?)\s+(?:(\d{7,})\s+)?` + amt + `\s*$`),
		build: func(m []string, _ string) (statement.Record, error) {
			amount, err := parseAmount(m[4])
			if err != nil {
				return statement.Record{}, err
			}

			return statement.Record{
				Description: "Cash-out to " + m[2],
				Debit:       amount,
				Credit:      decimal.Zero,
				RefNo:       m[3],
				TxDate:      m[1],
				Receiver:    m[2],
			}, nil
		},
	},
	{
		name: "transfer",
		re:   regexp.MustCompile(`^` + dateGroup + `Transfer from\s+(\d{7,})\s+to\s+(\d{7,})\s+` + amt + `(?:\s+` + amt + `)?\s*$`),
		build: func(m []string, homeAccount string) (statement.Record, error) {
			// The optional trailing amount is an alternate/fee figure whose
			// role the statements never make clear; totals use only the first.
			amount, err := parseAmount(m[4])
			if err != nil {
				return statement.Record{}, err
			}

			sender, receiver := m[2], m[3]
			rec := statement.Record{
				Description: fmt.Sprintf("Transfer from %s to %s", sender, receiver),
				Debit:       decimal.Zero,
				Credit:      decimal.Zero,
				TxDate:      m[1],
				Sender:      sender,
				Receiver:    receiver,
			}

			// Direction is relative to the uploading account. A transfer
			// between two other accounts is kept for visibility but moves
			// nothing in the totals.
			switch homeAccount {
			case sender:
				rec.Debit = amount
			case receiver:
				rec.Credit = amount
			}

			return rec, nil
		},
	},
}
