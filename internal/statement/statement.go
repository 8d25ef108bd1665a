package statement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a single classified transaction recovered from statement text.
// Exactly one of Debit/Credit is non-zero for every transaction type except
// peer transfers, where a transfer between two third-party accounts carries
// zero on both sides but is still kept for auditability.
//
// A Record is immutable once produced by the parser; it is only aggregated.
type Record struct {
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	RefNo       string          `json:"reference_no,omitempty"`
	TxDate      string          `json:"tx_date,omitempty"`
	Sender      string          `json:"sender,omitempty"`
	Receiver    string          `json:"receiver,omitempty"`
}

// Group is the aggregation bucket for one grouping key. The key is the
// transaction-type + counterparty string, e.g. "Payment to Jane Doe" or the
// fixed label "GCredit".
type Group struct {
	Key         string          `json:"key"`
	Count       int             `json:"count"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
}

// Warning reports a line that matched a rule but carried a malformed amount.
// The line is treated as unmatched; processing of the document continues.
type Warning struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

// Summary is the full result of parsing one statement. Transactions preserve
// source order; Groups carry no meaningful order (consumers re-sort, usually
// by count descending).
type Summary struct {
	Transactions []Record          `json:"transactions"`
	TotalDebit   decimal.Decimal   `json:"total_debit"`
	TotalCredit  decimal.Decimal   `json:"total_credit"`
	Groups       map[string]*Group `json:"groups"`
	Warnings     []Warning         `json:"warnings,omitempty"`
}

// NewSummary returns an empty summary with zero totals and an empty group map,
// which is also the valid result for input containing no transactions.
func NewSummary() *Summary {
	return &Summary{
		Transactions: []Record{},
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		Groups:       make(map[string]*Group),
	}
}

// Statement is a persisted statement upload: one parser invocation whose
// records were saved for later browsing and export.
type Statement struct {
	ID          uuid.UUID
	HomeAccount string
	FileName    string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	RecordCount int
	CreatedAt   time.Time
	DeletedAt   *time.Time
}
