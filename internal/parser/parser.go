package parser

import (
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

// Wallet identifies the statement format of a mobile wallet provider.
type Wallet string

const (
	WalletGCash Wallet = "gcash"
)

// Parser turns already-extracted statement text into a transaction summary.
type Parser interface {
	Parse(text, homeAccount string) (*statement.Summary, error)
}
