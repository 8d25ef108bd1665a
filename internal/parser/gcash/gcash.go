// Package gcash recovers discrete transactions from the free-form text of a
// GCash transaction statement. The extracted text has no reliable column
// structure, so classification is keyword-driven: lines are re-segmented
// around transaction-type anchors and matched against an ordered rule set.
package gcash

import (
	"errors"
	"strings"

	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

// Parser is the statement engine facade. It is stateless and safe for
// concurrent use; each Parse call works only on its own input.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse classifies every logical line of the statement text and aggregates
// the matches. homeAccount is the wallet number the statement belongs to;
// peer-transfer direction is resolved against it.
//
// A document with no recognizable transactions is not an error: the result is
// an empty summary with zero totals. A matched line whose amount does not
// parse is downgraded to unmatched and reported in the summary's warnings.
func (p *Parser) Parse(text, homeAccount string) (*statement.Summary, error) {
	if strings.TrimSpace(text) == "" {
		return statement.NewSummary(), nil
	}

	agg := statement.NewAggregator()

	for _, line := range logicalLines(text) {
		for _, r := range rules {
			rec, err := r.match(line, homeAccount)
			if err != nil {
				if errors.Is(err, ErrInvalidAmount) {
					agg.Warn(line, r.name+": invalid amount")
					continue
				}

				return nil, err
			}

			if rec != nil {
				agg.Add(*rec)
				break
			}
		}
	}

	return agg.Summary(), nil
}
