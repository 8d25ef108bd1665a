package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/jcarlounavas/gcashtrack/internal/alias"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

var csvHeader = []string{
	"date", "description", "debit", "credit", "reference_no", "sender", "receiver",
}

// Service renders a stored statement as CSV, substituting known counterparty
// aliases for raw wallet numbers.
type Service struct {
	statements *statement.Service
	aliases    *alias.Service
}

func NewService(statements *statement.Service, aliases *alias.Service) *Service {
	return &Service{
		statements: statements,
		aliases:    aliases,
	}
}

// WriteCSV streams the records of one statement to w.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer, id uuid.UUID) error {
	records, err := s.statements.Records(ctx, id)
	if err != nil {
		return fmt.Errorf("listing records: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, rec := range records {
		row, err := s.row(ctx, rec)
		if err != nil {
			return err
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

func (s *Service) row(ctx context.Context, rec statement.Record) ([]string, error) {
	sender, err := s.resolve(ctx, rec.Sender)
	if err != nil {
		return nil, err
	}

	receiver, err := s.resolve(ctx, rec.Receiver)
	if err != nil {
		return nil, err
	}

	var debit, credit string
	if !rec.Debit.IsZero() {
		debit = rec.Debit.StringFixed(2)
	}

	if !rec.Credit.IsZero() {
		credit = rec.Credit.StringFixed(2)
	}

	return []string{
		rec.TxDate,
		rec.Description,
		debit,
		credit,
		rec.RefNo,
		sender,
		receiver,
	}, nil
}

func (s *Service) resolve(ctx context.Context, counterparty string) (string, error) {
	if counterparty == "" {
		return "", nil
	}

	name, err := s.aliases.Resolve(ctx, counterparty)
	if err != nil {
		return "", fmt.Errorf("resolving alias for %s: %w", counterparty, err)
	}

	return name, nil
}

// Filename builds a download name from the statement metadata, for example
// 20260115_gcash_jan.csv.
func Filename(st *statement.Statement) string {
	base := strings.TrimSuffix(st.FileName, ".pdf")
	base = strings.TrimSuffix(base, ".txt")

	safe := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, base)

	return fmt.Sprintf("%s_%s.csv", st.CreatedAt.Format("20060102"), safe)
}
