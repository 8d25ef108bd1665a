package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jcarlounavas/gcashtrack/internal/alias"
	"github.com/jcarlounavas/gcashtrack/internal/export"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

type fakeAliasRepo struct {
	aliases map[string]string
}

func (r *fakeAliasRepo) FindAlias(_ context.Context, counterparty string) (string, error) {
	return r.aliases[counterparty], nil
}

func (r *fakeAliasRepo) UpsertAlias(_ context.Context, counterparty, displayName string) error {
	r.aliases[counterparty] = displayName
	return nil
}

func (r *fakeAliasRepo) ListAliases(_ context.Context) (map[string]string, error) {
	return r.aliases, nil
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	require.NoError(t, err)

	return d
}

func TestService_WriteCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := statement.NewMockRepository(ctrl)

	id := uuid.New()
	records := []statement.Record{
		{
			Description: "Payment to Meralco",
			Debit:       dec(t, "1500.00"),
			RefNo:       "9001001",
			TxDate:      "2026-01-15",
			Receiver:    "Meralco",
		},
		{
			Description: "Transfer from 0912345670 to 0998765432",
			Debit:       dec(t, "250.00"),
			Sender:      "0912345670",
			Receiver:    "0998765432",
		},
		{
			Description: "Refund from Lazada",
			Credit:      dec(t, "430.00"),
			RefNo:       "9001002",
			Sender:      "Lazada",
		},
	}

	repo.EXPECT().ListRecords(gomock.Any(), id).Return(records, nil)

	aliases := alias.NewService(&fakeAliasRepo{aliases: map[string]string{
		"0998765432": "Maria",
	}})

	svc := export.NewService(statement.NewService(repo), aliases)

	var buf bytes.Buffer
	require.NoError(t, svc.WriteCSV(context.Background(), &buf, id))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{
		"date", "description", "debit", "credit", "reference_no", "sender", "receiver",
	}, rows[0])
	assert.Equal(t, []string{
		"2026-01-15", "Payment to Meralco", "1500.00", "", "9001001", "", "Meralco",
	}, rows[1])

	// The receiver with a known alias renders as its display name; the sender
	// without one stays a raw wallet number.
	assert.Equal(t, []string{
		"", "Transfer from 0912345670 to 0998765432", "250.00", "", "", "0912345670", "Maria",
	}, rows[2])
	assert.Equal(t, []string{
		"", "Refund from Lazada", "", "430.00", "9001002", "Lazada", "",
	}, rows[3])
}

func TestFilename(t *testing.T) {
	st := &statement.Statement{
		FileName:  "GCash Statement (Jan 2026).pdf",
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "20260115_GCash_Statement__Jan_2026_.csv", export.Filename(st))
}
