package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStatement(s scanner) (*statement.Statement, error) {
	var st statement.Statement

	if err := s.Scan(
		&st.ID, &st.HomeAccount, &st.FileName,
		&st.TotalDebit, &st.TotalCredit, &st.RecordCount,
		&st.CreatedAt, &st.DeletedAt,
	); err != nil {
		return nil, err
	}

	return &st, nil
}

const selectStatementColumns = `
	id, home_account, file_name, total_debit, total_credit, record_count, created_at, deleted_at
`

// CreateStatement inserts the statement and all of its records atomically.
// Record source order is preserved through the position column.
func (s *Store) CreateStatement(ctx context.Context, st *statement.Statement, records []statement.Record) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	stQuery := `
		INSERT INTO statements (home_account, file_name, total_debit, total_credit, record_count, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err = dbTx.QueryRowContext(ctx, stQuery,
		st.HomeAccount,
		st.FileName,
		st.TotalDebit,
		st.TotalCredit,
		st.RecordCount,
	).Scan(&st.ID, &st.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating statement: %w", err)
	}

	recQuery := `
		INSERT INTO statement_records (statement_id, position, description, debit, credit, reference_no, tx_date, sender, receiver)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for i, rec := range records {
		if _, err := dbTx.ExecContext(ctx, recQuery,
			st.ID,
			i,
			rec.Description,
			rec.Debit,
			rec.Credit,
			nullable(rec.RefNo),
			nullable(rec.TxDate),
			nullable(rec.Sender),
			nullable(rec.Receiver),
		); err != nil {
			return fmt.Errorf("creating record %d: %w", i, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing statement: %w", err)
	}

	return nil
}

func (s *Store) GetStatement(ctx context.Context, id uuid.UUID) (*statement.Statement, error) {
	query := `SELECT ` + selectStatementColumns + `
		FROM statements
		WHERE id = $1 AND deleted_at IS NULL`

	st, err := scanStatement(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, statement.ErrNotFound
		}

		return nil, fmt.Errorf("getting statement: %w", err)
	}

	return st, nil
}

func (s *Store) ListStatements(ctx context.Context) ([]*statement.Statement, error) {
	query := `SELECT ` + selectStatementColumns + `
		FROM statements
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing statements: %w", err)
	}
	defer rows.Close()

	var sts []*statement.Statement

	for rows.Next() {
		st, err := scanStatement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning statement: %w", err)
		}

		sts = append(sts, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating statements: %w", err)
	}

	return sts, nil
}

func (s *Store) DeleteStatement(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE statements
		SET deleted_at = NOW()
		WHERE id = $1
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting statement: %w", err)
	}

	return nil
}

func (s *Store) ListRecords(ctx context.Context, statementID uuid.UUID) ([]statement.Record, error) {
	query := `
		SELECT description, debit, credit, reference_no, tx_date, sender, receiver
		FROM statement_records
		WHERE statement_id = $1
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	var recs []statement.Record

	for rows.Next() {
		var rec statement.Record

		var refNo, txDate, sender, receiver sql.NullString

		if err := rows.Scan(&rec.Description, &rec.Debit, &rec.Credit, &refNo, &txDate, &sender, &receiver); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		rec.RefNo = refNo.String
		rec.TxDate = txDate.String
		rec.Sender = sender.String
		rec.Receiver = receiver.String

		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return recs, nil
}

// GroupSummaries derives the per-key aggregation from the stored records.
func (s *Store) GroupSummaries(ctx context.Context, statementID uuid.UUID) ([]statement.Group, error) {
	query := `
		SELECT description, COUNT(*), SUM(debit), SUM(credit)
		FROM statement_records
		WHERE statement_id = $1
		GROUP BY description
		ORDER BY COUNT(*) DESC, description ASC
	`

	rows, err := s.db.QueryContext(ctx, query, statementID)
	if err != nil {
		return nil, fmt.Errorf("grouping records: %w", err)
	}
	defer rows.Close()

	var groups []statement.Group

	for rows.Next() {
		var g statement.Group

		if err := rows.Scan(&g.Key, &g.Count, &g.TotalDebit, &g.TotalCredit); err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}

		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating groups: %w", err)
	}

	return groups, nil
}

// nullable maps an empty optional field to NULL so it can never be mistaken
// for real data.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
