package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindAlias(ctx context.Context, counterparty string) (string, error) {
	query := `
		SELECT display_name
		FROM counterparty_aliases
		WHERE counterparty = $1
	`

	var name string

	err := s.db.QueryRowContext(ctx, query, counterparty).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding alias: %w", err)
	}

	return name, nil
}

func (s *Store) UpsertAlias(ctx context.Context, counterparty, displayName string) error {
	query := `
		INSERT INTO counterparty_aliases (counterparty, display_name, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (counterparty)
		DO UPDATE SET display_name = EXCLUDED.display_name
	`

	_, err := s.db.ExecContext(ctx, query, counterparty, displayName)
	if err != nil {
		return fmt.Errorf("upserting alias: %w", err)
	}

	return nil
}

func (s *Store) ListAliases(ctx context.Context) (map[string]string, error) {
	query := `
		SELECT counterparty, display_name
		FROM counterparty_aliases
		ORDER BY counterparty
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing aliases: %w", err)
	}
	defer rows.Close()

	aliases := make(map[string]string)

	for rows.Next() {
		var counterparty, name string
		if err := rows.Scan(&counterparty, &name); err != nil {
			return nil, fmt.Errorf("scanning alias: %w", err)
		}

		aliases[counterparty] = name
	}

	return aliases, rows.Err()
}
