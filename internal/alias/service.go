package alias

import (
	"context"
)

type Repository interface {
	FindAlias(ctx context.Context, counterparty string) (string, error)
	UpsertAlias(ctx context.Context, counterparty, displayName string) error
	ListAliases(ctx context.Context) (map[string]string, error)
}

// Service keeps a book of display names for counterparties. Statement text
// identifies transfer parties only by wallet number, so users can teach the
// exporter friendlier names.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Resolve returns the display name for a counterparty, or the counterparty
// itself when no alias is known.
func (s *Service) Resolve(ctx context.Context, counterparty string) (string, error) {
	name, err := s.repo.FindAlias(ctx, counterparty)
	if err != nil {
		return "", err
	}

	if name == "" {
		return counterparty, nil
	}

	return name, nil
}

// Learn remembers a display name for a counterparty, replacing any earlier one.
func (s *Service) Learn(ctx context.Context, counterparty, displayName string) error {
	return s.repo.UpsertAlias(ctx, counterparty, displayName)
}

// All returns the full alias book keyed by counterparty.
func (s *Service) All(ctx context.Context) (map[string]string, error) {
	return s.repo.ListAliases(ctx)
}
