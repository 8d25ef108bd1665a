package statement

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("statement not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=statement
type Repository interface {
	CreateStatement(ctx context.Context, st *Statement, records []Record) error
	GetStatement(ctx context.Context, id uuid.UUID) (*Statement, error)
	ListStatements(ctx context.Context) ([]*Statement, error)
	DeleteStatement(ctx context.Context, id uuid.UUID) error

	ListRecords(ctx context.Context, statementID uuid.UUID) ([]Record, error)
	GroupSummaries(ctx context.Context, statementID uuid.UUID) ([]Group, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save persists a parsed summary as a statement plus its records. Records are
// stored in source order; group summaries are derived on read.
func (s *Service) Save(ctx context.Context, homeAccount, fileName string, sum *Summary) (*Statement, error) {
	st := &Statement{
		HomeAccount: homeAccount,
		FileName:    fileName,
		TotalDebit:  sum.TotalDebit,
		TotalCredit: sum.TotalCredit,
		RecordCount: len(sum.Transactions),
	}

	if err := s.repo.CreateStatement(ctx, st, sum.Transactions); err != nil {
		return nil, fmt.Errorf("create statement: %w", err)
	}

	return st, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Statement, error) {
	return s.repo.GetStatement(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Statement, error) {
	return s.repo.ListStatements(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteStatement(ctx, id)
}

// Records returns a statement's transactions in their original source order.
func (s *Service) Records(ctx context.Context, id uuid.UUID) ([]Record, error) {
	return s.repo.ListRecords(ctx, id)
}

// Groups returns a statement's per-key summaries, most frequent first.
func (s *Service) Groups(ctx context.Context, id uuid.UUID) ([]Group, error) {
	groups, err := s.repo.GroupSummaries(ctx, id)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}

		return groups[i].Key < groups[j].Key
	})

	return groups, nil
}
