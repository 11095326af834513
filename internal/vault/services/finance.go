package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pumpkin2800/zarqon/internal/common"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/models"
	"github.com/pumpkin2800/zarqon/internal/vault/storage"
)

// Totals aggregates the whole ledger.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// FinanceService manages the income and expense ledger.
type FinanceService struct {
	repo *storage.FinanceRepo
	log  logging.Logger
}

func NewFinanceService(repo *storage.FinanceRepo, log logging.Logger) *FinanceService {
	return &FinanceService{repo: repo, log: log}
}

// Add validates and stores a new entry. A zero date defaults to now.
func (s *FinanceService) Add(ctx context.Context, e models.FinanceEntry) (int64, error) {
	if e.Date.IsZero() {
		e.Date = time.Now().UTC()
	}
	if err := checkValid(e); err != nil {
		return 0, err
	}
	// decimal.Decimal carries no validator tag; guard the sign here.
	if e.Amount.IsNegative() {
		return 0, fmt.Errorf("%w: Amount failed on %q", common.ErrValidation, "gte")
	}
	id, err := s.repo.Add(ctx, e)
	if err != nil {
		return 0, err
	}
	s.log.Debug(ctx, "finance entry added", "id", id, "kind", e.Kind)
	return id, nil
}

// List returns every entry, newest first.
func (s *FinanceService) List(ctx context.Context) ([]models.FinanceEntry, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	models.SortFinanceEntries(entries)
	return entries, nil
}

// ListKind returns entries of one kind, newest first.
func (s *FinanceService) ListKind(ctx context.Context, kind models.EntryKind) ([]models.FinanceEntry, error) {
	entries, err := s.repo.Filter(ctx, func(e models.FinanceEntry) bool { return e.Kind == kind })
	if err != nil {
		return nil, err
	}
	models.SortFinanceEntries(entries)
	return entries, nil
}

// Totals sums the ledger with exact decimal arithmetic.
func (s *FinanceService) Totals(ctx context.Context) (Totals, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return Totals{}, err
	}

	var t Totals
	for _, e := range entries {
		switch e.Kind {
		case models.EntryIncome:
			t.Income = t.Income.Add(e.Amount)
		case models.EntryExpense:
			t.Expenses = t.Expenses.Add(e.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expenses)
	return t, nil
}

// ExpensesByCategory sums expenses per category.
func (s *FinanceService) ExpensesByCategory(ctx context.Context) (map[string]decimal.Decimal, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal)
	for _, e := range entries {
		if e.Kind != models.EntryExpense {
			continue
		}
		out[e.Category] = out[e.Category].Add(e.Amount)
	}
	return out, nil
}

func (s *FinanceService) Update(ctx context.Context, id int64, p models.FinancePatch) error {
	if p.Amount != nil && p.Amount.IsNegative() {
		return fmt.Errorf("%w: Amount failed on %q", common.ErrValidation, "gte")
	}
	return s.repo.Update(ctx, id, p)
}

func (s *FinanceService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
