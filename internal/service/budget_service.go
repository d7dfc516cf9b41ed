package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmynk/tripsplit/internal/analytics"
	"github.com/mmynk/tripsplit/internal/budget"
	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// DefaultReportingCurrency is the currency budgets and reports are kept in.
const DefaultReportingCurrency = "INR"

// BudgetService stores the travel budget and reports spending against it.
// All amounts are normalized to the reporting currency.
type BudgetService struct {
	budget    *storage.Repository[models.Budget]
	expenses  *storage.Repository[[]models.TravelExpense]
	rates     *Rates
	reporting string
	logger    *slog.Logger
	now       func() time.Time
}

// NewBudgetService creates a BudgetService. An empty reporting currency
// means DefaultReportingCurrency.
func NewBudgetService(repos *storage.Repositories, rates *Rates, reporting string, logger *slog.Logger) *BudgetService {
	reporting = strings.ToUpper(strings.TrimSpace(reporting))
	if reporting == "" {
		reporting = DefaultReportingCurrency
	}
	return &BudgetService{
		budget:    repos.Budget,
		expenses:  repos.TravelExpenses,
		rates:     rates,
		reporting: reporting,
		logger:    logger,
		now:       time.Now,
	}
}

// ReportingCurrency returns the currency budgets are expressed in.
func (s *BudgetService) ReportingCurrency() string {
	return s.reporting
}

// Get returns the saved budget, or the default budget if none was saved.
func (s *BudgetService) Get(ctx context.Context) (models.Budget, error) {
	return s.budget.LoadOr(ctx, models.DefaultBudget())
}

// Set replaces the budget.
func (s *BudgetService) Set(ctx context.Context, b models.Budget) error {
	if b.Categories == nil {
		b.Categories = map[models.Category]float64{}
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	if err := s.budget.Save(ctx, b); err != nil {
		return err
	}
	s.logger.Info("Budget updated", "total", b.Total, "categories", len(b.Categories))
	return nil
}

// Summary reports personal spending against the budget.
func (s *BudgetService) Summary(ctx context.Context) (*budget.Summary, error) {
	b, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	n, err := s.normalizer(ctx)
	if err != nil {
		return nil, err
	}

	summary := budget.Summarize(budget.AggregateByCategory(expenses, n), b)
	if summary.OverBudget {
		s.logger.Debug("Spending exceeds budget", "spent", summary.Spent, "budget", summary.Budget)
	}
	return &summary, nil
}

// Analytics builds the spending report for a time range.
func (s *BudgetService) Analytics(ctx context.Context, r analytics.TimeRange) (*analytics.Report, error) {
	b, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	n, err := s.normalizer(ctx)
	if err != nil {
		return nil, err
	}

	report := analytics.Build(expenses, n, b.Total, r, s.now())
	return &report, nil
}

func (s *BudgetService) normalizer(ctx context.Context) (currency.Normalizer, error) {
	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}
	return currency.NewReporting(table, s.reporting), nil
}
