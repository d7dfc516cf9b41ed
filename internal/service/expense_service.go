package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
)

// ExpenseService manages personal travel expenses.
type ExpenseService struct {
	mu       sync.Mutex
	expenses *storage.Repository[[]models.TravelExpense]
	logger   *slog.Logger
	now      func() time.Time
}

// NewExpenseService creates an ExpenseService over the given repositories.
func NewExpenseService(repos *storage.Repositories, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{
		expenses: repos.TravelExpenses,
		logger:   logger,
		now:      time.Now,
	}
}

// AddTravelExpenseParams are the inputs for Add.
type AddTravelExpenseParams struct {
	Category    models.Category
	Subcategory string
	Amount      float64
	Currency    string
	Description string
	Date        time.Time
	Location    string
}

// Add records a personal expense. Category, subcategory and a positive
// amount are required.
func (s *ExpenseService) Add(ctx context.Context, p AddTravelExpenseParams) (*models.TravelExpense, error) {
	if !p.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category", ErrInvalidArgument)
	}
	subcategory := strings.TrimSpace(p.Subcategory)
	if subcategory == "" {
		return nil, fmt.Errorf("%w: subcategory is required", ErrInvalidArgument)
	}
	if !(p.Amount > 0) || math.IsInf(p.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidArgument)
	}
	code := strings.ToUpper(strings.TrimSpace(p.Currency))
	if code == "" {
		return nil, fmt.Errorf("%w: currency is required", ErrInvalidArgument)
	}
	date := p.Date
	if date.IsZero() {
		date = s.now()
	}

	expense := models.TravelExpense{
		ID:          uuid.New().String(),
		Category:    p.Category,
		Subcategory: subcategory,
		Amount:      p.Amount,
		Currency:    code,
		Description: strings.TrimSpace(p.Description),
		Date:        date,
		Location:    strings.TrimSpace(p.Location),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := s.expenses.Save(ctx, append(all, expense)); err != nil {
		return nil, err
	}

	s.logger.Info("Travel expense added", "expense_id", expense.ID, "category", expense.Category)
	return &expense, nil
}

// List returns personal expenses, newest first.
func (s *ExpenseService) List(ctx context.Context) ([]models.TravelExpense, error) {
	all, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return all, nil
}

// Delete removes a personal expense.
func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.expenses.LoadOr(ctx, nil)
	if err != nil {
		return err
	}
	n := len(all)
	all = slices.DeleteFunc(all, func(e models.TravelExpense) bool { return e.ID == id })
	if len(all) == n {
		return ErrExpenseNotFound
	}
	if err := s.expenses.Save(ctx, all); err != nil {
		return err
	}

	s.logger.Info("Travel expense deleted", "expense_id", id)
	return nil
}
