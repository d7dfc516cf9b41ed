package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mmynk/tripsplit/internal/analytics"
	"github.com/mmynk/tripsplit/internal/budget"
	"github.com/mmynk/tripsplit/internal/models"
)

func setupBudgetService(t *testing.T, onMiss func(string)) (*BudgetService, *ExpenseService) {
	t.Helper()
	repos, _ := setupRepos(t)
	rates := NewRates(testCurrencies(), discardLogger(), onMiss)
	budgets := NewBudgetService(repos, rates, "", discardLogger())
	budgets.now = fixedClock()
	expenses := NewExpenseService(repos, discardLogger())
	expenses.now = fixedClock()
	return budgets, expenses
}

func addTravelExpense(t *testing.T, svc *ExpenseService, category string, amount float64, code string) {
	t.Helper()
	_, err := svc.Add(context.Background(), AddTravelExpenseParams{
		Category:    mustCategory(t, category),
		Subcategory: "misc",
		Amount:      amount,
		Currency:    code,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
}

func TestBudgetDefault(t *testing.T) {
	budgets, _ := setupBudgetService(t, nil)

	b, err := budgets.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if b.Total != models.DefaultBudgetTotal {
		t.Errorf("Expected default total %v, got %v", models.DefaultBudgetTotal, b.Total)
	}
	if budgets.ReportingCurrency() != DefaultReportingCurrency {
		t.Errorf("Expected reporting currency %s, got %s", DefaultReportingCurrency, budgets.ReportingCurrency())
	}
}

func TestBudgetSummaryNormalizes(t *testing.T) {
	budgets, expenses := setupBudgetService(t, nil)
	ctx := context.Background()

	addTravelExpense(t, expenses, "food", 8000, "INR")
	addTravelExpense(t, expenses, "travel", 10, "USD")

	summary, err := budgets.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.Currency != "INR" {
		t.Errorf("Expected INR, got %s", summary.Currency)
	}
	if math.Abs(summary.Spent-8800) > 1e-9 {
		t.Errorf("Expected 8800 spent, got %v", summary.Spent)
	}
	if !summary.OverBudget || math.Abs(summary.PercentUsed-176) > 1e-9 {
		t.Errorf("Expected 176%% over budget, got %v (over=%v)", summary.PercentUsed, summary.OverBudget)
	}
}

func TestBudgetZeroTotalClamps(t *testing.T) {
	budgets, expenses := setupBudgetService(t, nil)
	ctx := context.Background()

	if err := budgets.Set(ctx, models.Budget{Total: 0}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	summary, err := budgets.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if summary.PercentUsed != 0 {
		t.Errorf("Expected 0%% with nothing spent, got %v", summary.PercentUsed)
	}

	addTravelExpense(t, expenses, "shopping", 5, "INR")
	summary, _ = budgets.Summary(ctx)
	if summary.PercentUsed != budget.OverBudgetPercent || !summary.OverBudget {
		t.Errorf("Expected clamped %v%%, got %v", budget.OverBudgetPercent, summary.PercentUsed)
	}
}

func TestBudgetSetRejectsNegative(t *testing.T) {
	budgets, _ := setupBudgetService(t, nil)

	err := budgets.Set(context.Background(), models.Budget{Total: -1})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

func TestBudgetMissingRateIsIdentity(t *testing.T) {
	var missed []string
	budgets, expenses := setupBudgetService(t, func(code string) { missed = append(missed, code) })

	addTravelExpense(t, expenses, "food", 100, "INR")
	addTravelExpense(t, expenses, "food", 25, "XYZ")

	summary, err := budgets.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	// XYZ has no rate, so 25 is counted as-is rather than scaled by the INR rate
	if math.Abs(summary.Spent-125) > 1e-9 {
		t.Errorf("Expected 125 spent, got %v", summary.Spent)
	}
	if len(missed) == 0 || missed[0] != "XYZ" {
		t.Errorf("Expected miss for XYZ, got %v", missed)
	}
}

func TestBudgetAnalytics(t *testing.T) {
	budgets, expenses := setupBudgetService(t, nil)

	addTravelExpense(t, expenses, "food", 800, "INR")
	addTravelExpense(t, expenses, "accommodation", 20, "USD")

	report, err := budgets.Analytics(context.Background(), analytics.RangeMonth)
	if err != nil {
		t.Fatalf("Analytics failed: %v", err)
	}
	if math.Abs(report.Total-2400) > 1e-9 {
		t.Errorf("Expected total 2400, got %v", report.Total)
	}
	if len(report.TopCategories) != 2 || report.TopCategories[0].Category != mustCategory(t, "accommodation") {
		t.Errorf("Expected accommodation on top, got %+v", report.TopCategories)
	}
}
