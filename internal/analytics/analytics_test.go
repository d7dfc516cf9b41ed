package analytics

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
)

// Wednesday
var now = time.Date(2026, time.October, 14, 12, 0, 0, 0, time.UTC)

func spend(c models.Category, amount float64, daysAgo int) models.TravelExpense {
	return models.TravelExpense{
		ID:       "x",
		Category: c,
		Amount:   amount,
		Currency: "INR",
		Date:     now.AddDate(0, 0, -daysAgo),
	}
}

func TestTimeRangeStart(t *testing.T) {
	tests := []struct {
		r    TimeRange
		want time.Time
	}{
		{RangeAll, time.Time{}},
		{RangeWeek, time.Date(2026, time.October, 11, 0, 0, 0, 0, time.UTC)},
		{RangeMonth, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{RangeLast7Days, now.AddDate(0, 0, -7)},
		{RangeLast30Days, now.AddDate(0, 0, -30)},
	}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := tt.r.Start(now); !got.Equal(tt.want) {
				t.Errorf("Start() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	if r, err := ParseTimeRange(""); err != nil || r != RangeAll {
		t.Errorf("ParseTimeRange(\"\") = %v, %v", r, err)
	}
	if _, err := ParseTimeRange("year"); err == nil {
		t.Error("expected error for unknown range")
	}
}

func TestFilter(t *testing.T) {
	expenses := []models.TravelExpense{
		spend(models.CategoryFood, 10, 1),
		spend(models.CategoryFood, 10, 10),
		spend(models.CategoryFood, 10, 40),
	}
	if got := len(Filter(expenses, RangeLast7Days, now)); got != 1 {
		t.Errorf("7days: got %d, want 1", got)
	}
	if got := len(Filter(expenses, RangeLast30Days, now)); got != 2 {
		t.Errorf("30days: got %d, want 2", got)
	}
	if got := len(Filter(expenses, RangeAll, now)); got != 3 {
		t.Errorf("all: got %d, want 3", got)
	}
}

func TestBuild(t *testing.T) {
	expenses := []models.TravelExpense{
		spend(models.CategoryFood, 300, 3),
		spend(models.CategoryFood, 100, 1),
		spend(models.CategoryTravel, 100, 1),
	}

	report := Build(expenses, currency.Identity("INR"), 400, RangeAll, now)

	if report.Total != 500 {
		t.Errorf("Total = %v, want 500", report.Total)
	}
	if !report.OverBudget || report.Remaining != -100 {
		t.Errorf("OverBudget = %v, Remaining = %v", report.OverBudget, report.Remaining)
	}
	// earliest expense is 3 days ago
	if math.Abs(report.AverageDaily-500.0/3) > 1e-9 {
		t.Errorf("AverageDaily = %v, want %v", report.AverageDaily, 500.0/3)
	}
	if len(report.Trend) != 2 {
		t.Fatalf("Trend has %d points, want 2", len(report.Trend))
	}
	if report.Trend[0].Amount != 300 || report.Trend[1].Cumulative != 500 {
		t.Errorf("unexpected trend %+v", report.Trend)
	}
	if report.TopCategories[0].Category != models.CategoryFood || report.TopCategories[0].Percentage != 80 {
		t.Errorf("top category = %+v", report.TopCategories[0])
	}

	var titles []string
	for _, in := range report.Insights {
		titles = append(titles, in.Title)
	}
	joined := strings.Join(titles, ",")
	for _, want := range []string{"Budget Exceeded", "High Category Spending", "Daily Average"} {
		if !strings.Contains(joined, want) {
			t.Errorf("missing insight %q in %v", want, titles)
		}
	}
}

func TestBuild_EmptyIsFinite(t *testing.T) {
	report := Build([]models.TravelExpense(nil), currency.Identity("INR"), 0, RangeAll, now)
	if report.Total != 0 || report.AverageDaily != 0 || report.BudgetUsed != 0 {
		t.Errorf("unexpected report for no expenses: %+v", report)
	}
	if len(report.Insights) != 0 {
		t.Errorf("expected no insights, got %+v", report.Insights)
	}
}

func TestBuild_TopCategoriesCapped(t *testing.T) {
	var expenses []models.TravelExpense
	for i, c := range models.Categories() {
		expenses = append(expenses, spend(c, float64(i+1), 0))
	}
	report := Build(expenses, currency.Identity("INR"), 1000, RangeAll, now)
	if len(report.TopCategories) != 5 {
		t.Fatalf("got %d top categories, want 5", len(report.TopCategories))
	}
	if report.TopCategories[0].Category != models.CategoryLocalVehicles {
		t.Errorf("largest category = %v, want local-vehicles", report.TopCategories[0].Category)
	}
}
