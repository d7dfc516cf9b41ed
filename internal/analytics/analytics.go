// Package analytics derives spending reports from recorded expenses.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/mmynk/tripsplit/internal/budget"
	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
)

const (
	topCategoryCount       = 5
	highCategoryPercentage = 40.0
	dateLayout             = "2006-01-02"
)

// TimeRange selects which expenses a report covers.
type TimeRange string

const (
	RangeAll        TimeRange = "all"
	RangeWeek       TimeRange = "week"
	RangeMonth      TimeRange = "month"
	RangeLast7Days  TimeRange = "7days"
	RangeLast30Days TimeRange = "30days"
)

// ParseTimeRange accepts the range names above; empty means RangeAll.
func ParseTimeRange(s string) (TimeRange, error) {
	switch r := TimeRange(s); r {
	case "":
		return RangeAll, nil
	case RangeAll, RangeWeek, RangeMonth, RangeLast7Days, RangeLast30Days:
		return r, nil
	default:
		return "", fmt.Errorf("unknown time range %q", s)
	}
}

// Start returns the earliest date included in the range. The zero time is
// returned for RangeAll. Weeks start on Sunday.
func (r TimeRange) Start(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch r {
	case RangeWeek:
		return day.AddDate(0, 0, -int(day.Weekday()))
	case RangeMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case RangeLast7Days:
		return now.AddDate(0, 0, -7)
	case RangeLast30Days:
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}

// Filter keeps the expenses dated on or after the start of the range.
func Filter[E models.Spending](expenses []E, r TimeRange, now time.Time) []E {
	start := r.Start(now)
	if start.IsZero() {
		return expenses
	}
	var out []E
	for _, e := range expenses {
		if !e.SpentOn().Before(start) {
			out = append(out, e)
		}
	}
	return out
}

// CategoryShare is a category's part of the total spend.
type CategoryShare struct {
	Category   models.Category
	Amount     float64
	Percentage float64
}

// DailyPoint is one day of the spending trend.
type DailyPoint struct {
	Date       string // YYYY-MM-DD
	Amount     float64
	Cumulative float64
}

// InsightKind classifies an insight for display.
type InsightKind string

const (
	InsightWarning InsightKind = "warning"
	InsightInfo    InsightKind = "info"
)

// Insight is a short observation about the spending.
type Insight struct {
	Kind        InsightKind
	Title       string
	Description string
}

// Report summarises spending over a time range in one currency.
type Report struct {
	Range         TimeRange
	Currency      string
	Total         float64
	AverageDaily  float64
	Categories    []CategoryShare
	TopCategories []CategoryShare
	Trend         []DailyPoint
	BudgetUsed    float64
	Remaining     float64
	OverBudget    bool
	Insights      []Insight
}

// Build computes the report for expenses within r, normalizing every amount
// with n and comparing the total with budgetTotal.
func Build[E models.Spending](expenses []E, n currency.Normalizer, budgetTotal float64, r TimeRange, now time.Time) Report {
	filtered := Filter(expenses, r, now)
	breakdown := budget.AggregateByCategory(filtered, n)

	report := Report{
		Range:      r,
		Currency:   breakdown.Currency,
		Total:      breakdown.Total,
		BudgetUsed: budget.PercentUsed(breakdown.Total, budgetTotal),
		Remaining:  budgetTotal - breakdown.Total,
		OverBudget: breakdown.Total > budgetTotal,
	}
	report.AverageDaily = averageDaily(filtered, breakdown.Total, now)

	for _, c := range models.Categories() {
		amount, ok := breakdown.ByCategory[c]
		if !ok {
			continue
		}
		report.Categories = append(report.Categories, CategoryShare{
			Category:   c,
			Amount:     amount,
			Percentage: percentage(amount, breakdown.Total),
		})
	}

	top := append([]CategoryShare(nil), report.Categories...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Amount > top[j].Amount })
	if len(top) > topCategoryCount {
		top = top[:topCategoryCount]
	}
	report.TopCategories = top

	report.Trend = dailyTrend(filtered, n)
	report.Insights = insights(report, budgetTotal)
	return report
}

func averageDaily[E models.Spending](expenses []E, total float64, now time.Time) float64 {
	if len(expenses) == 0 {
		return 0
	}
	earliest := expenses[0].SpentOn()
	for _, e := range expenses[1:] {
		if e.SpentOn().Before(earliest) {
			earliest = e.SpentOn()
		}
	}
	days := math.Ceil(now.Sub(earliest).Hours() / 24)
	return total / math.Max(1, days)
}

func dailyTrend[E models.Spending](expenses []E, n currency.Normalizer) []DailyPoint {
	byDay := make(map[string]float64)
	for _, e := range expenses {
		byDay[e.SpentOn().Format(dateLayout)] += n.Normalize(e.SpentAmount(), e.SpentCurrency())
	}

	trend := make([]DailyPoint, 0, len(byDay))
	for day, amount := range byDay {
		trend = append(trend, DailyPoint{Date: day, Amount: amount})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })

	var cumulative float64
	for i := range trend {
		cumulative += trend[i].Amount
		trend[i].Cumulative = cumulative
	}
	return trend
}

func insights(r Report, budgetTotal float64) []Insight {
	var out []Insight
	if r.OverBudget {
		out = append(out, Insight{
			Kind:        InsightWarning,
			Title:       "Budget Exceeded",
			Description: fmt.Sprintf("You've exceeded your budget by %s", currency.FormatCode(r.Total-budgetTotal, r.Currency)),
		})
	}
	if len(r.TopCategories) > 0 && r.TopCategories[0].Percentage > highCategoryPercentage {
		top := r.TopCategories[0]
		out = append(out, Insight{
			Kind:        InsightInfo,
			Title:       "High Category Spending",
			Description: fmt.Sprintf("%s accounts for %.1f%% of your expenses", top.Category.DisplayName(), top.Percentage),
		})
	}
	if r.AverageDaily > 0 {
		out = append(out, Insight{
			Kind:        InsightInfo,
			Title:       "Daily Average",
			Description: fmt.Sprintf("You're spending an average of %s per day", currency.FormatCode(r.AverageDaily, r.Currency)),
		})
	}
	return out
}

func percentage(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total * 100
}
