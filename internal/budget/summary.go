package budget

import (
	"math"

	"github.com/mmynk/tripsplit/internal/models"
)

// OverBudgetPercent is reported when something was spent against a budget
// of zero.
const OverBudgetPercent = 100.0

// Summary compares a Breakdown with a Budget.
type Summary struct {
	Currency    string
	Spent       float64
	Budget      float64
	Remaining   float64 // negative when over budget
	PercentUsed float64 // always finite
	OverBudget  bool
	Categories  []CategoryStatus
}

// CategoryStatus is the spending against one category's budget.
type CategoryStatus struct {
	Category    models.Category
	Spent       float64
	Budgeted    float64
	Remaining   float64 // never negative
	PercentUsed float64
}

// PercentUsed returns spent / total * 100. A non-positive total never yields
// NaN or Inf: it is 0 when nothing was spent and OverBudgetPercent otherwise.
func PercentUsed(spent, total float64) float64 {
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		if spent > 0 {
			return OverBudgetPercent
		}
		return 0
	}
	return spent / total * 100
}

// Summarize reports spending against the budget, with a status for every
// enumerated category.
func Summarize(b Breakdown, budget models.Budget) Summary {
	s := Summary{
		Currency:    b.Currency,
		Spent:       b.Total,
		Budget:      budget.Total,
		Remaining:   budget.Total - b.Total,
		PercentUsed: PercentUsed(b.Total, budget.Total),
		OverBudget:  b.Total > budget.Total,
	}
	for _, c := range models.Categories() {
		spent := b.ByCategory[c]
		budgeted := budget.ForCategory(c)
		s.Categories = append(s.Categories, CategoryStatus{
			Category:    c,
			Spent:       spent,
			Budgeted:    budgeted,
			Remaining:   math.Max(0, budgeted-spent),
			PercentUsed: PercentUsed(spent, budgeted),
		})
	}
	return s
}
