package models

// DefaultBudgetTotal is used until the user saves a budget.
const DefaultBudgetTotal = 5000

// Budget is the user-editable spending limit in the reporting currency.
type Budget struct {
	Total      float64              `json:"total"`
	Categories map[Category]float64 `json:"categories"`
}

// DefaultBudget returns the budget used when none has been saved.
func DefaultBudget() Budget {
	return Budget{Total: DefaultBudgetTotal, Categories: map[Category]float64{}}
}

// ForCategory returns the budgeted amount for c, zero when unset.
func (b Budget) ForCategory(c Category) float64 {
	return b.Categories[c]
}

// Validate checks a decoded budget.
func (b *Budget) Validate() error {
	if !finite(b.Total) || b.Total < 0 {
		return malformed("budget", "", "total", "must be a non-negative number")
	}
	for c, v := range b.Categories {
		if !finite(v) || v < 0 {
			return malformed("budget", "", "categories."+c.String(), "must be a non-negative number")
		}
	}
	return nil
}
