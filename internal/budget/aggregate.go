// Package budget aggregates spending by category and compares it with the
// user's budget.
package budget

import (
	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
)

// Breakdown is spending grouped by category in a single currency.
type Breakdown struct {
	Currency   string
	ByCategory map[models.Category]float64
	Total      float64
}

// AggregateByCategory sums normalized amounts per category. Total is the sum
// over all categories.
func AggregateByCategory[E models.Spending](expenses []E, n currency.Normalizer) Breakdown {
	b := Breakdown{
		Currency:   n.Currency(),
		ByCategory: make(map[models.Category]float64),
	}
	for _, e := range expenses {
		b.ByCategory[e.SpentCategory()] += n.Normalize(e.SpentAmount(), e.SpentCurrency())
	}
	for _, v := range b.ByCategory {
		b.Total += v
	}
	return b
}
