package models

import (
	"math"
	"time"
)

// Spending is implemented by every record that contributes to spend totals.
type Spending interface {
	SpentAmount() float64
	SpentCurrency() string
	SpentCategory() Category
	SpentOn() time.Time
}

// GroupExpense is a cost recorded against a trip.
type GroupExpense struct {
	ID          string  `json:"id"`
	TripID      string  `json:"tripId"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`

	// PaidBy is the ID of the member who paid.
	PaidBy string `json:"paidBy"`

	// SplitAmong lists the member IDs sharing the cost equally.
	// An empty list means every current member of the trip.
	SplitAmong []string `json:"splitAmong"`

	Category Category  `json:"category"`
	Date     time.Time `json:"date"`
	Receipt  string    `json:"receipt,omitempty"`
}

func (e GroupExpense) SpentAmount() float64    { return e.Amount }
func (e GroupExpense) SpentCurrency() string   { return e.Currency }
func (e GroupExpense) SpentCategory() Category { return e.Category }
func (e GroupExpense) SpentOn() time.Time      { return e.Date }

// Validate checks the structural invariants of a decoded group expense.
// Member references are not checked here; they are resolved against the
// trip at settlement time.
func (e *GroupExpense) Validate() error {
	if e.ID == "" {
		return malformed("group expense", "", "id", "must not be empty")
	}
	if e.TripID == "" {
		return malformed("group expense", e.ID, "tripId", "must not be empty")
	}
	if !finite(e.Amount) || e.Amount < 0 {
		return malformed("group expense", e.ID, "amount", "must be a non-negative number")
	}
	if e.PaidBy == "" {
		return malformed("group expense", e.ID, "paidBy", "must not be empty")
	}
	if !e.Category.Valid() {
		return malformed("group expense", e.ID, "category", "must be a known category")
	}
	return nil
}

// TravelExpense is a personal expense recorded outside any trip.
type TravelExpense struct {
	ID          string    `json:"id"`
	Category    Category  `json:"category"`
	Subcategory string    `json:"subcategory"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location,omitempty"`
}

func (e TravelExpense) SpentAmount() float64    { return e.Amount }
func (e TravelExpense) SpentCurrency() string   { return e.Currency }
func (e TravelExpense) SpentCategory() Category { return e.Category }
func (e TravelExpense) SpentOn() time.Time      { return e.Date }

// Validate checks the structural invariants of a decoded travel expense.
func (e *TravelExpense) Validate() error {
	if e.ID == "" {
		return malformed("travel expense", "", "id", "must not be empty")
	}
	if !e.Category.Valid() {
		return malformed("travel expense", e.ID, "category", "must be a known category")
	}
	if !finite(e.Amount) || e.Amount < 0 {
		return malformed("travel expense", e.ID, "amount", "must be a non-negative number")
	}
	if e.Currency == "" {
		return malformed("travel expense", e.ID, "currency", "must not be empty")
	}
	if e.Date.IsZero() {
		return malformed("travel expense", e.ID, "date", "must be set")
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
