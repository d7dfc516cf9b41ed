package calculator

import "github.com/mmynk/tripsplit/internal/models"

// EffectiveSplit returns the member IDs that share an expense.
// An empty split list means every current member of the trip.
func EffectiveSplit(trip *models.Trip, expense *models.GroupExpense) []string {
	if len(expense.SplitAmong) == 0 {
		return trip.MemberIDs()
	}
	return expense.SplitAmong
}

// EqualShare divides amount equally among n people. It returns zero when
// n is not positive.
func EqualShare(amount float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return amount / float64(n)
}
