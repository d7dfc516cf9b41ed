package calculator

import "github.com/mmynk/tripsplit/internal/models"

// MemberBalance represents the balance information for one trip member.
type MemberBalance struct {
	MemberID   string
	MemberName string
	TotalPaid  float64 // Total amount paid across all expenses
	TotalOwed  float64 // Sum of this member's shares
	Balance    float64 // Positive = owed money, Negative = owes money
}

// RefRole says where an unresolved member reference appeared.
type RefRole string

const (
	RolePayer RefRole = "payer"
	RoleSplit RefRole = "split"
)

// OrphanRef is a member reference on an expense that matches no current
// trip member. Such references are skipped during settlement.
type OrphanRef struct {
	ExpenseID string
	MemberID  string
	Role      RefRole
}

// ComputeBalances computes each member's net balance from the trip's expenses.
// Expenses must already be filtered to the trip.
//
// Algorithm:
// - Every member starts at zero paid and zero owed
// - For each expense: payer paid +amount, each member of the effective
//   split set owes amount / len(split set)
// - balance = total_paid - total_owed
//
// References to unknown members are skipped. The result follows the order
// of trip.Members.
func ComputeBalances(trip *models.Trip, expenses []models.GroupExpense) []MemberBalance {
	balances, _ := ComputeBalancesAudited(trip, expenses)
	return balances
}

// ComputeBalancesAudited is ComputeBalances that also reports every member
// reference it had to skip.
func ComputeBalancesAudited(trip *models.Trip, expenses []models.GroupExpense) ([]MemberBalance, []OrphanRef) {
	balances := make([]MemberBalance, len(trip.Members))
	index := make(map[string]int, len(trip.Members))
	for i, m := range trip.Members {
		balances[i] = MemberBalance{MemberID: m.ID, MemberName: m.Name}
		index[m.ID] = i
	}

	var orphans []OrphanRef
	for i := range expenses {
		expense := &expenses[i]

		if idx, ok := index[expense.PaidBy]; ok {
			balances[idx].TotalPaid += expense.Amount
		} else {
			orphans = append(orphans, OrphanRef{ExpenseID: expense.ID, MemberID: expense.PaidBy, Role: RolePayer})
		}

		split := EffectiveSplit(trip, expense)
		share := EqualShare(expense.Amount, len(split))
		for _, memberID := range split {
			idx, ok := index[memberID]
			if !ok {
				orphans = append(orphans, OrphanRef{ExpenseID: expense.ID, MemberID: memberID, Role: RoleSplit})
				continue
			}
			balances[idx].TotalOwed += share
		}
	}

	for i := range balances {
		balances[i].Balance = balances[i].TotalPaid - balances[i].TotalOwed
	}

	return balances, orphans
}

// TotalAmount sums the raw amounts of the given expenses.
func TotalAmount(expenses []models.GroupExpense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
