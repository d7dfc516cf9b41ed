package calculator

import "sort"

// settleEpsilon ignores floating point noise below one cent.
const settleEpsilon = 0.01

// Transfer is a suggested payment from a debtor to a creditor.
type Transfer struct {
	FromID   string // Member who owes
	FromName string
	ToID     string // Member who is owed
	ToName   string
	Amount   float64
}

// SuggestTransfers matches debtors with creditors to settle all balances.
//
// Greedy algorithm: sort debtors and creditors by amount, largest first, and
// repeatedly settle the minimum of the current pair. Ties keep member order
// so the result is deterministic.
func SuggestTransfers(balances []MemberBalance) []Transfer {
	type party struct {
		id, name string
		amount   float64
	}

	var debtors, creditors []party
	for _, b := range balances {
		switch {
		case b.Balance > settleEpsilon:
			creditors = append(creditors, party{b.MemberID, b.MemberName, b.Balance})
		case b.Balance < -settleEpsilon:
			debtors = append(debtors, party{b.MemberID, b.MemberName, -b.Balance})
		}
	}
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })
	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		amount := debtor.amount
		if creditor.amount < amount {
			amount = creditor.amount
		}

		if amount > settleEpsilon {
			transfers = append(transfers, Transfer{
				FromID:   debtor.id,
				FromName: debtor.name,
				ToID:     creditor.id,
				ToName:   creditor.name,
				Amount:   amount,
			})
		}

		debtor.amount -= amount
		creditor.amount -= amount

		if debtor.amount < settleEpsilon {
			i++
		}
		if creditor.amount < settleEpsilon {
			j++
		}
	}

	return transfers
}
