package calculator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mmynk/tripsplit/internal/models"
)

func newTrip(names ...string) *models.Trip {
	trip := &models.Trip{ID: "trip-1", Name: "Test Trip"}
	for _, name := range names {
		trip.Members = append(trip.Members, models.Member{ID: name, Name: name})
	}
	return trip
}

func expense(id string, amount float64, paidBy string, splitAmong ...string) models.GroupExpense {
	return models.GroupExpense{
		ID:         id,
		TripID:     "trip-1",
		Amount:     amount,
		PaidBy:     paidBy,
		SplitAmong: splitAmong,
		Category:   models.CategoryFood,
	}
}

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		trip         *models.Trip
		expenses     []models.GroupExpense
		validateFunc func(t *testing.T, balances []MemberBalance)
	}{
		{
			name:     "two members, one expense split equally",
			trip:     newTrip("Alice", "Bob"),
			expenses: []models.GroupExpense{expense("e1", 100, "Alice", "Alice", "Bob")},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				// Alice paid 100, owes 50 => +50
				// Bob paid 0, owes 50 => -50
				if math.Abs(balances[0].Balance-50.0) > 0.01 {
					t.Errorf("Alice balance = %v, want 50.0", balances[0].Balance)
				}
				if math.Abs(balances[1].Balance+50.0) > 0.01 {
					t.Errorf("Bob balance = %v, want -50.0", balances[1].Balance)
				}
				if math.Abs(balances[0].TotalPaid-100.0) > 0.01 {
					t.Errorf("Alice paid = %v, want 100.0", balances[0].TotalPaid)
				}
			},
		},
		{
			name:     "no expenses leaves everyone at zero",
			trip:     newTrip("Alice", "Bob", "Charlie"),
			expenses: nil,
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				if len(balances) != 3 {
					t.Fatalf("got %d balances, want 3", len(balances))
				}
				for _, b := range balances {
					if b.Balance != 0 || b.TotalPaid != 0 || b.TotalOwed != 0 {
						t.Errorf("%s: expected zero balance, got %+v", b.MemberName, b)
					}
				}
			},
		},
		{
			name: "subset split excludes the payer",
			trip: newTrip("Alice", "Bob", "Charlie"),
			expenses: []models.GroupExpense{
				expense("e1", 90, "Alice", "Bob", "Charlie"),
			},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				want := []float64{90, -45, -45}
				for i, w := range want {
					if math.Abs(balances[i].Balance-w) > 0.01 {
						t.Errorf("%s balance = %v, want %v", balances[i].MemberName, balances[i].Balance, w)
					}
				}
			},
		},
		{
			name: "orphaned payer and split references are skipped",
			trip: newTrip("Alice", "Bob"),
			expenses: []models.GroupExpense{
				expense("e1", 60, "Zed", "Alice", "Bob"),
				expense("e2", 30, "Alice", "Alice", "Ghost", "Bob"),
			},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				// e1: nobody credited, Alice and Bob owe 30 each
				// e2: Alice credited 30, Alice and Bob owe 10 each (Ghost's 10 dropped)
				if math.Abs(balances[0].Balance-(30-40)) > 0.01 {
					t.Errorf("Alice balance = %v, want -10", balances[0].Balance)
				}
				if math.Abs(balances[1].Balance-(-40)) > 0.01 {
					t.Errorf("Bob balance = %v, want -40", balances[1].Balance)
				}
			},
		},
		{
			name: "output follows member order, not balance",
			trip: newTrip("Charlie", "Alice", "Bob"),
			expenses: []models.GroupExpense{
				expense("e1", 300, "Bob"),
			},
			validateFunc: func(t *testing.T, balances []MemberBalance) {
				order := []string{"Charlie", "Alice", "Bob"}
				for i, name := range order {
					if balances[i].MemberName != name {
						t.Errorf("balances[%d] = %s, want %s", i, balances[i].MemberName, name)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances := ComputeBalances(tt.trip, tt.expenses)
			tt.validateFunc(t, balances)
		})
	}
}

func TestComputeBalances_EmptySplitMeansEveryone(t *testing.T) {
	trip := newTrip("Alice", "Bob", "Charlie")

	implicit := ComputeBalances(trip, []models.GroupExpense{expense("e1", 100, "Bob")})
	explicit := ComputeBalances(trip, []models.GroupExpense{expense("e1", 100, "Bob", "Alice", "Bob", "Charlie")})

	for i := range implicit {
		if math.Abs(implicit[i].Balance-explicit[i].Balance) > 1e-9 {
			t.Errorf("%s: implicit %v != explicit %v", implicit[i].MemberName, implicit[i].Balance, explicit[i].Balance)
		}
	}
}

func TestComputeBalances_SumIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	names := []string{"A", "B", "C", "D", "E", "F", "G"}

	for round := 0; round < 50; round++ {
		n := 2 + rng.Intn(len(names)-1)
		trip := newTrip(names[:n]...)

		var expenses []models.GroupExpense
		for i := 0; i < 1+rng.Intn(40); i++ {
			var split []string
			for _, id := range trip.MemberIDs() {
				if rng.Intn(2) == 0 {
					split = append(split, id)
				}
			}
			payer := trip.Members[rng.Intn(n)].ID
			expenses = append(expenses, expense("e", math.Round(rng.Float64()*10000)/100, payer, split...))
		}

		var sum float64
		for _, b := range ComputeBalances(trip, expenses) {
			sum += b.Balance
		}
		if math.Abs(sum) > 1e-6 {
			t.Fatalf("round %d: sum of balances = %v, want 0", round, sum)
		}
	}
}

func TestComputeBalancesAudited(t *testing.T) {
	trip := newTrip("Alice", "Bob")
	expenses := []models.GroupExpense{
		expense("e1", 10, "Zed", "Alice"),
		expense("e2", 10, "Alice", "Ghost"),
	}

	_, orphans := ComputeBalancesAudited(trip, expenses)
	if len(orphans) != 2 {
		t.Fatalf("got %d orphans, want 2", len(orphans))
	}
	if orphans[0] != (OrphanRef{ExpenseID: "e1", MemberID: "Zed", Role: RolePayer}) {
		t.Errorf("orphans[0] = %+v", orphans[0])
	}
	if orphans[1] != (OrphanRef{ExpenseID: "e2", MemberID: "Ghost", Role: RoleSplit}) {
		t.Errorf("orphans[1] = %+v", orphans[1])
	}
}

func TestTotalAmount(t *testing.T) {
	got := TotalAmount([]models.GroupExpense{expense("e1", 12.5, "A"), expense("e2", 7.5, "A")})
	if got != 20 {
		t.Errorf("TotalAmount = %v, want 20", got)
	}
}
