package storage_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/internal/storage/memory"
)

func TestRepository_LoadMissing(t *testing.T) {
	repos := storage.NewRepositories(memory.New())

	_, ok, err := repos.Trips.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Error("expected ok = false for missing key")
	}

	budget, err := repos.Budget.LoadOr(context.Background(), models.DefaultBudget())
	if err != nil {
		t.Fatalf("LoadOr failed: %v", err)
	}
	if budget.Total != models.DefaultBudgetTotal {
		t.Errorf("Total = %v, want default", budget.Total)
	}
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repos := storage.NewRepositories(memory.New())

	expenses := []models.TravelExpense{{
		ID:          "e1",
		Category:    models.CategoryAccommodation,
		Subcategory: "Hostel",
		Amount:      1200,
		Currency:    "INR",
		Date:        time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}}
	if err := repos.TravelExpenses.Save(ctx, expenses); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, ok, err := repos.TravelExpenses.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load = ok %v, err %v", ok, err)
	}
	if loaded[0].Category != models.CategoryAccommodation || loaded[0].Amount != 1200 {
		t.Errorf("unexpected expense %+v", loaded[0])
	}
}

func TestRepository_Malformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"not json", storage.KeyGroupTrips, `{{{`},
		{"wrong shape", storage.KeyGroupTrips, `{"id":"t1"}`},
		{"missing member list", storage.KeyGroupTrips, `[{"id":"t1","name":"Goa","shareCode":"ABC123","members":[]}]`},
		{"unknown category", storage.KeyGroupExpenses, `[{"id":"e1","tripId":"t1","amount":5,"paidBy":"m1","category":"casino"}]`},
		{"negative amount", storage.KeyGroupExpenses, `[{"id":"e1","tripId":"t1","amount":-5,"paidBy":"m1","category":"food"}]`},
		{"negative budget", storage.KeyBudget, `{"total":-1,"categories":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := memory.New()
			if err := store.Save(ctx, tt.key, []byte(tt.raw)); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			repos := storage.NewRepositories(store)

			var err error
			switch tt.key {
			case storage.KeyGroupTrips:
				_, _, err = repos.Trips.Load(ctx)
			case storage.KeyGroupExpenses:
				_, _, err = repos.GroupExpenses.Load(ctx)
			case storage.KeyBudget:
				_, _, err = repos.Budget.Load(ctx)
			}
			if !errors.Is(err, models.ErrMalformedRecord) {
				t.Errorf("expected ErrMalformedRecord, got %v", err)
			}
		})
	}
}
