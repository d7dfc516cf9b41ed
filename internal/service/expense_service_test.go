package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTravelExpenses(t *testing.T) {
	repos, _ := setupRepos(t)
	svc := NewExpenseService(repos, discardLogger())
	ctx := context.Background()

	older, err := svc.Add(ctx, AddTravelExpenseParams{
		Category: mustCategory(t, "food"), Subcategory: "Street Food", Amount: 120, Currency: "inr",
		Date: testNow.Add(-48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	newer, err := svc.Add(ctx, AddTravelExpenseParams{
		Category: mustCategory(t, "local-vehicles"), Subcategory: "Auto Rickshaw", Amount: 60, Currency: "INR",
		Date: testNow,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if older.Currency != "INR" {
		t.Errorf("Expected upper-case currency, got %s", older.Currency)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != newer.ID {
		t.Errorf("Expected newest first, got %+v", list)
	}

	if err := svc.Delete(ctx, older.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, older.ID); !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("Expected ErrExpenseNotFound, got %v", err)
	}
}

func TestTravelExpenseValidation(t *testing.T) {
	repos, _ := setupRepos(t)
	svc := NewExpenseService(repos, discardLogger())
	food := mustCategory(t, "food")

	tests := []struct {
		name   string
		params AddTravelExpenseParams
	}{
		{"missing subcategory", AddTravelExpenseParams{Category: food, Amount: 10, Currency: "INR"}},
		{"zero amount", AddTravelExpenseParams{Category: food, Subcategory: "x", Currency: "INR"}},
		{"missing currency", AddTravelExpenseParams{Category: food, Subcategory: "x", Amount: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Add(context.Background(), tt.params); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
