package service

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/storage"
	"github.com/mmynk/tripsplit/internal/storage/memory"
)

var testNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCurrencies() StaticRates {
	return StaticRates{
		{Code: "USD", Symbol: "$", ExchangeRate: 1, IsBaseCurrency: true},
		{Code: "INR", Symbol: "₹", ExchangeRate: 80},
		{Code: "EUR", Symbol: "€", ExchangeRate: 0.5},
	}
}

// setupRepos returns repositories over a fresh in-memory store.
func setupRepos(t *testing.T) (*storage.Repositories, *memory.Store) {
	t.Helper()
	store := memory.New()
	t.Cleanup(func() { store.Close() })
	return storage.NewRepositories(store), store
}

func fixedClock() func() time.Time {
	return func() time.Time { return testNow }
}

func mustCategory(t *testing.T, key string) models.Category {
	t.Helper()
	c, err := models.ParseCategory(key)
	if err != nil {
		t.Fatalf("ParseCategory(%q): %v", key, err)
	}
	return c
}
