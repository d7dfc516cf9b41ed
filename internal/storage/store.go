// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Load when nothing was saved under a key.
var ErrNotFound = errors.New("record not found")

// Keys of the persisted state. Each holds one JSON document.
const (
	KeyTravelExpenses    = "travelExpenses"
	KeyBudget            = "travelBudget"
	KeyGroupTrips        = "groupTrips"
	KeyGroupExpenses     = "groupExpenses"
	KeyConversionHistory = "conversionHistory"
)

// Store defines the interface for key-value storage operations.
// This abstraction allows swapping storage backends (memory, SQLite,
// PostgreSQL) without changing the service layer.
type Store interface {
	// Load returns the raw value saved under key.
	// Returns ErrNotFound if the key has never been saved.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}
