package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mmynk/tripsplit/internal/models"
)

// Repository loads and saves one typed document under a fixed key.
// Decoded values are validated before they are returned.
type Repository[T any] struct {
	store    Store
	key      string
	validate func(*T) error
}

// NewRepository returns a repository for key. validate may be nil.
func NewRepository[T any](store Store, key string, validate func(*T) error) *Repository[T] {
	return &Repository[T]{store: store, key: key, validate: validate}
}

// Key returns the storage key of the repository.
func (r *Repository[T]) Key() string {
	return r.key
}

// Load returns the stored value. ok is false when nothing has been saved.
// Undecodable or invalid documents fail with an error matching
// models.ErrMalformedRecord.
func (r *Repository[T]) Load(ctx context.Context) (value T, ok bool, err error) {
	raw, err := r.store.Load(ctx, r.key)
	if errors.Is(err, ErrNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("failed to load %s: %w", r.key, err)
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		if errors.Is(err, models.ErrMalformedRecord) {
			return value, false, fmt.Errorf("failed to decode %s: %w", r.key, err)
		}
		return value, false, &models.MalformedRecordError{Record: r.key, Field: "$", Reason: err.Error()}
	}
	if r.validate != nil {
		if err := r.validate(&value); err != nil {
			return value, false, fmt.Errorf("invalid %s: %w", r.key, err)
		}
	}
	return value, true, nil
}

// LoadOr returns the stored value, or fallback when nothing has been saved.
func (r *Repository[T]) LoadOr(ctx context.Context, fallback T) (T, error) {
	value, ok, err := r.Load(ctx)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	return value, nil
}

// Save encodes and stores value.
func (r *Repository[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.key, err)
	}
	if err := r.store.Save(ctx, r.key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", r.key, err)
	}
	return nil
}

// EachValid adapts a per-record validator to a slice document.
func EachValid[E any](validate func(*E) error) func(*[]E) error {
	return func(items *[]E) error {
		for i := range *items {
			if err := validate(&(*items)[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Repositories groups the typed repositories of the persisted state.
type Repositories struct {
	TravelExpenses    *Repository[[]models.TravelExpense]
	Budget            *Repository[models.Budget]
	Trips             *Repository[[]models.Trip]
	GroupExpenses     *Repository[[]models.GroupExpense]
	ConversionHistory *Repository[[]models.Conversion]
}

// NewRepositories binds every persisted key to store.
func NewRepositories(store Store) *Repositories {
	return &Repositories{
		TravelExpenses:    NewRepository(store, KeyTravelExpenses, EachValid((*models.TravelExpense).Validate)),
		Budget:            NewRepository(store, KeyBudget, (*models.Budget).Validate),
		Trips:             NewRepository(store, KeyGroupTrips, EachValid((*models.Trip).Validate)),
		GroupExpenses:     NewRepository(store, KeyGroupExpenses, EachValid((*models.GroupExpense).Validate)),
		ConversionHistory: NewRepository(store, KeyConversionHistory, EachValid((*models.Conversion).Validate)),
	}
}
