package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
)

// RateSource supplies currency reference data.
type RateSource interface {
	Currencies(ctx context.Context) []models.Currency
	RateTable(ctx context.Context, opts ...currency.Option) (*currency.RateTable, error)
}

// StaticRates is a RateSource over a fixed currency list.
type StaticRates []models.Currency

func (r StaticRates) Currencies(context.Context) []models.Currency {
	return r
}

func (r StaticRates) RateTable(_ context.Context, opts ...currency.Option) (*currency.RateTable, error) {
	return currency.NewRateTable(r, opts...)
}

// Rates builds rate tables whose missing-rate fallbacks are logged and
// reported to an optional hook.
type Rates struct {
	source RateSource
	logger *slog.Logger
	onMiss func(code string)
}

// NewRates wraps source. onMiss may be nil.
func NewRates(source RateSource, logger *slog.Logger, onMiss func(code string)) *Rates {
	return &Rates{source: source, logger: logger, onMiss: onMiss}
}

// Table returns the current rate table.
func (r *Rates) Table(ctx context.Context) (*currency.RateTable, error) {
	return r.source.RateTable(ctx, currency.WithMissHook(r.miss))
}

// Currencies returns the current currency list.
func (r *Rates) Currencies(ctx context.Context) []models.Currency {
	return r.source.Currencies(ctx)
}

func (r *Rates) miss(code string) {
	r.logger.Warn("No exchange rate, converting as identity", "currency", code)
	if r.onMiss != nil {
		r.onMiss(code)
	}
}
