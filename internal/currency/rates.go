// Package currency converts amounts between currencies through a single
// base-currency pivot.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/tripsplit/internal/models"
)

var (
	ErrNoBaseCurrency       = errors.New("rate table has no base currency")
	ErrMultipleBaseCurrency = errors.New("rate table has more than one base currency")
)

// RateTable holds exchange rates relative to one base currency.
//
// Conversion between any two currencies always pivots through the base:
// divide by the source rate, multiply by the target rate. No cross-rate table
// is kept. A code that is not in the table converts as the identity.
type RateTable struct {
	base       string
	rates      map[string]float64
	currencies map[string]models.Currency
	onMiss     func(code string)
}

// Option configures a RateTable.
type Option func(*RateTable)

// WithMissHook registers fn to be called whenever a conversion falls back to
// the identity because a code has no rate.
func WithMissHook(fn func(code string)) Option {
	return func(t *RateTable) { t.onMiss = fn }
}

// NewRateTable builds a table from currency reference data. Exactly one entry
// must be flagged as the base currency. Entries without a positive rate are
// left out of the table and convert as the identity.
func NewRateTable(currencies []models.Currency, opts ...Option) (*RateTable, error) {
	t := &RateTable{
		rates:      make(map[string]float64, len(currencies)),
		currencies: make(map[string]models.Currency, len(currencies)),
	}
	for _, c := range currencies {
		code := normalize(c.Code)
		if code == "" {
			continue
		}
		if c.IsBaseCurrency {
			if t.base != "" && t.base != code {
				return nil, fmt.Errorf("%w: %s and %s", ErrMultipleBaseCurrency, t.base, code)
			}
			t.base = code
		}
		t.currencies[code] = c
		if c.ExchangeRate > 0 {
			t.rates[code] = c.ExchangeRate
		}
	}
	if t.base == "" {
		return nil, ErrNoBaseCurrency
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Base returns the base currency code.
func (t *RateTable) Base() string {
	return t.base
}

// Has reports whether code has a usable rate.
func (t *RateTable) Has(code string) bool {
	_, ok := t.rates[normalize(code)]
	return ok
}

// Lookup returns the reference record for code.
func (t *RateTable) Lookup(code string) (models.Currency, bool) {
	c, ok := t.currencies[normalize(code)]
	return c, ok
}

// ToBase converts amount in fromCode to the base currency.
func (t *RateTable) ToBase(amount float64, fromCode string) float64 {
	rate, ok := t.rate(fromCode)
	if !ok {
		return amount
	}
	return amount / rate
}

// ToTarget converts baseAmount in the base currency to toCode.
func (t *RateTable) ToTarget(baseAmount float64, toCode string) float64 {
	rate, ok := t.rate(toCode)
	if !ok {
		return baseAmount
	}
	return baseAmount * rate
}

// Convert converts amount from one currency to another through the base.
// If either code has no rate the amount is returned unchanged.
func (t *RateTable) Convert(amount float64, fromCode, toCode string) float64 {
	if normalize(fromCode) == normalize(toCode) {
		return amount
	}
	fromRate, fromOK := t.rate(fromCode)
	toRate, toOK := t.rate(toCode)
	if !fromOK || !toOK {
		return amount
	}
	return amount / fromRate * toRate
}

// Rate returns how many units of toCode one unit of fromCode buys.
func (t *RateTable) Rate(fromCode, toCode string) float64 {
	return t.Convert(1, fromCode, toCode)
}

func (t *RateTable) rate(code string) (float64, bool) {
	rate, ok := t.rates[normalize(code)]
	if !ok && t.onMiss != nil {
		t.onMiss(code)
	}
	return rate, ok
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
