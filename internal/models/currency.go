package models

import "time"

// Currency is exchange-rate reference data. ExchangeRate is expressed
// relative to the single currency flagged IsBaseCurrency.
type Currency struct {
	Code           string  `json:"currencyCode"`
	Symbol         string  `json:"currencySymbol"`
	Name           string  `json:"currencyName"`
	ExchangeRate   float64 `json:"exchangeRate"`
	IsBaseCurrency bool    `json:"isBaseCurrency"`
}

// Conversion is one entry of the currency converter history.
type Conversion struct {
	ID           string    `json:"id"`
	Amount       float64   `json:"amount"`
	FromCurrency string    `json:"fromCurrency"`
	ToCurrency   string    `json:"toCurrency"`
	Result       float64   `json:"result"`
	Rate         float64   `json:"rate"`
	Timestamp    time.Time `json:"timestamp"`
}

// Validate checks a decoded conversion record.
func (c *Conversion) Validate() error {
	if c.ID == "" {
		return malformed("conversion", "", "id", "must not be empty")
	}
	if c.FromCurrency == "" || c.ToCurrency == "" {
		return malformed("conversion", c.ID, "currency", "must not be empty")
	}
	if !finite(c.Amount) || !finite(c.Result) || !finite(c.Rate) {
		return malformed("conversion", c.ID, "amount", "must be a finite number")
	}
	return nil
}
