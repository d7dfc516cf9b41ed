package currency

import "github.com/mmynk/tripsplit/internal/models"

// DefaultCurrencies is the fallback list used when currency reference data
// cannot be fetched. Rates are approximate and relative to USD.
func DefaultCurrencies() []models.Currency {
	return []models.Currency{
		{Code: "USD", Symbol: "$", Name: "US Dollar", ExchangeRate: 1, IsBaseCurrency: true},
		{Code: "EUR", Symbol: "€", Name: "Euro", ExchangeRate: 0.92},
		{Code: "GBP", Symbol: "£", Name: "British Pound", ExchangeRate: 0.79},
		{Code: "JPY", Symbol: "¥", Name: "Japanese Yen", ExchangeRate: 149.5},
		{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar", ExchangeRate: 1.36},
		{Code: "AUD", Symbol: "A$", Name: "Australian Dollar", ExchangeRate: 1.52},
		{Code: "INR", Symbol: "₹", Name: "Indian Rupee", ExchangeRate: 83.2},
		{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan", ExchangeRate: 7.24},
	}
}
