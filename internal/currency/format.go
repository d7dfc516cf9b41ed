package currency

import "github.com/shopspring/decimal"

// Round2 rounds amount to two decimals for presentation. Internal
// accumulation must never use it.
func Round2(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// Format renders amount with two decimals behind symbol, e.g. "₹1234.50".
// Symbol falls back to the currency code when empty.
func Format(amount float64, symbol, code string) string {
	if symbol == "" {
		symbol = code
	}
	return symbol + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatIn renders amount using the symbol recorded in t for code.
func (t *RateTable) FormatIn(amount float64, code string) string {
	c, _ := t.Lookup(code)
	return Format(amount, c.Symbol, normalize(code))
}

// FormatCode renders amount with two decimals followed by the code,
// e.g. "1234.50 INR".
func FormatCode(amount float64, code string) string {
	return decimal.NewFromFloat(amount).StringFixed(2) + " " + normalize(code)
}
