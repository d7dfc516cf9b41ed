package refdata

import (
	"context"

	"github.com/mmynk/tripsplit/internal/currency"
	"github.com/mmynk/tripsplit/internal/models"
)

// Currencies returns the currency reference data. When the fetch fails or
// returns nothing, the failure is logged and the built-in list is returned.
func (c *Client) Currencies(ctx context.Context) []models.Currency {
	items, err := FetchAll[models.Currency](ctx, c, CollectionCurrencies)
	if err != nil {
		c.logger.Warn("Falling back to default currencies", "error", err)
		return currency.DefaultCurrencies()
	}
	if len(items) == 0 {
		c.logger.Warn("CMS returned no currencies, using defaults")
		return currency.DefaultCurrencies()
	}
	return items
}

// RateTable builds a rate table from the current currency reference data.
// If the fetched data has no usable base currency, the built-in list is
// used instead.
func (c *Client) RateTable(ctx context.Context, opts ...currency.Option) (*currency.RateTable, error) {
	table, err := currency.NewRateTable(c.Currencies(ctx), opts...)
	if err == nil {
		return table, nil
	}
	c.logger.Warn("Currency reference data unusable, using defaults", "error", err)
	return currency.NewRateTable(currency.DefaultCurrencies(), opts...)
}
