package currency

// Normalizer converts an amount into a single reporting currency.
// Aggregates over amounts in mixed currencies must go through a Normalizer.
type Normalizer interface {
	Normalize(amount float64, code string) float64
	Currency() string
}

// Reporting normalizes amounts into a fixed target currency using a RateTable.
type Reporting struct {
	table  *RateTable
	target string
}

// NewReporting returns a normalizer into target.
func NewReporting(table *RateTable, target string) *Reporting {
	return &Reporting{table: table, target: normalize(target)}
}

// Normalize converts amount in code to the reporting currency.
func (r *Reporting) Normalize(amount float64, code string) float64 {
	return r.table.Convert(amount, code, r.target)
}

// Currency returns the reporting currency code.
func (r *Reporting) Currency() string {
	return r.target
}

// Identity is a Normalizer for data already in a single currency.
type Identity string

func (i Identity) Normalize(amount float64, _ string) float64 { return amount }
func (i Identity) Currency() string                          { return string(i) }
