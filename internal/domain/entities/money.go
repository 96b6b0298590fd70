package entities

// CurrencyCode is the closed set of currencies the platform supports.
//
// All conversions pass through the base currency (USD); the set is fixed at
// compile time and never extended at runtime.

type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyNPR CurrencyCode = "NPR"
	CurrencyINR CurrencyCode = "INR"
)

// Money is an amount in a specific currency.
//
// Computed prices are always non-negative. A zero amount is a valid price
// ("free, confirm immediately"), not an error sentinel.
type Money struct {
	Amount   float64      `json:"amount"`
	Currency CurrencyCode `json:"currency"`
}

// IsValidCurrency reports whether c belongs to the supported set.
func IsValidCurrency(c CurrencyCode) bool {
	switch c {
	case CurrencyUSD, CurrencyNPR, CurrencyINR:
		return true
	}
	return false
}
