package currency

import (
	"fmt"

	"github.com/SUmit-kush123/bookin.com-sub000/internal/domain/entities"
)

// Fixed exchange table relative to the base currency (USD). Values are units
// of the currency per 1 USD. The table is never mutated at runtime; the
// user-selectable display currency lives outside this package.
var rates = map[entities.CurrencyCode]float64{
	entities.CurrencyUSD: 1,
	entities.CurrencyNPR: 132.8,
	entities.CurrencyINR: 83.2,
}

var symbols = map[entities.CurrencyCode]string{
	entities.CurrencyUSD: "$",
	entities.CurrencyNPR: "रू",
	entities.CurrencyINR: "₹",
}

// ToBase converts amount from the given currency into the base currency.
// Unknown currencies and zero amounts degrade to 0; this function never fails.
func ToBase(amount float64, from entities.CurrencyCode) float64 {
	rate, ok := rates[from]
	if !ok || amount == 0 {
		return 0
	}
	return amount / rate
}

// Convert converts amount from one supported currency to another via the base.
func Convert(amount float64, from, to entities.CurrencyCode) float64 {
	rate, ok := rates[to]
	if !ok {
		return 0
	}
	return ToBase(amount, from) * rate
}

// Format converts amount into the display currency and renders it with that
// currency's symbol and decimal policy: USD shows two decimal places, NPR and
// INR show none. The zero-decimal rendering for NPR/INR is a deliberate
// display rule, not rounding fallout.
func Format(amount float64, from, display entities.CurrencyCode) string {
	converted := Convert(amount, from, display)
	symbol := symbols[display]
	if display == entities.CurrencyUSD {
		return fmt.Sprintf("%s%.2f", symbol, converted)
	}
	return fmt.Sprintf("%s%.0f", symbol, converted)
}

// Symbol returns the display symbol for a supported currency.
func Symbol(c entities.CurrencyCode) string {
	return symbols[c]
}
