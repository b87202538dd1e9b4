// README: Common money value object used across modules.
package types

import "fmt"

const CurrencyUSD = "USD"

// Money holds an amount in minor units (cents for USD).
type Money struct {
	Amount   int64
	Currency string
}

func USD(cents int64) Money {
	return Money{Amount: cents, Currency: CurrencyUSD}
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}

// Dollars returns the amount in major units, exact to the cent.
func (m Money) Dollars() float64 {
	return float64(m.Amount) / 100
}

func (m Money) String() string {
	sign := ""
	a := m.Amount
	if a < 0 {
		sign = "-"
		a = -a
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, a/100, a%100, m.Currency)
}
