package entity

import (
	"github.com/shopspring/decimal"

	"github.com/mhartwell/fxresolver/internal/numeric"
)

// Money is an amount in a specific currency. Amounts are decimal so that
// conversion results survive rounding exactly.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Rounded applies a currency rounding rule to the amount.
func (m Money) Rounded(r numeric.Rounding) Money {
	return Money{Amount: r.Apply(m.Amount), Currency: m.Currency}
}
