package currency

import "github.com/mhartwell/fxresolver/internal/numeric"

// Crypto assets get synthetic numeric codes above the ISO 4217 range.
func init() {
	for _, c := range []Currency{
		{Name: "Bitcoin", Code: "BTC", NumericCode: 10000, Symbol: "BTC", FractionSymbol: "satoshi", FractionsPerUnit: 100000000, Rounding: numeric.Rounding{}},
		{Name: "Ethereum", Code: "ETH", NumericCode: 10001, Symbol: "ETH", FractionSymbol: "wei", FractionsPerUnit: 100000000, Rounding: numeric.Rounding{}},
		{Name: "Litecoin", Code: "LTC", NumericCode: 10002, Symbol: "LTC", FractionSymbol: "", FractionsPerUnit: 100000000, Rounding: numeric.Rounding{}},
		{Name: "Ripple", Code: "XRP", NumericCode: 10003, Symbol: "XRP", FractionSymbol: "drop", FractionsPerUnit: 1000000, Rounding: numeric.Rounding{}},
	} {
		register(c)
	}
}
