package currency

import "github.com/mhartwell/fxresolver/internal/numeric"

func init() {
	for _, c := range []Currency{
		{Name: "Australian dollar", Code: "AUD", NumericCode: 36, Symbol: "A$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "New Zealand dollar", Code: "NZD", NumericCode: 554, Symbol: "NZ$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
	} {
		register(c)
	}
}
