package currency

import "github.com/mhartwell/fxresolver/internal/numeric"

func init() {
	for _, c := range []Currency{
		{Name: "South-African rand", Code: "ZAR", NumericCode: 710, Symbol: "R", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Nigerian naira", Code: "NGN", NumericCode: 566, Symbol: "N", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Egyptian pound", Code: "EGP", NumericCode: 818, Symbol: "E£", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Kenyan shilling", Code: "KES", NumericCode: 404, Symbol: "KSh", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Moroccan dirham", Code: "MAD", NumericCode: 504, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
	} {
		register(c)
	}
}
