package currency

import "github.com/mhartwell/fxresolver/internal/numeric"

func init() {
	for _, c := range []Currency{
		{Name: "Japanese yen", Code: "JPY", NumericCode: 392, Symbol: "¥", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Chinese yuan", Code: "CNY", NumericCode: 156, Symbol: "Y", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Hong Kong dollar", Code: "HKD", NumericCode: 344, Symbol: "HK$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Indian rupee", Code: "INR", NumericCode: 356, Symbol: "Rs", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "South-Korean won", Code: "KRW", NumericCode: 410, Symbol: "W", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Singapore dollar", Code: "SGD", NumericCode: 702, Symbol: "S$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Thai baht", Code: "THB", NumericCode: 764, Symbol: "Bht", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Taiwan dollar", Code: "TWD", NumericCode: 901, Symbol: "NT$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Israeli shekel", Code: "ILS", NumericCode: 376, Symbol: "NIS", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Saudi riyal", Code: "SAR", NumericCode: 682, Symbol: "SRls", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
	} {
		register(c)
	}
}
