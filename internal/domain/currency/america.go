package currency

import "github.com/mhartwell/fxresolver/internal/numeric"

// North and South American currencies, including the redenominated
// Peruvian units that the baseline rates chain through.
func init() {
	for _, c := range []Currency{
		{Name: "U.S. dollar", Code: "USD", NumericCode: 840, Symbol: "$", FractionSymbol: "¢", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Canadian dollar", Code: "CAD", NumericCode: 124, Symbol: "Can$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Argentinian peso", Code: "ARS", NumericCode: 32, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Brazilian real", Code: "BRL", NumericCode: 986, Symbol: "R$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Chilean peso", Code: "CLP", NumericCode: 152, Symbol: "Ch$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Colombian peso", Code: "COP", NumericCode: 170, Symbol: "Col$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Mexican peso", Code: "MXN", NumericCode: 484, Symbol: "Mex$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Trinidad & Tobago dollar", Code: "TTD", NumericCode: 780, Symbol: "TT$", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Peruvian nuevo sol", Code: "PEN", NumericCode: 604, Symbol: "S/.", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Peruvian inti", Code: "PEI", NumericCode: 998, Symbol: "I/.", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Peruvian sol", Code: "PEH", NumericCode: 999, Symbol: "S./", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
	} {
		register(c)
	}
}
