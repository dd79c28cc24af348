package currency

import "github.com/mhartwell/fxresolver/internal/numeric"

// European currencies, including the national units obsoleted by the euro.
// The obsoleted units stay registered because the rate manager seeds fixed
// conversion rates for them.
func init() {
	for _, c := range []Currency{
		{Name: "European Euro", Code: "EUR", NumericCode: 978, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.ClosestRounding(2)},
		{Name: "British pound sterling", Code: "GBP", NumericCode: 826, Symbol: "£", FractionSymbol: "p", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Swiss franc", Code: "CHF", NumericCode: 756, Symbol: "SwF", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Bulgarian lev", Code: "BGN", NumericCode: 975, Symbol: "lv", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Czech koruna", Code: "CZK", NumericCode: 203, Symbol: "Kc", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Danish krone", Code: "DKK", NumericCode: 208, Symbol: "Dkr", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Hungarian forint", Code: "HUF", NumericCode: 348, Symbol: "Ft", FractionSymbol: "", FractionsPerUnit: 1, Rounding: numeric.Rounding{}},
		{Name: "Iceland krona", Code: "ISK", NumericCode: 352, Symbol: "IKr", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Norwegian krone", Code: "NOK", NumericCode: 578, Symbol: "NKr", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Polish zloty", Code: "PLN", NumericCode: 985, Symbol: "zl", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Romanian leu", Code: "ROL", NumericCode: 642, Symbol: "L", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Romanian new leu", Code: "RON", NumericCode: 946, Symbol: "L", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Russian ruble", Code: "RUB", NumericCode: 643, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Swedish krona", Code: "SEK", NumericCode: 752, Symbol: "kr", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Turkish lira", Code: "TRL", NumericCode: 792, Symbol: "TL", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "New Turkish lira", Code: "TRY", NumericCode: 949, Symbol: "YTL", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Ukrainian hryvnia", Code: "UAH", NumericCode: 980, Symbol: "hrn", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Serbian dinar", Code: "RSD", NumericCode: 941, Symbol: "din.", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Croatian kuna", Code: "HRK", NumericCode: 191, Symbol: "kn", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Georgian lari", Code: "GEL", NumericCode: 981, Symbol: "GEL", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},

		// obsoleted by the euro
		{Name: "Austrian shilling", Code: "ATS", NumericCode: 40, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Belgian franc", Code: "BEF", NumericCode: 56, Symbol: "", FractionSymbol: "", FractionsPerUnit: 1, Rounding: numeric.Rounding{}},
		{Name: "Deutsche mark", Code: "DEM", NumericCode: 276, Symbol: "DM", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Spanish peseta", Code: "ESP", NumericCode: 724, Symbol: "Pta", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Finnish markka", Code: "FIM", NumericCode: 246, Symbol: "mk", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "French franc", Code: "FRF", NumericCode: 250, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Greek drachma", Code: "GRD", NumericCode: 300, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Irish punt", Code: "IEP", NumericCode: 372, Symbol: "", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Italian lira", Code: "ITL", NumericCode: 380, Symbol: "L", FractionSymbol: "", FractionsPerUnit: 1, Rounding: numeric.Rounding{}},
		{Name: "Luxembourg franc", Code: "LUF", NumericCode: 442, Symbol: "F", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Dutch guilder", Code: "NLG", NumericCode: 528, Symbol: "f", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
		{Name: "Portuguese escudo", Code: "PTE", NumericCode: 620, Symbol: "Esc", FractionSymbol: "", FractionsPerUnit: 100, Rounding: numeric.Rounding{}},
	} {
		register(c)
	}
}
