package handler

// RegisterRateRequest is the request body for registering a rate entry.
type RegisterRateRequest struct {
	Source    string  `json:"source"`
	Target    string  `json:"target"`
	Rate      float64 `json:"rate"`
	ValidFrom string  `json:"valid_from"`
	ValidTo   string  `json:"valid_to,omitempty"`
}

// RegisterRateResponse is returned after a successful registration.
type RegisterRateResponse struct {
	ID string `json:"id"`
}

// LookupRateResponse is the resolved rate for a lookup query.
type LookupRateResponse struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Rate   float64 `json:"rate"`
	Kind   string  `json:"kind"`
}

// ConversionResponse is the result of a money conversion.
type ConversionResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	Date            string  `json:"date"`
	OriginalAmount  string  `json:"original_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
	RateKind        string  `json:"rate_kind"`
	ConvertedAmount string  `json:"converted_amount"`
}

// RoundingResponse describes a currency's rounding rule.
type RoundingResponse struct {
	Type      string `json:"type"`
	Precision int32  `json:"precision"`
	Digit     int32  `json:"digit"`
}

// CurrencyResponse is the metadata for one currency.
type CurrencyResponse struct {
	Name             string           `json:"name"`
	Code             string           `json:"code"`
	NumericCode      int              `json:"numeric_code"`
	Symbol           string           `json:"symbol"`
	FractionSymbol   string           `json:"fraction_symbol"`
	FractionsPerUnit int              `json:"fractions_per_unit"`
	Rounding         RoundingResponse `json:"rounding"`
}

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Error       string `json:"error"`
	Status      int    `json:"status"`
	Description string `json:"description,omitempty"`
	RequestID   string `json:"request_id,omitempty"`
}
