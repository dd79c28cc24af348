package entity

import "time"

// RateSheet is one day's published quotes from an external feed: every
// rate is quoted against the sheet's base currency.
type RateSheet struct {
	Base  string             `json:"base"`
	Date  time.Time          `json:"date"`
	Rates map[string]float64 `json:"rates"`
}
