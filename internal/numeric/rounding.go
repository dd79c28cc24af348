// Package numeric provides decimal rounding rules for currency amounts.
package numeric

import "github.com/shopspring/decimal"

// RoundingType selects the rounding behavior applied at a given precision.
type RoundingType int

const (
	// RoundNone leaves the value untouched.
	RoundNone RoundingType = iota
	// RoundUp rounds away from zero whenever any fractional part remains.
	RoundUp
	// RoundDown truncates toward zero.
	RoundDown
	// RoundClosest rounds to the nearest value, ties decided by the
	// rounding digit.
	RoundClosest
	// RoundFloor behaves like RoundClosest for positive values and
	// truncates negative ones.
	RoundFloor
	// RoundCeiling behaves like RoundClosest for negative values and
	// truncates positive ones.
	RoundCeiling
)

// String returns the canonical name used by the inspection tooling.
func (t RoundingType) String() string {
	switch t {
	case RoundNone:
		return "None"
	case RoundUp:
		return "Up"
	case RoundDown:
		return "Down"
	case RoundClosest:
		return "Closest"
	case RoundFloor:
		return "Floor"
	case RoundCeiling:
		return "Ceiling"
	default:
		return "Unknown"
	}
}

// ParseRoundingType maps a rounding-type name to its value.
func ParseRoundingType(s string) (RoundingType, bool) {
	switch s {
	case "None":
		return RoundNone, true
	case "Up":
		return RoundUp, true
	case "Down":
		return RoundDown, true
	case "Closest":
		return RoundClosest, true
	case "Floor":
		return RoundFloor, true
	case "Ceiling":
		return RoundCeiling, true
	default:
		return RoundNone, false
	}
}

// Rounding is a pure rounding rule: a type, the decimal precision it is
// applied at, and the first fractional digit (0-9) at which a tie rounds
// away from zero.
type Rounding struct {
	Type      RoundingType `json:"type"`
	Precision int32        `json:"precision"`
	Digit     int32        `json:"digit"`
}

// NewRounding builds a rule with an explicit type and tie digit.
func NewRounding(precision int32, typ RoundingType, digit int32) Rounding {
	return Rounding{Type: typ, Precision: precision, Digit: digit}
}

// ClosestRounding rounds to the closest value at the given precision with
// the conventional tie digit of 5.
func ClosestRounding(precision int32) Rounding {
	return Rounding{Type: RoundClosest, Precision: precision, Digit: 5}
}

// UpRounding rounds away from zero at the given precision.
func UpRounding(precision int32) Rounding {
	return Rounding{Type: RoundUp, Precision: precision, Digit: 5}
}

// DownRounding truncates toward zero at the given precision.
func DownRounding(precision int32) Rounding {
	return Rounding{Type: RoundDown, Precision: precision, Digit: 5}
}

var one = decimal.NewFromInt(1)

// Apply rounds value according to the rule. The value is scaled by
// 10^precision, the integral and fractional parts are split on the
// absolute value, and the fractional part is compared against digit/10 to
// decide the adjustment. Sign is restored afterwards, which is what makes
// Floor and Ceiling asymmetric.
func (r Rounding) Apply(value decimal.Decimal) decimal.Decimal {
	if r.Type == RoundNone {
		return value
	}

	neg := value.IsNegative()
	scaled := value.Abs().Shift(r.Precision)
	integral := scaled.Floor()
	frac := scaled.Sub(integral)
	threshold := decimal.New(int64(r.Digit), -1)

	switch r.Type {
	case RoundDown:
		// truncate
	case RoundUp:
		if !frac.IsZero() {
			integral = integral.Add(one)
		}
	case RoundClosest:
		if frac.Cmp(threshold) >= 0 {
			integral = integral.Add(one)
		}
	case RoundFloor:
		if !neg && frac.Cmp(threshold) >= 0 {
			integral = integral.Add(one)
		}
	case RoundCeiling:
		if neg && frac.Cmp(threshold) >= 0 {
			integral = integral.Add(one)
		}
	}

	result := integral.Shift(-r.Precision)
	if neg {
		result = result.Neg()
	}
	return result
}
