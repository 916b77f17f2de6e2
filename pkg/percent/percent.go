package percent

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Change returns the percent change from prev to cur, expressed 0-100.
// Returns zero when prev is zero rather than dividing by zero.
func Change(prev, cur decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		return decimal.Zero
	}
	return cur.Sub(prev).Div(prev).Mul(hundred)
}

// Of returns part as a percent of whole (0-100). Zero when whole is zero.
func Of(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// Clamp bounds a percent to the [0, 100] range.
func Clamp(p decimal.Decimal) decimal.Decimal {
	if p.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}

// AsRate converts a percent (0-100) to a fractional rate (0-1).
func AsRate(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}
