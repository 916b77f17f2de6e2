package calculation

import (
	"github.com/shopspring/decimal"
)

// TrendProjector fits an ordinary least-squares line to an ordered series
// (x = 0..n-1) and projects the next value.
type TrendProjector struct{}

// TrendFit holds the fitted line and its quality.
type TrendFit struct {
	Slope     decimal.Decimal
	Intercept decimal.Decimal
	RSquared  decimal.Decimal
}

// Fit computes slope, intercept and R-squared from the closed-form sums.
// Series with fewer than two points fit a flat line through the only value.
func (TrendProjector) Fit(series []decimal.Decimal) TrendFit {
	n := len(series)
	if n == 0 {
		return TrendFit{}
	}
	if n == 1 {
		// Slope is undefined for a single point; treat as flat.
		return TrendFit{Intercept: series[0], RSquared: decimal.NewFromInt(1)}
	}

	var sumX, sumY, sumXY, sumX2 decimal.Decimal
	for i, y := range series {
		x := decimal.NewFromInt(int64(i))
		sumX = sumX.Add(x)
		sumY = sumY.Add(y)
		sumXY = sumXY.Add(x.Mul(y))
		sumX2 = sumX2.Add(x.Mul(x))
	}

	count := decimal.NewFromInt(int64(n))
	denom := count.Mul(sumX2).Sub(sumX.Mul(sumX))
	if denom.IsZero() {
		return TrendFit{Intercept: sumY.Div(count)}
	}

	slope := count.Mul(sumXY).Sub(sumX.Mul(sumY)).Div(denom)
	intercept := sumY.Sub(slope.Mul(sumX)).Div(count)

	meanY := sumY.Div(count)
	var ssRes, ssTot decimal.Decimal
	for i, y := range series {
		predicted := slope.Mul(decimal.NewFromInt(int64(i))).Add(intercept)
		resid := y.Sub(predicted)
		ssRes = ssRes.Add(resid.Mul(resid))
		dev := y.Sub(meanY)
		ssTot = ssTot.Add(dev.Mul(dev))
	}
	rSquared := decimal.NewFromInt(1)
	if !ssTot.IsZero() {
		rSquared = decimal.NewFromInt(1).Sub(ssRes.Div(ssTot))
	}

	return TrendFit{Slope: slope, Intercept: intercept, RSquared: rSquared}
}

// ProjectNext extrapolates the fitted line one step past the series, clamped
// to zero because financial projections are never negative. An empty series
// projects zero; a single point projects itself.
func (tp TrendProjector) ProjectNext(series []decimal.Decimal) decimal.Decimal {
	n := len(series)
	if n == 0 {
		return decimal.Zero
	}
	if n == 1 {
		return decimal.Max(series[0], decimal.Zero)
	}

	fit := tp.Fit(series)
	next := fit.Slope.Mul(decimal.NewFromInt(int64(n))).Add(fit.Intercept)
	return decimal.Max(next, decimal.Zero)
}
