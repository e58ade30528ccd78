package analytics

import (
	"github.com/shopspring/decimal"
)

// DefaultWindow is the historical window/span used when a caller does not
// supply one.
const DefaultWindow = 3

// SMA computes a trailing simple moving average over series. The first
// window-1 positions have insufficient history and stay nil; FillMissing
// coerces them to zero before emission.
func SMA(series []decimal.Decimal, window int) []*decimal.Decimal {
	if window <= 0 {
		window = DefaultWindow
	}
	out := make([]*decimal.Decimal, len(series))
	if len(series) == 0 {
		return out
	}

	sum := decimal.Zero
	div := decimal.NewFromInt(int64(window))
	for i := range series {
		sum = sum.Add(series[i])
		if i >= window {
			sum = sum.Sub(series[i-window])
		}
		if i >= window-1 {
			mean := sum.Div(div)
			out[i] = &mean
		}
	}
	return out
}

// EMA computes an exponential moving average with alpha = 2/(span+1) and no
// adjustment: ema[0] = x[0], ema[i] = alpha*x[i] + (1-alpha)*ema[i-1]. Every
// position has a value, so the output carries no nils.
func EMA(series []decimal.Decimal, span int) []*decimal.Decimal {
	if span <= 0 {
		span = DefaultWindow
	}
	out := make([]*decimal.Decimal, len(series))
	if len(series) == 0 {
		return out
	}

	alpha := decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(span) + 1))
	oneMinusAlpha := decimal.NewFromInt(1).Sub(alpha)

	prev := series[0]
	out[0] = &prev
	for i := 1; i < len(series); i++ {
		ema := alpha.Mul(series[i]).Add(oneMinusAlpha.Mul(*out[i-1]))
		out[i] = &ema
	}
	return out
}

// FillMissing replaces nil positions with zero. This deliberately understates
// the leading SMA values; the emitted contract has always zero-filled them.
func FillMissing(series []*decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(series))
	for i, v := range series {
		if v == nil {
			out[i] = decimal.Zero
			continue
		}
		out[i] = *v
	}
	return out
}
