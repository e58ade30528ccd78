package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salesboard/internal/analytics"
	"salesboard/internal/repository"
)

const (
	MetricSMA = "SMA"
	MetricEMA = "EMA"
)

// TrendSeries is the aligned multi-series payload consumed by the trends
// page. All populated slices share index alignment; the smoothing slice for
// the metric that was not requested stays empty rather than null-filled.
type TrendSeries struct {
	Months        []string          `json:"months"`
	TotalRevenue  []decimal.Decimal `json:"total_revenue"`
	TotalQuantity []int64           `json:"total_quantity"`
	SMARevenue    []decimal.Decimal `json:"sma_revenue"`
	EMARevenue    []decimal.Decimal `json:"ema_revenue"`
}

func emptyTrendSeries() TrendSeries {
	return TrendSeries{
		Months:        []string{},
		TotalRevenue:  []decimal.Decimal{},
		TotalQuantity: []int64{},
		SMARevenue:    []decimal.Decimal{},
		EMARevenue:    []decimal.Decimal{},
	}
}

type TrendService struct {
	Repo   repository.SalesRepository
	Logger *zap.Logger
}

// Trend aggregates gross revenue per month over [start, end] (inclusive
// dates) and attaches the requested smoothing series. Unknown metric values
// return the base series only; an empty range returns empty slices for every
// field regardless of metric.
func (s *TrendService) Trend(ctx context.Context, start, end time.Time, metric string, window int) (TrendSeries, error) {
	if s == nil || s.Repo == nil {
		return emptyTrendSeries(), nil
	}
	if window <= 0 {
		window = analytics.DefaultWindow
	}

	from := start.UTC()
	until := end.UTC().AddDate(0, 0, 1)
	lines, err := s.Repo.ListOrderLines(ctx, &from, &until)
	if err != nil {
		return TrendSeries{}, err
	}

	buckets := analytics.AggregateMonthly(lines, analytics.GrossRevenue)
	if len(buckets) == 0 {
		return emptyTrendSeries(), nil
	}

	out := emptyTrendSeries()
	for _, b := range buckets {
		out.Months = append(out.Months, b.Label())
		out.TotalRevenue = append(out.TotalRevenue, b.TotalRevenue)
		out.TotalQuantity = append(out.TotalQuantity, b.TotalQuantity)
	}

	revenue := analytics.RevenueSeries(buckets)
	if metric == MetricSMA {
		out.SMARevenue = analytics.FillMissing(analytics.SMA(revenue, window))
	}
	if metric == MetricEMA {
		out.EMARevenue = analytics.FillMissing(analytics.EMA(revenue, window))
	}
	return out, nil
}
