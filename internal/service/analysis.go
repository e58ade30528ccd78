package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"salesboard/internal/analytics"
	"salesboard/internal/repository"
)

const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendFlat    = "flat"
)

// SalesAnalysis summarizes the margin-based monthly series: which way it
// moved across the period and where its extremes sit.
type SalesAnalysis struct {
	TrendLine        string `json:"trend_line"`
	TimePeriod       string `json:"time_period"`
	TrendDirection   string `json:"trend_direction"`
	PeakSalesMonth   string `json:"peak_sales_month"`
	LowestSalesMonth string `json:"lowest_sales_month"`
}

type AnalysisService struct {
	Repo   repository.SalesRepository
	Logger *zap.Logger
}

// Analyze aggregates margin (not gross revenue) per month over [start, end]
// inclusive dates. An empty range yields a nil result, not an error.
func (s *AnalysisService) Analyze(ctx context.Context, start, end time.Time) (*SalesAnalysis, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}

	from := start.UTC()
	until := end.UTC().AddDate(0, 0, 1)
	lines, err := s.Repo.ListOrderLines(ctx, &from, &until)
	if err != nil {
		return nil, err
	}

	buckets := analytics.AggregateMonthly(lines, analytics.Margin)
	if len(buckets) == 0 {
		return nil, nil
	}

	first, last := buckets[0], buckets[len(buckets)-1]
	direction := TrendFlat
	switch cmp := last.TotalRevenue.Cmp(first.TotalRevenue); {
	case cmp > 0:
		direction = TrendRising
	case cmp < 0:
		direction = TrendFalling
	}

	peak, lowest := buckets[0], buckets[0]
	for _, b := range buckets[1:] {
		if b.TotalRevenue.Cmp(peak.TotalRevenue) > 0 {
			peak = b
		}
		if b.TotalRevenue.Cmp(lowest.TotalRevenue) < 0 {
			lowest = b
		}
	}

	return &SalesAnalysis{
		TrendLine:        "margin",
		TimePeriod:       first.Label() + " to " + last.Label(),
		TrendDirection:   direction,
		PeakSalesMonth:   peak.Label(),
		LowestSalesMonth: lowest.Label(),
	}, nil
}
