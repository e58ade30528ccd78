package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salesboard/internal/analytics"
	"salesboard/internal/repository"
)

const (
	RangeToday = "today"
	Range7Days = "7days"
	RangeAll   = "all"
)

type ProductSales struct {
	ProductName   string          `json:"product_name"`
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

type Overview struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalSales     int64           `json:"total_sales"`
	MoneyGrowth    decimal.Decimal `json:"money_growth"`
	SalesGrowth    decimal.Decimal `json:"sales_growth"`
	SalesByProduct []ProductSales  `json:"sales_by_product"`
}

type OverviewService struct {
	Repo   repository.SalesRepository
	Logger *zap.Logger
	Now    func() time.Time
}

func (s *OverviewService) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// windowStart resolves a date_range value to an inclusive lower bound. "all"
// means unbounded; anything unrecognized falls back to "today".
func windowStart(dateRange string, now time.Time) *time.Time {
	switch dateRange {
	case RangeAll:
		return nil
	case Range7Days:
		start := midnightUTC(now).AddDate(0, 0, -7)
		return &start
	default:
		start := midnightUTC(now)
		return &start
	}
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overview sums gross revenue and line-item count over the selected window
// and breaks sales down per product, descending by revenue.
func (s *OverviewService) Overview(ctx context.Context, dateRange string) (Overview, error) {
	out := Overview{
		TotalRevenue: decimal.Zero,
		// Growth fields are placeholders; no historical comparison is
		// computed anywhere, the dashboard contract just expects them.
		MoneyGrowth:    decimal.Zero,
		SalesGrowth:    decimal.Zero,
		SalesByProduct: []ProductSales{},
	}
	if s == nil || s.Repo == nil {
		return out, nil
	}

	start := windowStart(dateRange, s.now())
	lines, err := s.Repo.ListOrderLines(ctx, start, nil)
	if err != nil {
		return Overview{}, err
	}

	byProduct := make(map[string]*ProductSales)
	for _, line := range lines {
		revenue := analytics.GrossRevenue(line)
		out.TotalRevenue = out.TotalRevenue.Add(revenue)
		out.TotalSales++

		entry, ok := byProduct[line.ProductName]
		if !ok {
			entry = &ProductSales{ProductName: line.ProductName, TotalRevenue: decimal.Zero}
			byProduct[line.ProductName] = entry
		}
		entry.TotalQuantity += line.Quantity
		entry.TotalRevenue = entry.TotalRevenue.Add(revenue)
	}

	for _, entry := range byProduct {
		out.SalesByProduct = append(out.SalesByProduct, *entry)
	}
	sort.Slice(out.SalesByProduct, func(i, j int) bool {
		cmp := out.SalesByProduct[i].TotalRevenue.Cmp(out.SalesByProduct[j].TotalRevenue)
		if cmp != 0 {
			return cmp > 0
		}
		return out.SalesByProduct[i].ProductName < out.SalesByProduct[j].ProductName
	})
	return out, nil
}
