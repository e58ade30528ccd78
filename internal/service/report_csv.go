package service

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"salesboard/internal/analytics"
	"salesboard/internal/repository"
)

const (
	ReportSalesSummary    = "sales-summary"
	ReportProductAnalysis = "product-analysis"
)

type ReportService struct {
	Repo   repository.SalesRepository
	Logger *zap.Logger
}

// Generate builds the CSV rows for reportType over the optional [from, to]
// inclusive date range. An unrecognized type yields no rows; the handler
// still answers with attachment headers and an empty body.
func (s *ReportService) Generate(ctx context.Context, reportType string, from, to *time.Time) ([][]string, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	start, end := rangeBounds(from, to)
	switch reportType {
	case ReportSalesSummary:
		return s.salesSummary(ctx, start, end)
	case ReportProductAnalysis:
		return s.productAnalysis(ctx, start, end)
	default:
		return nil, nil
	}
}

func rangeBounds(from, to *time.Time) (*time.Time, *time.Time) {
	var start, end *time.Time
	if from != nil {
		t := from.UTC()
		start = &t
	}
	if to != nil {
		t := to.UTC().AddDate(0, 0, 1)
		end = &t
	}
	return start, end
}

func (s *ReportService) salesSummary(ctx context.Context, start, end *time.Time) ([][]string, error) {
	lines, err := s.Repo.ListOrderLines(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rows := [][]string{
		{"Sales Performance Overview"},
		{"Section", "Metric", "Value"},
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(analytics.GrossRevenue(line))
	}
	count := int64(len(lines))
	avg := decimal.Zero
	if count > 0 {
		avg = total.Div(decimal.NewFromInt(count))
	}
	rows = append(rows,
		[]string{"Sales Performance Overview", "Total Sales Price", total.String()},
		[]string{"", "Total Sales", strconv.FormatInt(count, 10)},
		[]string{"", "Average Sale Value", avg.String()},
	)

	rows = append(rows, nil,
		[]string{"Detailed Sales Breakdown by Product"},
		[]string{"Product", "Units Sold", "Total Sales Price"})
	rows = append(rows, breakdownRows(lines, func(l analytics.OrderLine) string { return l.ProductName })...)

	rows = append(rows, nil,
		[]string{"Detailed Sales Breakdown by Category"},
		[]string{"Category", "Units Sold", "Total Sales Price"})
	rows = append(rows, breakdownRows(lines, func(l analytics.OrderLine) string { return l.Category })...)

	rows = append(rows, nil,
		[]string{"Detailed Sales Breakdown by Region"},
		[]string{"Region", "Units Sold", "Total Sales Price"})
	rows = append(rows, breakdownRows(lines, func(l analytics.OrderLine) string { return l.Region })...)

	customerRows, err := s.customerAnalysis(ctx, start, end)
	if err != nil {
		return nil, err
	}
	rows = append(rows, nil)
	rows = append(rows, customerRows...)
	return rows, nil
}

func (s *ReportService) customerAnalysis(ctx context.Context, start, end *time.Time) ([][]string, error) {
	// "New customers" counts orders since the lower bound with no upper
	// bound; that matches the historical report, odd as it reads.
	newOrders, err := s.Repo.ListOrders(ctx, start, nil)
	if err != nil {
		return nil, err
	}
	rangedOrders, err := s.Repo.ListOrders(ctx, start, end)
	if err != nil {
		return nil, err
	}

	ordersByEmail := make(map[string]int)
	for _, o := range rangedOrders {
		ordersByEmail[o.CustomerEmail]++
	}
	repeat := int64(0)
	for _, n := range ordersByEmail {
		if n > 1 {
			repeat++
		}
	}
	newCount := int64(len(newOrders))
	retention := decimal.Zero
	if newCount > 0 {
		retention = decimal.NewFromInt(repeat * 100).Div(decimal.NewFromInt(newCount))
	}

	return [][]string{
		{"Customer Analysis"},
		{"Metric", "Value"},
		{"Number of New Customers", strconv.FormatInt(newCount, 10)},
		{"Repeat Customers", strconv.FormatInt(repeat, 10)},
		{"Customer Retention Rate (%)", retention.String()},
	}, nil
}

func (s *ReportService) productAnalysis(ctx context.Context, start, end *time.Time) ([][]string, error) {
	lines, err := s.Repo.ListOrderLines(ctx, start, end)
	if err != nil {
		return nil, err
	}

	rows := [][]string{
		{"Product Performance Overview"},
		{"Section", "Product", "Units Sold", "Total Sales Price"},
	}
	for _, r := range breakdownRows(lines, func(l analytics.OrderLine) string { return l.ProductName }) {
		rows = append(rows, append([]string{"Product Performance Overview"}, r...))
	}

	rows = append(rows, nil,
		[]string{"Product Sales Trends"},
		[]string{"Date", "Units Sold", "Total Sales Price"})
	rows = append(rows, dailyTrendRows(lines)...)

	rows = append(rows, nil,
		[]string{"Product Category Analysis"},
		[]string{"Category", "Units Sold", "Total Sales Price"})
	rows = append(rows, breakdownRows(lines, func(l analytics.OrderLine) string { return l.Category })...)

	products, err := s.Repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	rows = append(rows, nil,
		[]string{"Inventory and Restock Analysis"},
		[]string{"Product", "Current Stock", "Restock Threshold", "Last Restocked"})
	for _, p := range products {
		restocked := ""
		if p.LastRestockedAt != nil {
			restocked = p.LastRestockedAt.UTC().Format("2006-01-02")
		}
		rows = append(rows, []string{
			p.Name,
			strconv.Itoa(p.StockQuantity),
			strconv.Itoa(p.RestockThreshold),
			restocked,
		})
	}
	return rows, nil
}

// breakdownRows sums units and gross sales price per key, descending by
// sales price.
func breakdownRows(lines []analytics.OrderLine, key func(analytics.OrderLine) string) [][]string {
	type entry struct {
		name     string
		quantity int64
		revenue  decimal.Decimal
	}
	byKey := make(map[string]*entry)
	for _, line := range lines {
		k := key(line)
		e, ok := byKey[k]
		if !ok {
			e = &entry{name: k, revenue: decimal.Zero}
			byKey[k] = e
		}
		e.quantity += line.Quantity
		e.revenue = e.revenue.Add(analytics.GrossRevenue(line))
	}
	entries := make([]*entry, 0, len(byKey))
	for _, e := range byKey {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		cmp := entries[i].revenue.Cmp(entries[j].revenue)
		if cmp != 0 {
			return cmp > 0
		}
		return entries[i].name < entries[j].name
	})
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.name, strconv.FormatInt(e.quantity, 10), e.revenue.String()})
	}
	return rows
}

func dailyTrendRows(lines []analytics.OrderLine) [][]string {
	type entry struct {
		day      time.Time
		quantity int64
		revenue  decimal.Decimal
	}
	byDay := make(map[string]*entry)
	for _, line := range lines {
		day := line.OccurredAt.UTC().Truncate(24 * time.Hour)
		k := day.Format("2006-01-02")
		e, ok := byDay[k]
		if !ok {
			e = &entry{day: day, revenue: decimal.Zero}
			byDay[k] = e
		}
		e.quantity += line.Quantity
		e.revenue = e.revenue.Add(analytics.GrossRevenue(line))
	}
	entries := make([]*entry, 0, len(byDay))
	for _, e := range byDay {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].day.Before(entries[j].day) })
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.day.Format("01/02/06"), strconv.FormatInt(e.quantity, 10), e.revenue.String()})
	}
	return rows
}
