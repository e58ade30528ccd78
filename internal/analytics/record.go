package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLine is one sold unit-line as read from the store. The pipeline never
// mutates these rows; unit price and cost come from the joined product.
type OrderLine struct {
	OccurredAt  time.Time
	Quantity    int64
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
	ProductID   uint64
	ProductName string
	Category    string
	Region      string
}

// RevenueFunc selects the money semantic for an order line. The schema carries
// two of them under the same "revenue" name at different call sites, so every
// caller picks one explicitly instead of the package guessing.
type RevenueFunc func(OrderLine) decimal.Decimal

// GrossRevenue is quantity x unit price. Used by the trend endpoint, the
// overview and the CSV reports.
func GrossRevenue(l OrderLine) decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Margin is quantity x (unit price - unit cost). Used by the sales-analysis
// path only.
func Margin(l OrderLine) decimal.Decimal {
	return l.UnitPrice.Sub(l.UnitCost).Mul(decimal.NewFromInt(l.Quantity))
}
