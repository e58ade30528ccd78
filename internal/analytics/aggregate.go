package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// MonthBucket holds one calendar month's totals. Buckets exist only for
// months with at least one contributing line; calendar gaps are not
// zero-filled, so a trailing window of 3 means 3 buckets, not 3 months.
type MonthBucket struct {
	Year          int
	Month         time.Month
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
}

// Label renders the bucket key as "YYYY-MM".
func (b MonthBucket) Label() string {
	return fmt.Sprintf("%04d-%02d", b.Year, int(b.Month))
}

type monthKey struct {
	year  int
	month time.Month
}

// AggregateMonthly groups order lines by calendar month of OccurredAt and
// sums quantity and revenue per bucket, ascending by month. Input is assumed
// already range-filtered by the record source; no filtering happens here.
// An empty input yields an empty, non-nil slice.
func AggregateMonthly(lines []OrderLine, revenue RevenueFunc) []MonthBucket {
	byMonth := make(map[monthKey]*MonthBucket)
	for _, line := range lines {
		key := monthKey{year: line.OccurredAt.Year(), month: line.OccurredAt.Month()}
		bucket, ok := byMonth[key]
		if !ok {
			bucket = &MonthBucket{
				Year:         key.year,
				Month:        key.month,
				TotalRevenue: decimal.Zero,
			}
			byMonth[key] = bucket
		}
		bucket.TotalQuantity += line.Quantity
		bucket.TotalRevenue = bucket.TotalRevenue.Add(revenue(line))
	}

	out := make([]MonthBucket, 0, len(byMonth))
	for _, bucket := range byMonth {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// RevenueSeries extracts the per-bucket revenue values in bucket order.
func RevenueSeries(buckets []MonthBucket) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, b.TotalRevenue)
	}
	return out
}
