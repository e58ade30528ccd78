package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func line(ts string, qty int64, price, cost string) OrderLine {
	t, err := time.Parse("2006-01-02", ts)
	if err != nil {
		panic(err)
	}
	return OrderLine{
		OccurredAt: t,
		Quantity:   qty,
		UnitPrice:  decimal.RequireFromString(price),
		UnitCost:   decimal.RequireFromString(cost),
	}
}

func TestAggregateMonthly_SingleMonth(t *testing.T) {
	lines := []OrderLine{
		line("2026-03-01", 2, "10.00", "4.00"),
		line("2026-03-15", 3, "5.00", "1.00"),
		line("2026-03-31", 1, "7.50", "2.00"),
	}
	buckets := AggregateMonthly(lines, GrossRevenue)
	if len(buckets) != 1 {
		t.Fatalf("buckets=%d want 1", len(buckets))
	}
	b := buckets[0]
	if b.Year != 2026 || b.Month != time.March {
		t.Fatalf("bucket key=%d-%d want 2026-3", b.Year, int(b.Month))
	}
	if b.TotalQuantity != 6 {
		t.Fatalf("quantity=%d want 6", b.TotalQuantity)
	}
	// 2*10 + 3*5 + 1*7.50
	if !b.TotalRevenue.Equal(decimal.RequireFromString("42.50")) {
		t.Fatalf("revenue=%s want 42.50", b.TotalRevenue)
	}
	if b.Label() != "2026-03" {
		t.Fatalf("label=%q want 2026-03", b.Label())
	}
}

func TestAggregateMonthly_GapMonthsOmitted(t *testing.T) {
	lines := []OrderLine{
		line("2026-03-10", 1, "10.00", "0"),
		line("2026-01-10", 1, "10.00", "0"),
		line("2026-06-10", 1, "10.00", "0"),
	}
	buckets := AggregateMonthly(lines, GrossRevenue)
	if len(buckets) != 3 {
		t.Fatalf("buckets=%d want 3 (no zero-filled gaps)", len(buckets))
	}
	want := []string{"2026-01", "2026-03", "2026-06"}
	for i, label := range want {
		if buckets[i].Label() != label {
			t.Fatalf("bucket[%d]=%q want %q", i, buckets[i].Label(), label)
		}
	}
}

func TestAggregateMonthly_GrossVersusMargin(t *testing.T) {
	lines := []OrderLine{
		line("2026-05-01", 4, "10.00", "6.00"),
	}
	gross := AggregateMonthly(lines, GrossRevenue)
	margin := AggregateMonthly(lines, Margin)
	if !gross[0].TotalRevenue.Equal(decimal.RequireFromString("40")) {
		t.Fatalf("gross=%s want 40", gross[0].TotalRevenue)
	}
	if !margin[0].TotalRevenue.Equal(decimal.RequireFromString("16")) {
		t.Fatalf("margin=%s want 16", margin[0].TotalRevenue)
	}
}

func TestAggregateMonthly_YearBoundaryOrder(t *testing.T) {
	lines := []OrderLine{
		line("2026-01-05", 1, "1.00", "0"),
		line("2025-12-28", 1, "1.00", "0"),
	}
	buckets := AggregateMonthly(lines, GrossRevenue)
	if len(buckets) != 2 {
		t.Fatalf("buckets=%d want 2", len(buckets))
	}
	if buckets[0].Label() != "2025-12" || buckets[1].Label() != "2026-01" {
		t.Fatalf("order=%q,%q want 2025-12,2026-01", buckets[0].Label(), buckets[1].Label())
	}
}

func TestAggregateMonthly_Empty(t *testing.T) {
	buckets := AggregateMonthly(nil, GrossRevenue)
	if buckets == nil {
		t.Fatalf("expected non-nil empty slice")
	}
	if len(buckets) != 0 {
		t.Fatalf("buckets=%d want 0", len(buckets))
	}
}

func TestRevenueSeries(t *testing.T) {
	lines := []OrderLine{
		line("2026-01-10", 1, "10.00", "0"),
		line("2026-02-10", 2, "10.00", "0"),
	}
	series := RevenueSeries(AggregateMonthly(lines, GrossRevenue))
	if len(series) != 2 {
		t.Fatalf("len=%d want 2", len(series))
	}
	if !series[0].Equal(decimal.RequireFromString("10")) || !series[1].Equal(decimal.RequireFromString("20")) {
		t.Fatalf("series=%v want [10 20]", series)
	}
}
