package analytics

import (
	"testing"

	"github.com/shopspring/decimal"
)

func decimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		out = append(out, decimal.RequireFromString(v))
	}
	return out
}

func TestSMA_WindowThree(t *testing.T) {
	out := SMA(decimals("10", "20", "30"), 3)
	if len(out) != 3 {
		t.Fatalf("len=%d want 3", len(out))
	}
	if out[0] != nil || out[1] != nil {
		t.Fatalf("leading values should be nil, got %v %v", out[0], out[1])
	}
	if out[2] == nil || !out[2].Equal(decimal.RequireFromString("20")) {
		t.Fatalf("out[2]=%v want 20", out[2])
	}
}

func TestSMA_SeriesShorterThanWindow(t *testing.T) {
	out := SMA(decimals("10", "20"), 3)
	for i, v := range out {
		if v != nil {
			t.Fatalf("out[%d]=%v want nil", i, v)
		}
	}
	filled := FillMissing(out)
	for i, v := range filled {
		if !v.IsZero() {
			t.Fatalf("filled[%d]=%s want 0", i, v)
		}
	}
}

func TestSMA_Rolling(t *testing.T) {
	out := SMA(decimals("10", "20", "30", "60"), 2)
	want := []string{"", "15", "25", "45"}
	for i, w := range want {
		if w == "" {
			if out[i] != nil {
				t.Fatalf("out[%d]=%v want nil", i, out[i])
			}
			continue
		}
		if out[i] == nil || !out[i].Equal(decimal.RequireFromString(w)) {
			t.Fatalf("out[%d]=%v want %s", i, out[i], w)
		}
	}
}

func TestEMA_SpanThree(t *testing.T) {
	out := EMA(decimals("10", "20", "30"), 3)
	want := []string{"10", "15", "22.5"}
	for i, w := range want {
		if out[i] == nil || !out[i].Equal(decimal.RequireFromString(w)) {
			t.Fatalf("out[%d]=%v want %s", i, out[i], w)
		}
	}
}

func TestEMA_FirstValueEqualsInput(t *testing.T) {
	for _, span := range []int{1, 2, 3, 5, 12} {
		out := EMA(decimals("42.5", "1", "99"), span)
		if out[0] == nil || !out[0].Equal(decimal.RequireFromString("42.5")) {
			t.Fatalf("span=%d out[0]=%v want 42.5", span, out[0])
		}
	}
}

func TestEMA_NoNilPositions(t *testing.T) {
	out := EMA(decimals("1", "2", "3", "4", "5"), 4)
	for i, v := range out {
		if v == nil {
			t.Fatalf("out[%d] is nil", i)
		}
	}
}

func TestFillMissing(t *testing.T) {
	twenty := decimal.RequireFromString("20")
	filled := FillMissing([]*decimal.Decimal{nil, nil, &twenty})
	want := decimals("0", "0", "20")
	if len(filled) != len(want) {
		t.Fatalf("len=%d want %d", len(filled), len(want))
	}
	for i := range want {
		if !filled[i].Equal(want[i]) {
			t.Fatalf("filled[%d]=%s want %s", i, filled[i], want[i])
		}
	}
}

func TestSmooth_EmptySeries(t *testing.T) {
	if out := SMA(nil, 3); len(out) != 0 {
		t.Fatalf("sma len=%d want 0", len(out))
	}
	if out := EMA(nil, 3); len(out) != 0 {
		t.Fatalf("ema len=%d want 0", len(out))
	}
	if out := FillMissing(nil); len(out) != 0 {
		t.Fatalf("fill len=%d want 0", len(out))
	}
}
