package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"salesboard/internal/analytics"
	"salesboard/internal/models"
	"salesboard/internal/repository"
	"salesboard/internal/service"
)

type stubSales struct {
	lines []analytics.OrderLine
}

func (s *stubSales) ListOrderLines(context.Context, *time.Time, *time.Time) ([]analytics.OrderLine, error) {
	return s.lines, nil
}

func (s *stubSales) ListOrders(context.Context, *time.Time, *time.Time) ([]repository.OrderRow, error) {
	return nil, nil
}

func (s *stubSales) ListProducts(context.Context) ([]models.Product, error) {
	return nil, nil
}

func trendEngine(lines []analytics.OrderLine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := &TrendHandler{
		Trends:        &service.TrendService{Repo: &stubSales{lines: lines}},
		DefaultWindow: 3,
	}
	h.Register(engine)
	return engine
}

func monthLines() []analytics.OrderLine {
	mk := func(ts string, price string) analytics.OrderLine {
		t, _ := time.Parse("2006-01-02", ts)
		return analytics.OrderLine{OccurredAt: t, Quantity: 1, UnitPrice: decimal.RequireFromString(price)}
	}
	return []analytics.OrderLine{
		mk("2026-01-10", "10.00"),
		mk("2026-02-10", "20.00"),
		mk("2026-03-10", "30.00"),
	}
}

func doRequest(engine *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestTrendEndpoint_InvalidDate(t *testing.T) {
	engine := trendEngine(monthLines())
	for _, target := range []string{
		"/api/sales/trend",
		"/api/sales/trend?start_date=2026-01-01",
		"/api/sales/trend?start_date=01/01/2026&end_date=2026-03-31",
		"/api/sales/trend?start_date=2026-01-01&end_date=yesterday",
	} {
		w := doRequest(engine, target)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s status=%d want 400", target, w.Code)
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s body=%q: %v", target, w.Body.String(), err)
		}
		if resp["message"] != "Invalid date format. Use YYYY-MM-DD." {
			t.Fatalf("%s message=%q", target, resp["message"])
		}
	}
}

func TestTrendEndpoint_DefaultMetricSMA(t *testing.T) {
	engine := trendEngine(monthLines())
	w := doRequest(engine, "/api/sales/trend?start_date=2026-01-01&end_date=2026-03-31")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Code int                 `json:"code"`
		Data service.TrendSeries `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != 0 {
		t.Fatalf("code=%d want 0", resp.Code)
	}
	if len(resp.Data.Months) != 3 || len(resp.Data.SMARevenue) != 3 {
		t.Fatalf("months=%d sma=%d want 3,3", len(resp.Data.Months), len(resp.Data.SMARevenue))
	}
	if len(resp.Data.EMARevenue) != 0 {
		t.Fatalf("ema should be empty, got %v", resp.Data.EMARevenue)
	}
}

func TestTrendEndpoint_UnknownMetric(t *testing.T) {
	engine := trendEngine(monthLines())
	w := doRequest(engine, "/api/sales/trend?start_date=2026-01-01&end_date=2026-03-31&metric=BOGUS")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", w.Code)
	}
	var resp struct {
		Data service.TrendSeries `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Data.Months) != 3 {
		t.Fatalf("months=%d want 3", len(resp.Data.Months))
	}
	if len(resp.Data.SMARevenue) != 0 || len(resp.Data.EMARevenue) != 0 {
		t.Fatalf("smoothing fields should be empty, got %+v", resp.Data)
	}
}

func TestTrendEndpoint_EmptyStore(t *testing.T) {
	engine := trendEngine(nil)
	w := doRequest(engine, "/api/sales/trend?start_date=2026-01-01&end_date=2026-03-31&metric=EMA")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", w.Code)
	}
	// Empty slices must serialize as [], not null.
	var resp struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"months", "total_revenue", "total_quantity", "sma_revenue", "ema_revenue"} {
		raw, ok := resp.Data[field]
		if !ok {
			t.Fatalf("field %s missing", field)
		}
		if string(raw) != "[]" {
			t.Fatalf("field %s=%s want []", field, raw)
		}
	}
}
