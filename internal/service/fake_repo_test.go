package service

import (
	"context"
	"time"

	"salesboard/internal/analytics"
	"salesboard/internal/models"
	"salesboard/internal/repository"
)

// fakeRepo serves canned rows and applies the same half-open range filtering
// the gorm store does.
type fakeRepo struct {
	lines    []analytics.OrderLine
	orders   []repository.OrderRow
	products []models.Product
	err      error

	snapshots []models.OverviewSnapshot

	lastStart *time.Time
	lastEnd   *time.Time
}

func (f *fakeRepo) ListOrderLines(_ context.Context, start, end *time.Time) ([]analytics.OrderLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastStart, f.lastEnd = start, end
	var out []analytics.OrderLine
	for _, l := range f.lines {
		if start != nil && l.OccurredAt.Before(*start) {
			continue
		}
		if end != nil && !l.OccurredAt.Before(*end) {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeRepo) ListOrders(_ context.Context, start, end *time.Time) ([]repository.OrderRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []repository.OrderRow
	for _, o := range f.orders {
		if start != nil && o.OccurredAt.Before(*start) {
			continue
		}
		if end != nil && !o.OccurredAt.Before(*end) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeRepo) ListProducts(context.Context) ([]models.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeRepo) CreateReport(_ context.Context, item *models.Report) error { return f.err }

func (f *fakeRepo) ListReports(context.Context) ([]models.Report, error) { return nil, f.err }

func (f *fakeRepo) DeleteReportByID(context.Context, uint64) (int64, error) { return 0, f.err }

func (f *fakeRepo) UpsertOverviewSnapshot(_ context.Context, item *models.OverviewSnapshot) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.snapshots {
		if f.snapshots[i].Date.Equal(item.Date) {
			f.snapshots[i] = *item
			return nil
		}
	}
	f.snapshots = append(f.snapshots, *item)
	return nil
}

func (f *fakeRepo) ListOverviewSnapshots(context.Context, int) ([]models.OverviewSnapshot, error) {
	return f.snapshots, f.err
}

func mustDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}
