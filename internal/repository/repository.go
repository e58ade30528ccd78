package repository

import (
	"context"
	"time"

	"salesboard/internal/analytics"
	"salesboard/internal/models"
)

// OrderRow is the order-level projection used for customer analysis.
type OrderRow struct {
	ID            uint64
	OccurredAt    time.Time
	CustomerEmail string
}

// SalesRepository is the record source behind every analytical path. Range
// bounds are half-open instants [start, end); nil means unbounded. Callers
// that want inclusive-date semantics pass endDate+1d. Filtering is applied
// here and nowhere else.
type SalesRepository interface {
	ListOrderLines(ctx context.Context, start, end *time.Time) ([]analytics.OrderLine, error)
	ListOrders(ctx context.Context, start, end *time.Time) ([]OrderRow, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, item *models.Report) error
	ListReports(ctx context.Context) ([]models.Report, error)
	DeleteReportByID(ctx context.Context, id uint64) (int64, error)
}

type SnapshotRepository interface {
	UpsertOverviewSnapshot(ctx context.Context, item *models.OverviewSnapshot) error
	ListOverviewSnapshots(ctx context.Context, limit int) ([]models.OverviewSnapshot, error)
}

type Repository interface {
	SalesRepository
	ReportRepository
	SnapshotRepository
}
