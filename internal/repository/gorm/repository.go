package gormrepository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"salesboard/internal/analytics"
	"salesboard/internal/models"
	"salesboard/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListOrderLines(ctx context.Context, start, end *time.Time) ([]analytics.OrderLine, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Table("order_items AS oi").
		Select(`o.occurred_at AS occurred_at,
			oi.quantity AS quantity,
			p.price AS unit_price,
			p.cost_price AS unit_cost,
			oi.product_id AS product_id,
			p.name AS product_name,
			p.category AS category,
			o.region AS region`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id")
	if start != nil && !start.IsZero() {
		query = query.Where("o.occurred_at >= ?", *start)
	}
	if end != nil && !end.IsZero() {
		query = query.Where("o.occurred_at < ?", *end)
	}
	var rows []analytics.OrderLine
	if err := query.Order("o.occurred_at asc, oi.id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ListOrders(ctx context.Context, start, end *time.Time) ([]repository.OrderRow, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Table("orders").
		Select("id, occurred_at, customer_email")
	if start != nil && !start.IsZero() {
		query = query.Where("occurred_at >= ?", *start)
	}
	if end != nil && !end.IsZero() {
		query = query.Where("occurred_at < ?", *end)
	}
	var rows []repository.OrderRow
	if err := query.Order("occurred_at asc, id asc").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Product
	if err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateReport(ctx context.Context, item *models.Report) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListReports(ctx context.Context) ([]models.Report, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Report
	if err := s.db.WithContext(ctx).
		Model(&models.Report{}).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) DeleteReportByID(ctx context.Context, id uint64) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Report{})
	return res.RowsAffected, res.Error
}

func (s *Store) UpsertOverviewSnapshot(ctx context.Context, item *models.OverviewSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_revenue",
			"total_sales",
			"updated_at",
		}),
	}).Create(item).Error
}

func (s *Store) ListOverviewSnapshots(ctx context.Context, limit int) ([]models.OverviewSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 365 {
		limit = 90
	}
	var items []models.OverviewSnapshot
	if err := s.db.WithContext(ctx).
		Model(&models.OverviewSnapshot{}).
		Order("date desc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
