package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"salesboard/internal/models"
	"salesboard/internal/repository"
)

// SnapshotService persists the "today" overview totals once per scheduler
// tick so the dashboard can chart day-over-day movement without re-running
// the aggregation over history.
type SnapshotService struct {
	Repo     repository.Repository
	Overview *OverviewService
	Logger   *zap.Logger
	Now      func() time.Time
}

func (s *SnapshotService) RunOnce(ctx context.Context) error {
	if s == nil || s.Repo == nil || s.Overview == nil {
		return nil
	}
	now := time.Now().UTC()
	if s.Now != nil {
		now = s.Now()
	}

	overview, err := s.Overview.Overview(ctx, RangeToday)
	if err != nil {
		return err
	}

	snap := &models.OverviewSnapshot{
		Date:         midnightUTC(now),
		TotalRevenue: overview.TotalRevenue,
		TotalSales:   overview.TotalSales,
	}
	if err := s.Repo.UpsertOverviewSnapshot(ctx, snap); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("overview snapshot saved",
			zap.String("date", snap.Date.Format("2006-01-02")),
			zap.String("total_revenue", snap.TotalRevenue.String()),
			zap.Int64("total_sales", snap.TotalSales),
		)
	}
	return nil
}
