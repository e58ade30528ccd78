package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OverviewSnapshot is a once-a-day materialization of the "today" overview,
// written by the cron job so the dashboard can chart day-over-day totals.
type OverviewSnapshot struct {
	ID   uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Date time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`

	TotalRevenue decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"total_revenue"`
	TotalSales   int64           `gorm:"not null;default:0" json:"total_sales"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (OverviewSnapshot) TableName() string {
	return "overview_snapshots"
}
