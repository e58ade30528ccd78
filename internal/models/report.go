package models

import (
	"time"

	"gorm.io/datatypes"
)

type Report struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string         `gorm:"type:varchar(100);not null" json:"title"`
	ReportType string         `gorm:"type:varchar(50);not null;index" json:"report_type"`
	Params     datatypes.JSON `gorm:"type:jsonb" json:"params"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Report) TableName() string {
	return "reports"
}
