package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(100);not null;index" json:"name"`
	Category string `gorm:"type:varchar(50);index" json:"category"`

	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	CostPrice decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"cost_price"`

	StockQuantity    int        `gorm:"not null;default:0" json:"stock_quantity"`
	RestockThreshold int        `gorm:"not null;default:0" json:"restock_threshold"`
	LastRestockedAt  *time.Time `gorm:"type:timestamptz" json:"last_restocked_at"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
