package models

import (
	"time"
)

type Order struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"`

	// OccurredAt is the authoritative timestamp for monthly bucketing.
	OccurredAt    time.Time `gorm:"type:timestamptz;not null;index" json:"occurred_at"`
	CustomerEmail string    `gorm:"type:varchar(255);index" json:"customer_email"`
	Region        string    `gorm:"type:varchar(100);index" json:"region"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint64 `gorm:"not null;index" json:"order_id"`
	ProductID uint64 `gorm:"not null;index" json:"product_id"`
	Quantity  int64  `gorm:"not null" json:"quantity"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
