package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog listing.
type Product struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Description *string         `gorm:"column:description;type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	Category    string          `gorm:"column:category;not null" json:"category"`
	Image       *string         `gorm:"column:image" json:"image,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
