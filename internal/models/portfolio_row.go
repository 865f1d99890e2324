package models

import (
	"time"

	"gorm.io/datatypes"
)

// PortfolioRow is one sheet row persisted by the SQL store backend.
type PortfolioRow struct {
	ID       uint64            `gorm:"primaryKey;autoIncrement"`
	Position int               `gorm:"not null;index"`
	Fields   datatypes.JSONMap `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (PortfolioRow) TableName() string {
	return "portfolio_rows"
}

// PortfolioLayout keeps the sheet's column order; there is a single row with ID 1.
type PortfolioLayout struct {
	ID      uint64         `gorm:"primaryKey"`
	Columns datatypes.JSON `gorm:"not null"`

	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (PortfolioLayout) TableName() string {
	return "portfolio_layouts"
}
