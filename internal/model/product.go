package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents the sellable product master data
type Product struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string          `json:"name" gorm:"type:varchar(255);not null"`
	Category      string          `json:"category" gorm:"type:varchar(100);index"`
	Description   string          `json:"description" gorm:"type:text"`
	UnitPrice     decimal.Decimal `json:"unit_price" gorm:"type:decimal(14,2);not null;default:0"`
	StockQuantity int             `json:"stock_quantity" gorm:"not null;default:0"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BeforeCreate assigns an id when the caller did not supply one
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProductPatch carries the fields a stock adjustment may change.
// Nil fields are left untouched.
type ProductPatch struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Description   *string          `json:"description,omitempty"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty"`
}

// Columns returns the patch as a column map for a partial update
func (p ProductPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.UnitPrice != nil {
		cols["unit_price"] = *p.UnitPrice
	}
	if p.StockQuantity != nil {
		cols["stock_quantity"] = *p.StockQuantity
	}
	return cols
}

// Validate rejects patches that would break the product invariants
func (p ProductPatch) Validate() error {
	if p.UnitPrice != nil && p.UnitPrice.IsNegative() {
		return errors.New("unit_price must not be negative")
	}
	if p.StockQuantity != nil && *p.StockQuantity < 0 {
		return errors.New("stock_quantity must not be negative")
	}
	return nil
}
