package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeLine is one (input, quantity) entry of a recipe.
// InputID is a weak reference; InputName and Unit are snapshots taken when
// the line was added so the line stays readable if the input goes away.
type RecipeLine struct {
	InputID   string          `json:"input_id"`
	InputName string          `json:"input_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

// Recipe is a bill of materials producing YieldQuantity units per batch
type Recipe struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	YieldQuantity int          `json:"yield_quantity"`
	Lines         []RecipeLine `json:"lines"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}
