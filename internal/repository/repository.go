package repository

import (
	"time"

	"gorm.io/gorm"
)

// Observer records database operation timings
type Observer interface {
	TrackDBOperation(operationType string) func(startTime time.Time)
}

type noopObserver struct{}

func (noopObserver) TrackDBOperation(string) func(time.Time) { return func(time.Time) {} }

// Repositories bundles the gorm-backed collaborators
type Repositories struct {
	Inputs   *InputRepository
	Products *ProductRepository
	Finance  *FinanceRepository
	Sales    *SalesRepository
	Recipes  *RecipeRepository
}

// New builds every repository over db. obs may be nil.
func New(db *gorm.DB, obs Observer) *Repositories {
	if obs == nil {
		obs = noopObserver{}
	}
	return &Repositories{
		Inputs:   &InputRepository{db: db, obs: obs},
		Products: &ProductRepository{db: db, obs: obs},
		Finance:  &FinanceRepository{db: db, obs: obs},
		Sales:    &SalesRepository{db: db, obs: obs},
		Recipes:  &RecipeRepository{db: db, obs: obs, key: RecipesKey},
	}
}
