package repository

import (
	"context"
	"time"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"gorm.io/gorm"
)

// FinanceRepository is the financial ledger
type FinanceRepository struct {
	db  *gorm.DB
	obs Observer
}

func (r *FinanceRepository) List(ctx context.Context) ([]model.FinancialEntry, error) {
	defer r.obs.TrackDBOperation("finance_list")(time.Now())

	var entries []model.FinancialEntry
	if err := r.db.WithContext(ctx).Order("created_at").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *FinanceRepository) Create(ctx context.Context, e *model.FinancialEntry) error {
	defer r.obs.TrackDBOperation("finance_create")(time.Now())
	return r.db.WithContext(ctx).Create(e).Error
}

// SalesRepository is the sales ledger
type SalesRepository struct {
	db  *gorm.DB
	obs Observer
}

func (r *SalesRepository) List(ctx context.Context) ([]model.SaleRecord, error) {
	defer r.obs.TrackDBOperation("sales_list")(time.Now())

	var sales []model.SaleRecord
	if err := r.db.WithContext(ctx).Order("created_at").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *SalesRepository) Create(ctx context.Context, s *model.SaleRecord) error {
	defer r.obs.TrackDBOperation("sales_create")(time.Now())
	return r.db.WithContext(ctx).Create(s).Error
}
