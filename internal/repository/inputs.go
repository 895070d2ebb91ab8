package repository

import (
	"context"
	"time"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"gorm.io/gorm"
)

// InputRepository is the input catalog
type InputRepository struct {
	db  *gorm.DB
	obs Observer
}

func (r *InputRepository) List(ctx context.Context) ([]model.Input, error) {
	defer r.obs.TrackDBOperation("input_list")(time.Now())

	var inputs []model.Input
	if err := r.db.WithContext(ctx).Order("name").Find(&inputs).Error; err != nil {
		return nil, err
	}
	return inputs, nil
}

func (r *InputRepository) Create(ctx context.Context, in *model.Input) error {
	defer r.obs.TrackDBOperation("input_create")(time.Now())
	return r.db.WithContext(ctx).Create(in).Error
}
