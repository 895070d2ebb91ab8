package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"gorm.io/gorm"
)

// ProductRepository is the product store
type ProductRepository struct {
	db  *gorm.DB
	obs Observer
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	defer r.obs.TrackDBOperation("product_list")(time.Now())

	var products []model.Product
	if err := r.db.WithContext(ctx).Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns the product with id. found is false for an unknown id.
func (r *ProductRepository) Get(ctx context.Context, id string) (p model.Product, found bool, err error) {
	defer r.obs.TrackDBOperation("product_get")(time.Now())

	err = r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, false, nil
	}
	if err != nil {
		return model.Product{}, false, err
	}
	return p, true, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	defer r.obs.TrackDBOperation("product_create")(time.Now())
	return r.db.WithContext(ctx).Create(p).Error
}

// Update applies patch to the product with id. It reports whether a row
// matched; an unknown id is not an error.
func (r *ProductRepository) Update(ctx context.Context, id string, patch model.ProductPatch) (bool, error) {
	defer r.obs.TrackDBOperation("product_update")(time.Now())

	cols := patch.Columns()
	if len(cols) == 0 {
		var count int64
		err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	}

	result := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(cols)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
