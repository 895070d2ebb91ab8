package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipesKey is the blob key holding the recipe collection
const RecipesKey = "recipes"

// RecipeRepository persists the whole recipe collection as one JSON blob
type RecipeRepository struct {
	db  *gorm.DB
	obs Observer
	key string
}

// Load returns every stored recipe. A missing blob is an empty collection.
func (r *RecipeRepository) Load(ctx context.Context) ([]model.Recipe, error) {
	defer r.obs.TrackDBOperation("recipe_load")(time.Now())

	var blob model.Blob
	err := r.db.WithContext(ctx).Where("blob_key = ?", r.key).First(&blob).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []model.Recipe{}, nil
	}
	if err != nil {
		return nil, err
	}

	var recipes []model.Recipe
	if len(blob.Data) == 0 {
		return []model.Recipe{}, nil
	}
	if err := json.Unmarshal(blob.Data, &recipes); err != nil {
		return nil, fmt.Errorf("decode %s blob: %w", r.key, err)
	}
	return recipes, nil
}

// SaveAll overwrites the stored collection with recipes
func (r *RecipeRepository) SaveAll(ctx context.Context, recipes []model.Recipe) error {
	defer r.obs.TrackDBOperation("recipe_save_all")(time.Now())

	if recipes == nil {
		recipes = []model.Recipe{}
	}
	data, err := json.Marshal(recipes)
	if err != nil {
		return fmt.Errorf("encode %s blob: %w", r.key, err)
	}

	blob := model.Blob{Key: r.key, Data: datatypes.JSON(data), UpdatedAt: time.Now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&blob).Error
}
