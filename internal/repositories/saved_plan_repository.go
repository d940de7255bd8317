package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripscout/internal/models/db_models"
)

type ISavedPlanRepository interface {
	Create(ctx context.Context, plan *db_models.SavedPlan) error
	GetByShareCode(ctx context.Context, code string) (*db_models.SavedPlan, error)
}

type SavedPlanRepository struct {
	db *gorm.DB
}

func NewSavedPlanRepository(db *gorm.DB) ISavedPlanRepository {
	return &SavedPlanRepository{db: db}
}

func (r *SavedPlanRepository) Create(ctx context.Context, plan *db_models.SavedPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *SavedPlanRepository) GetByShareCode(ctx context.Context, code string) (*db_models.SavedPlan, error) {
	var plan db_models.SavedPlan
	err := r.db.WithContext(ctx).First(&plan, "share_code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}
