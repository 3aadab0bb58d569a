package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateusfigmelo/msc-backend/internal/model"
	"github.com/mateusfigmelo/msc-backend/internal/service"
)

// ApplicationRepository persists membership applications in Postgres.
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository returns a repository bound to db.
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	if err := r.db.WithContext(ctx).Create(app).Error; err != nil {
		return service.Persistence(err)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.NotFound("application")
	}
	if err != nil {
		return nil, service.Persistence(err)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindAll(ctx context.Context) ([]model.Application, error) {
	var apps []model.Application
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&apps).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return apps, nil
}

func (r *ApplicationRepository) FindByStatus(ctx context.Context, status string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at DESC").Find(&apps).Error
	if err != nil {
		return nil, service.Persistence(err)
	}
	return apps, nil
}

// UpdateByID merges fields into the stored application and returns the
// updated record. Missing records surface as not-found.
func (r *ApplicationRepository) UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.Application, error) {
	app, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(app).Updates(fields).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return app, nil
}
