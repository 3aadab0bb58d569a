package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateusfigmelo/msc-backend/internal/model"
	"github.com/mateusfigmelo/msc-backend/internal/service"
)

// WebinarRepository persists webinars with the same two-tier deletion
// semantics as events.
type WebinarRepository struct {
	db *gorm.DB
}

// NewWebinarRepository returns a repository bound to db.
func NewWebinarRepository(db *gorm.DB) *WebinarRepository {
	return &WebinarRepository{db: db}
}

func (r *WebinarRepository) Create(ctx context.Context, webinar *model.Webinar) error {
	if err := r.db.WithContext(ctx).Create(webinar).Error; err != nil {
		return service.Persistence(err)
	}
	return nil
}

func (r *WebinarRepository) FindByID(ctx context.Context, id uint) (*model.Webinar, error) {
	var webinar model.Webinar
	err := r.db.WithContext(ctx).First(&webinar, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.NotFound("webinar")
	}
	if err != nil {
		return nil, service.Persistence(err)
	}
	return &webinar, nil
}

func (r *WebinarRepository) FindAll(ctx context.Context) ([]model.Webinar, error) {
	var webinars []model.Webinar
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&webinars).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return webinars, nil
}

func (r *WebinarRepository) FindByType(ctx context.Context, webinarType string) ([]model.Webinar, error) {
	var webinars []model.Webinar
	err := r.db.WithContext(ctx).Where("webinar_type = ?", webinarType).Order("id ASC").Find(&webinars).Error
	if err != nil {
		return nil, service.Persistence(err)
	}
	return webinars, nil
}

func (r *WebinarRepository) UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.Webinar, error) {
	webinar, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(webinar).Updates(fields).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return webinar, nil
}

func (r *WebinarRepository) SoftDelete(ctx context.Context, id uint, deletedBy *string) (*model.Webinar, error) {
	webinar, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(webinar).Update("deleted_by", deletedBy).Error; err != nil {
		return nil, service.Persistence(err)
	}
	if err := r.db.WithContext(ctx).Delete(webinar).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return webinar, nil
}

func (r *WebinarRepository) Recover(ctx context.Context, id uint) (*model.Webinar, error) {
	var webinar model.Webinar
	err := r.db.WithContext(ctx).Unscoped().First(&webinar, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.NotFound("webinar")
	}
	if err != nil {
		return nil, service.Persistence(err)
	}
	updates := map[string]interface{}{"deleted_at": nil, "deleted_by": nil}
	if err := r.db.WithContext(ctx).Unscoped().Model(&webinar).Updates(updates).Error; err != nil {
		return nil, service.Persistence(err)
	}
	webinar.DeletedAt = gorm.DeletedAt{}
	webinar.DeletedBy = nil
	return &webinar, nil
}

func (r *WebinarRepository) DeletePermanently(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&model.Webinar{}, id)
	if result.Error != nil {
		return service.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return service.NotFound("webinar")
	}
	return nil
}

func (r *WebinarRepository) FindAllForAdmin(ctx context.Context) ([]model.Webinar, error) {
	return r.FindAll(ctx)
}

func (r *WebinarRepository) FindDeletedForAdmin(ctx context.Context) ([]model.Webinar, error) {
	var webinars []model.Webinar
	err := r.db.WithContext(ctx).Unscoped().Where("deleted_at IS NOT NULL").Order("created_at DESC").Find(&webinars).Error
	if err != nil {
		return nil, service.Persistence(err)
	}
	return webinars, nil
}
