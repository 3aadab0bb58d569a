package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateusfigmelo/msc-backend/internal/model"
	"github.com/mateusfigmelo/msc-backend/internal/service"
)

// EventRepository persists events. Default reads exclude soft-deleted rows;
// the admin-facing finders go through Unscoped explicitly.
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns a repository bound to db.
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return service.Persistence(err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.NotFound("event")
	}
	if err != nil {
		return nil, service.Persistence(err)
	}
	return &event, nil
}

func (r *EventRepository) FindAll(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return events, nil
}

func (r *EventRepository) FindByType(ctx context.Context, eventType string) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Where("event_type = ?", eventType).Order("id ASC").Find(&events).Error
	if err != nil {
		return nil, service.Persistence(err)
	}
	return events, nil
}

func (r *EventRepository) UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.Event, error) {
	event, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(event).Updates(fields).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return event, nil
}

// SoftDelete records the acting identity and flags the row deleted.
func (r *EventRepository) SoftDelete(ctx context.Context, id uint, deletedBy *string) (*model.Event, error) {
	event, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(event).Update("deleted_by", deletedBy).Error; err != nil {
		return nil, service.Persistence(err)
	}
	if err := r.db.WithContext(ctx).Delete(event).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return event, nil
}

// Recover clears the deleted flag so the event re-enters default listings.
func (r *EventRepository) Recover(ctx context.Context, id uint) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).Unscoped().First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.NotFound("event")
	}
	if err != nil {
		return nil, service.Persistence(err)
	}
	updates := map[string]interface{}{"deleted_at": nil, "deleted_by": nil}
	if err := r.db.WithContext(ctx).Unscoped().Model(&event).Updates(updates).Error; err != nil {
		return nil, service.Persistence(err)
	}
	event.DeletedAt = gorm.DeletedAt{}
	event.DeletedBy = nil
	return &event, nil
}

// DeletePermanently removes the row irreversibly, soft-deleted or not.
func (r *EventRepository) DeletePermanently(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Unscoped().Delete(&model.Event{}, id)
	if result.Error != nil {
		return service.Persistence(result.Error)
	}
	if result.RowsAffected == 0 {
		return service.NotFound("event")
	}
	return nil
}

// FindAllForAdmin returns active rows only, same as the public listing but
// kept separate so admin and public queries stay independently tunable.
func (r *EventRepository) FindAllForAdmin(ctx context.Context) ([]model.Event, error) {
	return r.FindAll(ctx)
}

// FindDeletedForAdmin returns only soft-deleted rows.
func (r *EventRepository) FindDeletedForAdmin(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Unscoped().Where("deleted_at IS NOT NULL").Order("created_at DESC").Find(&events).Error
	if err != nil {
		return nil, service.Persistence(err)
	}
	return events, nil
}
