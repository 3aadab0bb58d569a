package service

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/mateusfigmelo/msc-backend/internal/model"
)

// WebinarRepository is the persistence surface the webinar service needs.
type WebinarRepository interface {
	Create(ctx context.Context, webinar *model.Webinar) error
	FindByID(ctx context.Context, id uint) (*model.Webinar, error)
	FindAll(ctx context.Context) ([]model.Webinar, error)
	FindByType(ctx context.Context, webinarType string) ([]model.Webinar, error)
	UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.Webinar, error)
	SoftDelete(ctx context.Context, id uint, deletedBy *string) (*model.Webinar, error)
	Recover(ctx context.Context, id uint) (*model.Webinar, error)
	DeletePermanently(ctx context.Context, id uint) error
	FindAllForAdmin(ctx context.Context) ([]model.Webinar, error)
	FindDeletedForAdmin(ctx context.Context) ([]model.Webinar, error)
}

// WebinarRequest carries the fields of a webinar create or update.
type WebinarRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	DateTime    time.Time `json:"dateTime"`
	Tags        []string  `json:"tags"`
	Link        string    `json:"link"`
	WebinarType string    `json:"webinarType"`
}

// WebinarService wraps webinar persistence with validation, the upcoming-item
// selection rule and the two-tier deletion flow.
type WebinarService struct {
	repo WebinarRepository
}

// NewWebinarService returns a service backed by repo.
func NewWebinarService(repo WebinarRepository) *WebinarService {
	return &WebinarService{repo: repo}
}

// Create validates and stores a new webinar.
func (s *WebinarService) Create(ctx context.Context, req WebinarRequest, createdBy *string) (*model.Webinar, error) {
	if err := validateContentRequest(req.Title, req.Description, req.ImageURL, req.DateTime, req.WebinarType); err != nil {
		return nil, err
	}
	webinar := &model.Webinar{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DateTime:    req.DateTime,
		Tags:        pq.StringArray(req.Tags),
		Link:        req.Link,
		WebinarType: req.WebinarType,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, webinar); err != nil {
		return nil, err
	}
	return webinar, nil
}

// GetByID fetches a single active webinar.
func (s *WebinarService) GetByID(ctx context.Context, id uint) (*model.Webinar, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all active webinars.
func (s *WebinarService) List(ctx context.Context) ([]model.Webinar, error) {
	return s.repo.FindAll(ctx)
}

// ListPast returns active webinars typed past.
func (s *WebinarService) ListPast(ctx context.Context) ([]model.Webinar, error) {
	return s.repo.FindByType(ctx, model.ContentTypePast)
}

// Upcoming returns the single surfaced upcoming webinar: the most recently
// inserted one among those typed upcoming.
func (s *WebinarService) Upcoming(ctx context.Context) (*model.Webinar, error) {
	webinars, err := s.repo.FindByType(ctx, model.ContentTypeUpcoming)
	if err != nil {
		return nil, err
	}
	if len(webinars) == 0 {
		return nil, NotFound("upcoming webinar")
	}
	latest := webinars[0]
	for _, webinar := range webinars[1:] {
		if webinar.ID > latest.ID {
			latest = webinar
		}
	}
	return &latest, nil
}

// Update merges the supplied fields into the webinar and stamps updatedBy.
func (s *WebinarService) Update(ctx context.Context, id uint, req WebinarRequest, updatedBy *string) (*model.Webinar, error) {
	fields := contentUpdateFields(req.Title, req.Description, req.ImageURL, req.DateTime, req.Link, updatedBy)
	if req.WebinarType != "" {
		if err := validateContentType(req.WebinarType); err != nil {
			return nil, err
		}
		fields["webinar_type"] = req.WebinarType
	}
	if len(req.Tags) > 0 {
		fields["tags"] = pq.StringArray(req.Tags)
	}
	return s.repo.UpdateByID(ctx, id, fields)
}

// Delete soft-deletes the webinar, recording who removed it.
func (s *WebinarService) Delete(ctx context.Context, id uint, deletedBy *string) (*model.Webinar, error) {
	return s.repo.SoftDelete(ctx, id, deletedBy)
}

// Recover restores a soft-deleted webinar into default listings.
func (s *WebinarService) Recover(ctx context.Context, id uint) (*model.Webinar, error) {
	return s.repo.Recover(ctx, id)
}

// DeletePermanently removes the webinar with no recovery path.
func (s *WebinarService) DeletePermanently(ctx context.Context, id uint) error {
	return s.repo.DeletePermanently(ctx, id)
}

// ListForAdmin returns the active webinars for the admin console.
func (s *WebinarService) ListForAdmin(ctx context.Context) ([]model.Webinar, error) {
	return s.repo.FindAllForAdmin(ctx)
}

// ListDeletedForAdmin returns the soft-deleted webinars for the admin console.
func (s *WebinarService) ListDeletedForAdmin(ctx context.Context) ([]model.Webinar, error) {
	return s.repo.FindDeletedForAdmin(ctx)
}
