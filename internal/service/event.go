package service

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/mateusfigmelo/msc-backend/internal/model"
)

// EventRepository is the persistence surface the event service needs.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	FindByID(ctx context.Context, id uint) (*model.Event, error)
	FindAll(ctx context.Context) ([]model.Event, error)
	FindByType(ctx context.Context, eventType string) ([]model.Event, error)
	UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.Event, error)
	SoftDelete(ctx context.Context, id uint, deletedBy *string) (*model.Event, error)
	Recover(ctx context.Context, id uint) (*model.Event, error)
	DeletePermanently(ctx context.Context, id uint) error
	FindAllForAdmin(ctx context.Context) ([]model.Event, error)
	FindDeletedForAdmin(ctx context.Context) ([]model.Event, error)
}

// EventRequest carries the fields of an event create or update. ImageURL is
// filled in by the controller from the asset-storage collaborator before the
// service sees the request.
type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	DateTime    time.Time `json:"dateTime"`
	Tags        []string  `json:"tags"`
	Link        string    `json:"link"`
	EventType   string    `json:"eventType"`
}

// EventService wraps event persistence with validation and the upcoming-item
// selection rule.
type EventService struct {
	repo EventRepository
}

// NewEventService returns a service backed by repo.
func NewEventService(repo EventRepository) *EventService {
	return &EventService{repo: repo}
}

// Create validates and stores a new event.
func (s *EventService) Create(ctx context.Context, req EventRequest, createdBy *string) (*model.Event, error) {
	if err := validateContentRequest(req.Title, req.Description, req.ImageURL, req.DateTime, req.EventType); err != nil {
		return nil, err
	}
	event := &model.Event{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		DateTime:    req.DateTime,
		Tags:        pq.StringArray(req.Tags),
		Link:        req.Link,
		EventType:   req.EventType,
		CreatedBy:   createdBy,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetByID fetches a single active event.
func (s *EventService) GetByID(ctx context.Context, id uint) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all active events.
func (s *EventService) List(ctx context.Context) ([]model.Event, error) {
	return s.repo.FindAll(ctx)
}

// ListPast returns active events typed past.
func (s *EventService) ListPast(ctx context.Context) ([]model.Event, error) {
	return s.repo.FindByType(ctx, model.ContentTypePast)
}

// Upcoming returns the single surfaced upcoming event. Multiple events may be
// typed upcoming; the most recently inserted one wins.
func (s *EventService) Upcoming(ctx context.Context) (*model.Event, error) {
	events, err := s.repo.FindByType(ctx, model.ContentTypeUpcoming)
	if err != nil {
		return nil, err
	}
	return latestEvent(events)
}

// Update merges the supplied fields into the event and stamps updatedBy.
func (s *EventService) Update(ctx context.Context, id uint, req EventRequest, updatedBy *string) (*model.Event, error) {
	fields := contentUpdateFields(req.Title, req.Description, req.ImageURL, req.DateTime, req.Link, updatedBy)
	if req.EventType != "" {
		if err := validateContentType(req.EventType); err != nil {
			return nil, err
		}
		fields["event_type"] = req.EventType
	}
	if len(req.Tags) > 0 {
		fields["tags"] = pq.StringArray(req.Tags)
	}
	return s.repo.UpdateByID(ctx, id, fields)
}

// Delete soft-deletes the event, recording who removed it.
func (s *EventService) Delete(ctx context.Context, id uint, deletedBy *string) (*model.Event, error) {
	return s.repo.SoftDelete(ctx, id, deletedBy)
}

// Recover restores a soft-deleted event into default listings.
func (s *EventService) Recover(ctx context.Context, id uint) (*model.Event, error) {
	return s.repo.Recover(ctx, id)
}

// DeletePermanently removes the event with no recovery path.
func (s *EventService) DeletePermanently(ctx context.Context, id uint) error {
	return s.repo.DeletePermanently(ctx, id)
}

// ListForAdmin returns the active events for the admin console.
func (s *EventService) ListForAdmin(ctx context.Context) ([]model.Event, error) {
	return s.repo.FindAllForAdmin(ctx)
}

// ListDeletedForAdmin returns the soft-deleted events for the admin console.
func (s *EventService) ListDeletedForAdmin(ctx context.Context) ([]model.Event, error) {
	return s.repo.FindDeletedForAdmin(ctx)
}

// latestEvent picks the most recently inserted event, by primary key order.
func latestEvent(events []model.Event) (*model.Event, error) {
	if len(events) == 0 {
		return nil, NotFound("upcoming event")
	}
	latest := events[0]
	for _, event := range events[1:] {
		if event.ID > latest.ID {
			latest = event
		}
	}
	return &latest, nil
}

func validateContentType(contentType string) *Error {
	if contentType != model.ContentTypePast && contentType != model.ContentTypeUpcoming {
		return Validation("type must be past or upcoming")
	}
	return nil
}

func validateContentRequest(title, description, imageURL string, dateTime time.Time, contentType string) *Error {
	switch {
	case title == "":
		return Validation("title is required")
	case description == "":
		return Validation("description is required")
	case imageURL == "":
		return Validation("imageUrl is required")
	case dateTime.IsZero():
		return Validation("dateTime is required")
	}
	return validateContentType(contentType)
}

func contentUpdateFields(title, description, imageURL string, dateTime time.Time, link string, updatedBy *string) map[string]interface{} {
	fields := map[string]interface{}{"updated_by": updatedBy}
	if title != "" {
		fields["title"] = title
	}
	if description != "" {
		fields["description"] = description
	}
	if imageURL != "" {
		fields["image_url"] = imageURL
	}
	if !dateTime.IsZero() {
		fields["date_time"] = dateTime
	}
	if link != "" {
		fields["link"] = link
	}
	return fields
}
