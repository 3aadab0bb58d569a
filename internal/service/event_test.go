package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mateusfigmelo/msc-backend/internal/model"
)

type fakeEventRepo struct {
	nextID uint
	events map[uint]*model.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{nextID: 1, events: map[uint]*model.Event{}}
}

func (f *fakeEventRepo) Create(_ context.Context, event *model.Event) error {
	event.ID = f.nextID
	f.nextID++
	stored := *event
	f.events[event.ID] = &stored
	return nil
}

func (f *fakeEventRepo) FindByID(_ context.Context, id uint) (*model.Event, error) {
	event, ok := f.events[id]
	if !ok || event.DeletedAt.Valid {
		return nil, NotFound("event")
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) FindAll(_ context.Context) ([]model.Event, error) {
	var active []model.Event
	for _, event := range f.events {
		if !event.DeletedAt.Valid {
			active = append(active, *event)
		}
	}
	return active, nil
}

func (f *fakeEventRepo) FindByType(_ context.Context, eventType string) ([]model.Event, error) {
	var matched []model.Event
	for _, event := range f.events {
		if !event.DeletedAt.Valid && event.EventType == eventType {
			matched = append(matched, *event)
		}
	}
	return matched, nil
}

func (f *fakeEventRepo) UpdateByID(_ context.Context, id uint, fields map[string]interface{}) (*model.Event, error) {
	event, ok := f.events[id]
	if !ok || event.DeletedAt.Valid {
		return nil, NotFound("event")
	}
	if title, ok := fields["title"].(string); ok {
		event.Title = title
	}
	if eventType, ok := fields["event_type"].(string); ok {
		event.EventType = eventType
	}
	if updatedBy, ok := fields["updated_by"].(*string); ok {
		event.UpdatedBy = updatedBy
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) SoftDelete(_ context.Context, id uint, deletedBy *string) (*model.Event, error) {
	event, ok := f.events[id]
	if !ok || event.DeletedAt.Valid {
		return nil, NotFound("event")
	}
	event.DeletedBy = deletedBy
	event.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) Recover(_ context.Context, id uint) (*model.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, NotFound("event")
	}
	event.DeletedAt = gorm.DeletedAt{}
	event.DeletedBy = nil
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) DeletePermanently(_ context.Context, id uint) error {
	if _, ok := f.events[id]; !ok {
		return NotFound("event")
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) FindAllForAdmin(ctx context.Context) ([]model.Event, error) {
	return f.FindAll(ctx)
}

func (f *fakeEventRepo) FindDeletedForAdmin(_ context.Context) ([]model.Event, error) {
	var deleted []model.Event
	for _, event := range f.events {
		if event.DeletedAt.Valid {
			deleted = append(deleted, *event)
		}
	}
	return deleted, nil
}

func eventRequest(title, eventType string) EventRequest {
	return EventRequest{
		Title:       title,
		Description: "desc",
		ImageURL:    "http://assets/flyer.png",
		DateTime:    time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
		EventType:   eventType,
	}
}

// Given N upcoming events inserted in order, the upcoming view surfaces the
// last one inserted, not the first match.
func TestEventUpcomingPicksMostRecentlyInserted(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	titles := []string{"I1", "I2", "I3", "I4"}
	for _, title := range titles {
		_, err := svc.Create(context.Background(), eventRequest(title, model.ContentTypeUpcoming), nil)
		require.NoError(t, err)
	}
	// A past event in between must not interfere.
	_, err := svc.Create(context.Background(), eventRequest("old", model.ContentTypePast), nil)
	require.NoError(t, err)

	upcoming, err := svc.Upcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "I4", upcoming.Title)
}

func TestEventListPastExcludesUpcoming(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	_, err := svc.Create(context.Background(), eventRequest("hackathon", model.ContentTypePast), nil)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), eventRequest("meetup", model.ContentTypeUpcoming), nil)
	require.NoError(t, err)

	past, err := svc.ListPast(context.Background())
	require.NoError(t, err)
	require.Len(t, past, 1)
	assert.Equal(t, "hackathon", past[0].Title)
}

func TestEventSoftDeleteHidesFromPublicListing(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	admin := "admin-1"

	event, err := svc.Create(context.Background(), eventRequest("workshop", model.ContentTypePast), &admin)
	require.NoError(t, err)

	_, err = svc.Delete(context.Background(), event.ID, &admin)
	require.NoError(t, err)

	public, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, public)

	deleted, err := svc.ListDeletedForAdmin(context.Background())
	require.NoError(t, err)
	assert.Len(t, deleted, 1)
}

func TestEventUpdateStampsIdentity(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	editor := "admin-2"

	event, err := svc.Create(context.Background(), eventRequest("workshop", model.ContentTypeUpcoming), nil)
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), event.ID, EventRequest{Title: "workshop v2"}, &editor)
	require.NoError(t, err)
	assert.Equal(t, "workshop v2", updated.Title)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, editor, *updated.UpdatedBy)
}
