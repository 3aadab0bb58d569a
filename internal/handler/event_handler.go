package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mateusfigmelo/msc-backend/internal/middleware"
	"github.com/mateusfigmelo/msc-backend/internal/service"
	"github.com/mateusfigmelo/msc-backend/pkg/logger"
	"github.com/mateusfigmelo/msc-backend/pkg/response"
	"github.com/mateusfigmelo/msc-backend/pkg/storage"
	"github.com/mateusfigmelo/msc-backend/prometheus"
)

const eventFlyerDirectory = "event-flyers"

// EventHandler exposes event CRUD, the upcoming/past views and the two-tier
// deletion flow over HTTP.
type EventHandler struct {
	service  *service.EventService
	uploader storage.Uploader
}

// NewEventHandler wires the handler with its collaborators.
func NewEventHandler(svc *service.EventService, uploader storage.Uploader) *EventHandler {
	return &EventHandler{service: svc, uploader: uploader}
}

// Create stores a new event. The flyer image is uploaded to the asset store
// first; its reference becomes the event's imageUrl.
func (h *EventHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	req, err := h.bindRequest(c)
	if err != nil {
		log.Warn("Invalid event payload", zap.Error(err))
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}

	event, err := h.service.Create(c.Request().Context(), req, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordEventOperation("create")
	log.Info("Event created", zap.Uint("event_id", event.ID), zap.String("title", event.Title))
	return response.Created(c, event)
}

// GetByID returns one active event.
func (h *EventHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "eventId")
	if err != nil {
		return respondError(c, err)
	}
	event, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, event)
}

// List returns all active events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, events)
}

// ListPast returns active events typed past.
func (h *EventHandler) ListPast(c echo.Context) error {
	events, err := h.service.ListPast(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, events)
}

// Upcoming returns the single surfaced upcoming event.
func (h *EventHandler) Upcoming(c echo.Context) error {
	event, err := h.service.Upcoming(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, event)
}

// Update merges the supplied fields into the event. A new flyer, when
// uploaded, replaces the stored imageUrl.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := parseID(c, "eventId")
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.bindRequest(c)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}
	event, err := h.service.Update(c.Request().Context(), id, req, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordEventOperation("update")
	return response.Success(c, event)
}

// Delete soft-deletes the event.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "eventId")
	if err != nil {
		return respondError(c, err)
	}
	event, err := h.service.Delete(c.Request().Context(), id, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordEventOperation("soft_delete")
	return response.Success(c, event)
}

// Recover restores a soft-deleted event.
func (h *EventHandler) Recover(c echo.Context) error {
	id, err := parseID(c, "eventId")
	if err != nil {
		return respondError(c, err)
	}
	event, err := h.service.Recover(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordEventOperation("recover")
	return response.Success(c, event)
}

// DeletePermanently removes the event irreversibly.
func (h *EventHandler) DeletePermanently(c echo.Context) error {
	id, err := parseID(c, "eventId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeletePermanently(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	prometheus.RecordEventOperation("permanent_delete")
	return response.Success(c, echo.Map{"message": "event deleted permanently"})
}

// ListForAdmin returns active events for the admin console.
func (h *EventHandler) ListForAdmin(c echo.Context) error {
	events, err := h.service.ListForAdmin(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, events)
}

// ListDeletedForAdmin returns soft-deleted events for the admin console.
func (h *EventHandler) ListDeletedForAdmin(c echo.Context) error {
	events, err := h.service.ListDeletedForAdmin(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, events)
}

// bindRequest accepts either a JSON body or a multipart form with an attached
// flyer. The uploaded flyer's stored reference wins over any imageUrl field.
func (h *EventHandler) bindRequest(c echo.Context) (service.EventRequest, error) {
	var req service.EventRequest

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return req, c.Bind(&req)
	}

	dateTime, err := parseDateTime(c.FormValue("dateTime"))
	if err != nil {
		return req, err
	}
	req = service.EventRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		ImageURL:    c.FormValue("imageUrl"),
		DateTime:    dateTime,
		Link:        c.FormValue("link"),
		EventType:   c.FormValue("eventType"),
	}
	if tags := c.FormValue("tags"); tags != "" {
		req.Tags = strings.Split(tags, ",")
	}

	imageURL, err := uploadFormImage(c, h.uploader, eventFlyerDirectory)
	if err != nil {
		return req, err
	}
	if imageURL != "" {
		req.ImageURL = imageURL
	}
	return req, nil
}
