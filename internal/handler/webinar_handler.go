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

const webinarFlyerDirectory = "webinar-flyers"

// WebinarHandler exposes webinar CRUD, the upcoming/past views and the
// two-tier deletion flow over HTTP.
type WebinarHandler struct {
	service  *service.WebinarService
	uploader storage.Uploader
}

// NewWebinarHandler wires the handler with its collaborators.
func NewWebinarHandler(svc *service.WebinarService, uploader storage.Uploader) *WebinarHandler {
	return &WebinarHandler{service: svc, uploader: uploader}
}

// Create stores a new webinar, uploading the flyer to the asset store first.
func (h *WebinarHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	req, err := h.bindRequest(c)
	if err != nil {
		log.Warn("Invalid webinar payload", zap.Error(err))
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}

	webinar, err := h.service.Create(c.Request().Context(), req, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordWebinarOperation("create")
	log.Info("Webinar created", zap.Uint("webinar_id", webinar.ID), zap.String("title", webinar.Title))
	return response.Created(c, webinar)
}

// GetByID returns one active webinar.
func (h *WebinarHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "webinarId")
	if err != nil {
		return respondError(c, err)
	}
	webinar, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, webinar)
}

// List returns all active webinars.
func (h *WebinarHandler) List(c echo.Context) error {
	webinars, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, webinars)
}

// ListPast returns active webinars typed past.
func (h *WebinarHandler) ListPast(c echo.Context) error {
	webinars, err := h.service.ListPast(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, webinars)
}

// Upcoming returns the single surfaced upcoming webinar.
func (h *WebinarHandler) Upcoming(c echo.Context) error {
	webinar, err := h.service.Upcoming(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, webinar)
}

// Update merges the supplied fields into the webinar.
func (h *WebinarHandler) Update(c echo.Context) error {
	id, err := parseID(c, "webinarId")
	if err != nil {
		return respondError(c, err)
	}
	req, err := h.bindRequest(c)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}
	webinar, err := h.service.Update(c.Request().Context(), id, req, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordWebinarOperation("update")
	return response.Success(c, webinar)
}

// Delete soft-deletes the webinar.
func (h *WebinarHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "webinarId")
	if err != nil {
		return respondError(c, err)
	}
	webinar, err := h.service.Delete(c.Request().Context(), id, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordWebinarOperation("soft_delete")
	return response.Success(c, webinar)
}

// Recover restores a soft-deleted webinar.
func (h *WebinarHandler) Recover(c echo.Context) error {
	id, err := parseID(c, "webinarId")
	if err != nil {
		return respondError(c, err)
	}
	webinar, err := h.service.Recover(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordWebinarOperation("recover")
	return response.Success(c, webinar)
}

// DeletePermanently removes the webinar irreversibly.
func (h *WebinarHandler) DeletePermanently(c echo.Context) error {
	id, err := parseID(c, "webinarId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.service.DeletePermanently(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	prometheus.RecordWebinarOperation("permanent_delete")
	return response.Success(c, echo.Map{"message": "webinar deleted permanently"})
}

// ListForAdmin returns active webinars for the admin console.
func (h *WebinarHandler) ListForAdmin(c echo.Context) error {
	webinars, err := h.service.ListForAdmin(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, webinars)
}

// ListDeletedForAdmin returns soft-deleted webinars for the admin console.
func (h *WebinarHandler) ListDeletedForAdmin(c echo.Context) error {
	webinars, err := h.service.ListDeletedForAdmin(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, webinars)
}

func (h *WebinarHandler) bindRequest(c echo.Context) (service.WebinarRequest, error) {
	var req service.WebinarRequest

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		return req, c.Bind(&req)
	}

	dateTime, err := parseDateTime(c.FormValue("dateTime"))
	if err != nil {
		return req, err
	}
	req = service.WebinarRequest{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		ImageURL:    c.FormValue("imageUrl"),
		DateTime:    dateTime,
		Link:        c.FormValue("link"),
		WebinarType: c.FormValue("webinarType"),
	}
	if tags := c.FormValue("tags"); tags != "" {
		req.Tags = strings.Split(tags, ",")
	}

	imageURL, err := uploadFormImage(c, h.uploader, webinarFlyerDirectory)
	if err != nil {
		return req, err
	}
	if imageURL != "" {
		req.ImageURL = imageURL
	}
	return req, nil
}
