package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/mateusfigmelo/msc-backend/internal/model"
	"github.com/mateusfigmelo/msc-backend/internal/service"
	"github.com/mateusfigmelo/msc-backend/pkg/logger"
	"github.com/mateusfigmelo/msc-backend/pkg/mailer"
	"github.com/mateusfigmelo/msc-backend/pkg/response"
	"github.com/mateusfigmelo/msc-backend/prometheus"
)

const applicationReceivedTemplate = "application-received.html"

// ApplicationHandler exposes the membership application workflow over HTTP.
type ApplicationHandler struct {
	service *service.ApplicationService
	mailer  mailer.Mailer
}

// NewApplicationHandler wires the handler with its collaborators.
func NewApplicationHandler(svc *service.ApplicationService, m mailer.Mailer) *ApplicationHandler {
	return &ApplicationHandler{service: svc, mailer: m}
}

// Submit creates a new application and dispatches the acknowledgement mail.
// The mail is sent only after the record is durable. A mail failure does not
// roll the record back: the response is a composite error carrying the
// already-persisted application so the caller can reconcile.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	log := logger.FromContext(c)

	var req service.ApplicationRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid application payload", zap.Error(err))
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}

	app, err := h.service.Submit(c.Request().Context(), req)
	if err != nil {
		log.Warn("Application submission rejected", zap.Error(err))
		return respondError(c, err)
	}
	prometheus.ApplicationSubmissionsCounter.Inc()
	log.Info("Application created",
		zap.Uint("application_id", app.ID),
		zap.String("student_id", app.StudentID))

	mailErr := h.mailer.Send(mailer.Message{
		Template: applicationReceivedTemplate,
		To:       app.Email,
		Subject:  "MS Club - Application Received",
		Data: map[string]interface{}{
			"studentId":           app.StudentID,
			"name":                app.Name,
			"email":               app.Email,
			"contactNumber":       app.ContactNumber,
			"currentAcademicYear": app.CurrentAcademicYear,
			"linkedIn":            app.LinkedIn,
			"gitHub":              app.GitHub,
			"skillsAndTalents":    app.SkillsAndTalents,
		},
	})
	if mailErr != nil {
		prometheus.NotificationFailuresCounter.Inc()
		log.Error("Acknowledgement mail failed after create",
			zap.Uint("application_id", app.ID),
			zap.Error(mailErr))
		return response.ErrorWithData(c, http.StatusInternalServerError, mailErr.Error(), app)
	}

	return response.Created(c, app)
}

// GetByID returns one application.
func (h *ApplicationHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "applicationId")
	if err != nil {
		return respondError(c, err)
	}
	app, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, app)
}

// List returns every application.
func (h *ApplicationHandler) List(c echo.Context) error {
	apps, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, apps)
}

// ListByStatus returns applications filtered by the :status route parameter.
func (h *ApplicationHandler) ListByStatus(c echo.Context) error {
	apps, err := h.service.ListByStatus(c.Request().Context(), c.Param("status"))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, apps)
}

// MoveToInterview moves the application to the interview status, merging any
// patch fields supplied in the body.
func (h *ApplicationHandler) MoveToInterview(c echo.Context) error {
	return h.patchTransition(c, "interview", h.service.MoveToInterview)
}

// MoveToSelected moves the application to the selected status, merging any
// patch fields supplied in the body.
func (h *ApplicationHandler) MoveToSelected(c echo.Context) error {
	return h.patchTransition(c, "selected", h.service.MoveToSelected)
}

// MoveToRejected moves the application to the rejected status.
func (h *ApplicationHandler) MoveToRejected(c echo.Context) error {
	id, err := parseID(c, "applicationId")
	if err != nil {
		return respondError(c, err)
	}
	app, err := h.service.MoveToRejected(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordTransition("rejected")
	return response.Success(c, app)
}

// Archive flags the application archived, whatever its status.
func (h *ApplicationHandler) Archive(c echo.Context) error {
	id, err := parseID(c, "applicationId")
	if err != nil {
		return respondError(c, err)
	}
	app, err := h.service.Archive(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, app)
}

type transitionFunc func(ctx context.Context, id uint, patch service.ApplicationPatch) (*model.Application, error)

func (h *ApplicationHandler) patchTransition(c echo.Context, toStatus string, apply transitionFunc) error {
	id, err := parseID(c, "applicationId")
	if err != nil {
		return respondError(c, err)
	}
	var patch service.ApplicationPatch
	if err := c.Bind(&patch); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}
	app, err := apply(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	prometheus.RecordTransition(toStatus)
	return response.Success(c, app)
}
