package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusfigmelo/msc-backend/internal/model"
	"github.com/mateusfigmelo/msc-backend/internal/service"
	"github.com/mateusfigmelo/msc-backend/pkg/mailer"
	"github.com/mateusfigmelo/msc-backend/pkg/response"
	"github.com/mateusfigmelo/msc-backend/prometheus"
)

func init() {
	prometheus.InitMetrics(testMetricsConfig())
}

// --- fakes ---

type stubApplicationRepo struct {
	nextID uint
	apps   map[uint]*model.Application
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{nextID: 1, apps: map[uint]*model.Application{}}
}

func (s *stubApplicationRepo) Create(_ context.Context, app *model.Application) error {
	app.ID = s.nextID
	s.nextID++
	stored := *app
	s.apps[app.ID] = &stored
	return nil
}

func (s *stubApplicationRepo) FindByID(_ context.Context, id uint) (*model.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, service.NotFound("application")
	}
	copied := *app
	return &copied, nil
}

func (s *stubApplicationRepo) FindAll(_ context.Context) ([]model.Application, error) {
	var all []model.Application
	for _, app := range s.apps {
		all = append(all, *app)
	}
	return all, nil
}

func (s *stubApplicationRepo) FindByStatus(_ context.Context, status string) ([]model.Application, error) {
	var matched []model.Application
	for _, app := range s.apps {
		if app.Status == status {
			matched = append(matched, *app)
		}
	}
	return matched, nil
}

func (s *stubApplicationRepo) UpdateByID(_ context.Context, id uint, fields map[string]interface{}) (*model.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, service.NotFound("application")
	}
	if status, ok := fields["status"].(string); ok {
		app.Status = status
	}
	if archived, ok := fields["archived"].(bool); ok {
		app.Archived = archived
	}
	copied := *app
	return &copied, nil
}

type stubMailer struct {
	err  error
	sent []mailer.Message
}

func (s *stubMailer) Send(msg mailer.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

// --- helpers ---

const submissionBody = `{
	"name": "A",
	"studentId": "S1",
	"email": "a@x.com",
	"contactNumber": "0711234567",
	"currentAcademicYear": "3"
}`

func submit(t *testing.T, h *ApplicationHandler, body string) (*httptest.ResponseRecorder, response.Envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/application", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Submit(c))

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

// --- tests ---

func TestSubmitRespondsWithSuccessEnvelope(t *testing.T) {
	repo := newStubApplicationRepo()
	mail := &stubMailer{}
	h := NewApplicationHandler(service.NewApplicationService(repo), mail)

	rec, envelope := submit(t, h, submissionBody)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", envelope.Status)
	assert.Empty(t, envelope.Message)
	assert.NotNil(t, envelope.Data)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "a@x.com", mail.sent[0].To)
}

// A mail failure after a durable create yields a composite error response:
// error status, the mail failure message, and the already-persisted record.
// The record itself stays retrievable.
func TestSubmitMailFailureKeepsRecord(t *testing.T) {
	repo := newStubApplicationRepo()
	mail := &stubMailer{err: errors.New("smtp connection refused")}
	h := NewApplicationHandler(service.NewApplicationService(repo), mail)

	rec, envelope := submit(t, h, submissionBody)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", envelope.Status)
	assert.Contains(t, envelope.Message, "smtp connection refused")
	assert.NotNil(t, envelope.Data, "composite error must carry the persisted record")

	// Creation durability is independent of the notification outcome.
	require.Len(t, repo.apps, 1)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	getRec := httptest.NewRecorder()
	c := e.NewContext(req, getRec)
	c.SetParamNames("applicationId")
	c.SetParamValues("1")

	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusOK, getRec.Code)
}

func TestSubmitValidationFailureCreatesNothing(t *testing.T) {
	repo := newStubApplicationRepo()
	mail := &stubMailer{}
	h := NewApplicationHandler(service.NewApplicationService(repo), mail)

	rec, envelope := submit(t, h, `{"name":"A"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "error", envelope.Status)
	assert.Empty(t, repo.apps)
	assert.Empty(t, mail.sent, "no mail without a durable record")
}

func TestTransitionEndpointsRespondWithUpdatedRecord(t *testing.T) {
	repo := newStubApplicationRepo()
	h := NewApplicationHandler(service.NewApplicationService(repo), &stubMailer{})

	_, envelope := submit(t, h, submissionBody)
	require.Equal(t, "success", envelope.Status)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("applicationId")
	c.SetParamValues("1")

	require.NoError(t, h.MoveToInterview(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	data, err := json.Marshal(updated.Data)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"interview"`)
}

func TestTransitionMissingRecordIsNotFound(t *testing.T) {
	h := NewApplicationHandler(service.NewApplicationService(newStubApplicationRepo()), &stubMailer{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("applicationId")
	c.SetParamValues("99")

	require.NoError(t, h.MoveToRejected(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
}
