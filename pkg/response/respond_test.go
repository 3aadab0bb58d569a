package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var envelope Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Success(c, map[string]string{"hello": "world"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, "success", envelope.Status)
	assert.Empty(t, envelope.Message)
	assert.NotNil(t, envelope.Data)
}

func TestCreatedEnvelope(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Created(c, map[string]uint{"id": 1}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", decode(t, rec).Status)
}

func TestErrorEnvelope(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, http.StatusNotFound, "application not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "application not found", envelope.Message)
	assert.Nil(t, envelope.Data)
}

// A composite failure carries both the message and the already-persisted
// data, so the caller can reconcile partial state.
func TestErrorWithDataEnvelope(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, ErrorWithData(c, http.StatusInternalServerError, "mail failed", map[string]uint{"id": 7}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decode(t, rec)
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "mail failed", envelope.Message)
	assert.NotNil(t, envelope.Data)
}
