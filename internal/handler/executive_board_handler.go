package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mateusfigmelo/msc-backend/internal/middleware"
	"github.com/mateusfigmelo/msc-backend/internal/service"
	"github.com/mateusfigmelo/msc-backend/pkg/response"
	"github.com/mateusfigmelo/msc-backend/pkg/storage"
)

const boardMemberPhotoDirectory = "boardmember-photos"

// ExecutiveBoardHandler exposes the yearly leadership rosters over HTTP.
type ExecutiveBoardHandler struct {
	service  *service.ExecutiveBoardService
	uploader storage.Uploader
}

// NewExecutiveBoardHandler wires the handler with its collaborators.
func NewExecutiveBoardHandler(svc *service.ExecutiveBoardService, uploader storage.Uploader) *ExecutiveBoardHandler {
	return &ExecutiveBoardHandler{service: svc, uploader: uploader}
}

// Create stores a new board for a year.
func (h *ExecutiveBoardHandler) Create(c echo.Context) error {
	var body struct {
		Year string `json:"year"`
	}
	if err := c.Bind(&body); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}
	board, err := h.service.Create(c.Request().Context(), body.Year, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	return response.Created(c, board)
}

// GetByID returns a board with its roster.
func (h *ExecutiveBoardHandler) GetByID(c echo.Context) error {
	id, err := parseID(c, "executiveBoardId")
	if err != nil {
		return respondError(c, err)
	}
	board, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, board)
}

// List returns every board, newest year first.
func (h *ExecutiveBoardHandler) List(c echo.Context) error {
	boards, err := h.service.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, boards)
}

// AddMember appends a member to the board's roster, uploading the member's
// photo when one is attached.
func (h *ExecutiveBoardHandler) AddMember(c echo.Context) error {
	id, err := parseID(c, "executiveBoardId")
	if err != nil {
		return respondError(c, err)
	}

	req := service.BoardMemberRequest{
		Name:     c.FormValue("name"),
		Position: c.FormValue("position"),
		LinkedIn: c.FormValue("linkedIn"),
	}
	if req.Name == "" && req.Position == "" {
		// Not a form request; fall back to JSON.
		if err := c.Bind(&req); err != nil {
			return response.Error(c, http.StatusBadRequest, "invalid request data")
		}
	}

	imageURL, err := uploadFormImage(c, h.uploader, boardMemberPhotoDirectory)
	if err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}
	if imageURL != "" {
		req.ImageURL = imageURL
	}

	board, err := h.service.AddMember(c.Request().Context(), id, req, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, board)
}

// Update merges the supplied fields into the board record.
func (h *ExecutiveBoardHandler) Update(c echo.Context) error {
	id, err := parseID(c, "executiveBoardId")
	if err != nil {
		return respondError(c, err)
	}
	var body struct {
		Year string `json:"year"`
	}
	if err := c.Bind(&body); err != nil {
		return response.Error(c, http.StatusBadRequest, "invalid request data")
	}
	board, err := h.service.Update(c.Request().Context(), id, body.Year, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, board)
}

// Delete soft-deletes the board.
func (h *ExecutiveBoardHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "executiveBoardId")
	if err != nil {
		return respondError(c, err)
	}
	board, err := h.service.Delete(c.Request().Context(), id, middleware.Identity(c))
	if err != nil {
		return respondError(c, err)
	}
	return response.Success(c, board)
}
