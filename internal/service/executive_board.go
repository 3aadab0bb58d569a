package service

import (
	"context"

	"github.com/mateusfigmelo/msc-backend/internal/model"
)

// ExecutiveBoardRepository is the persistence surface the board service needs.
type ExecutiveBoardRepository interface {
	Create(ctx context.Context, board *model.ExecutiveBoard) error
	FindByID(ctx context.Context, id uint) (*model.ExecutiveBoard, error)
	FindAll(ctx context.Context) ([]model.ExecutiveBoard, error)
	AddMember(ctx context.Context, boardID uint, member *model.BoardMember) error
	UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.ExecutiveBoard, error)
	SoftDelete(ctx context.Context, id uint, deletedBy *string) (*model.ExecutiveBoard, error)
}

// BoardMemberRequest carries the fields of a new board member. ImageURL is
// filled in by the controller when a photo was uploaded.
type BoardMemberRequest struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	ImageURL string `json:"imageUrl"`
	LinkedIn string `json:"linkedIn"`
}

// ExecutiveBoardService manages the yearly leadership rosters.
type ExecutiveBoardService struct {
	repo ExecutiveBoardRepository
}

// NewExecutiveBoardService returns a service backed by repo.
func NewExecutiveBoardService(repo ExecutiveBoardRepository) *ExecutiveBoardService {
	return &ExecutiveBoardService{repo: repo}
}

// Create stores a new board for the given year.
func (s *ExecutiveBoardService) Create(ctx context.Context, year string, createdBy *string) (*model.ExecutiveBoard, error) {
	if year == "" {
		return nil, Validation("year is required")
	}
	board := &model.ExecutiveBoard{Year: year, CreatedBy: createdBy}
	if err := s.repo.Create(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetByID fetches a board with its roster.
func (s *ExecutiveBoardService) GetByID(ctx context.Context, id uint) (*model.ExecutiveBoard, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every board, newest year first.
func (s *ExecutiveBoardService) List(ctx context.Context) ([]model.ExecutiveBoard, error) {
	return s.repo.FindAll(ctx)
}

// AddMember appends a member to the board's roster and stamps the board
// updated. The board must exist; the roster itself has no size limit.
func (s *ExecutiveBoardService) AddMember(ctx context.Context, boardID uint, req BoardMemberRequest, updatedBy *string) (*model.ExecutiveBoard, error) {
	if req.Name == "" {
		return nil, Validation("name is required")
	}
	if req.Position == "" {
		return nil, Validation("position is required")
	}
	if _, err := s.repo.FindByID(ctx, boardID); err != nil {
		return nil, err
	}
	member := &model.BoardMember{
		Name:      req.Name,
		Position:  req.Position,
		ImageURL:  req.ImageURL,
		LinkedIn:  req.LinkedIn,
		CreatedBy: updatedBy,
	}
	if err := s.repo.AddMember(ctx, boardID, member); err != nil {
		return nil, err
	}
	return s.repo.UpdateByID(ctx, boardID, map[string]interface{}{"updated_by": updatedBy})
}

// Update merges the supplied fields into the board record.
func (s *ExecutiveBoardService) Update(ctx context.Context, id uint, year string, updatedBy *string) (*model.ExecutiveBoard, error) {
	fields := map[string]interface{}{"updated_by": updatedBy}
	if year != "" {
		fields["year"] = year
	}
	return s.repo.UpdateByID(ctx, id, fields)
}

// Delete soft-deletes the board, recording who removed it.
func (s *ExecutiveBoardService) Delete(ctx context.Context, id uint, deletedBy *string) (*model.ExecutiveBoard, error) {
	return s.repo.SoftDelete(ctx, id, deletedBy)
}
