package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mateusfigmelo/msc-backend/internal/model"
	"github.com/mateusfigmelo/msc-backend/internal/service"
)

// ExecutiveBoardRepository persists yearly boards and their members.
type ExecutiveBoardRepository struct {
	db *gorm.DB
}

// NewExecutiveBoardRepository returns a repository bound to db.
func NewExecutiveBoardRepository(db *gorm.DB) *ExecutiveBoardRepository {
	return &ExecutiveBoardRepository{db: db}
}

func (r *ExecutiveBoardRepository) Create(ctx context.Context, board *model.ExecutiveBoard) error {
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return service.Persistence(err)
	}
	return nil
}

func (r *ExecutiveBoardRepository) FindByID(ctx context.Context, id uint) (*model.ExecutiveBoard, error) {
	var board model.ExecutiveBoard
	err := r.db.WithContext(ctx).Preload("Board").First(&board, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, service.NotFound("executive board")
	}
	if err != nil {
		return nil, service.Persistence(err)
	}
	return &board, nil
}

func (r *ExecutiveBoardRepository) FindAll(ctx context.Context) ([]model.ExecutiveBoard, error) {
	var boards []model.ExecutiveBoard
	err := r.db.WithContext(ctx).Preload("Board").Order("year DESC").Find(&boards).Error
	if err != nil {
		return nil, service.Persistence(err)
	}
	return boards, nil
}

// AddMember appends a member to the board's roster.
func (r *ExecutiveBoardRepository) AddMember(ctx context.Context, boardID uint, member *model.BoardMember) error {
	member.ExecutiveBoardID = boardID
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return service.Persistence(err)
	}
	return nil
}

func (r *ExecutiveBoardRepository) UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.ExecutiveBoard, error) {
	board, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(board).Updates(fields).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return board, nil
}

// SoftDelete flags the board deleted and records the acting identity.
// Member rows are kept; a recovered board gets its roster back intact.
func (r *ExecutiveBoardRepository) SoftDelete(ctx context.Context, id uint, deletedBy *string) (*model.ExecutiveBoard, error) {
	board, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(board).Update("deleted_by", deletedBy).Error; err != nil {
		return nil, service.Persistence(err)
	}
	if err := r.db.WithContext(ctx).Delete(board).Error; err != nil {
		return nil, service.Persistence(err)
	}
	return board, nil
}
