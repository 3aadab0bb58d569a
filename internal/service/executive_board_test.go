package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mateusfigmelo/msc-backend/internal/model"
)

type mockBoardRepo struct {
	createFn     func(ctx context.Context, board *model.ExecutiveBoard) error
	findByIDFn   func(ctx context.Context, id uint) (*model.ExecutiveBoard, error)
	addMemberFn  func(ctx context.Context, boardID uint, member *model.BoardMember) error
	updateByIDFn func(ctx context.Context, id uint, fields map[string]interface{}) (*model.ExecutiveBoard, error)
}

func (m *mockBoardRepo) Create(ctx context.Context, board *model.ExecutiveBoard) error {
	if m.createFn != nil {
		return m.createFn(ctx, board)
	}
	return nil
}

func (m *mockBoardRepo) FindByID(ctx context.Context, id uint) (*model.ExecutiveBoard, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return &model.ExecutiveBoard{ID: id}, nil
}

func (m *mockBoardRepo) FindAll(ctx context.Context) ([]model.ExecutiveBoard, error) {
	return nil, nil
}

func (m *mockBoardRepo) AddMember(ctx context.Context, boardID uint, member *model.BoardMember) error {
	if m.addMemberFn != nil {
		return m.addMemberFn(ctx, boardID, member)
	}
	return nil
}

func (m *mockBoardRepo) UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.ExecutiveBoard, error) {
	if m.updateByIDFn != nil {
		return m.updateByIDFn(ctx, id, fields)
	}
	return &model.ExecutiveBoard{ID: id}, nil
}

func (m *mockBoardRepo) SoftDelete(ctx context.Context, id uint, deletedBy *string) (*model.ExecutiveBoard, error) {
	return &model.ExecutiveBoard{ID: id, DeletedBy: deletedBy}, nil
}

func TestBoardCreateRequiresYear(t *testing.T) {
	svc := NewExecutiveBoardService(&mockBoardRepo{})

	_, err := svc.Create(context.Background(), "", nil)
	require.Error(t, err)
	assert.Equal(t, KindValidation, AsError(err).Kind)
}

func TestAddMemberAppendsToExistingBoard(t *testing.T) {
	var addedMember *model.BoardMember
	repo := &mockBoardRepo{
		addMemberFn: func(_ context.Context, boardID uint, member *model.BoardMember) error {
			assert.Equal(t, uint(3), boardID)
			addedMember = member
			return nil
		},
	}
	svc := NewExecutiveBoardService(repo)
	admin := "admin-1"

	_, err := svc.AddMember(context.Background(), 3, BoardMemberRequest{
		Name:     "Jordan",
		Position: "President",
	}, &admin)
	require.NoError(t, err)
	require.NotNil(t, addedMember)
	assert.Equal(t, "Jordan", addedMember.Name)
	require.NotNil(t, addedMember.CreatedBy)
	assert.Equal(t, admin, *addedMember.CreatedBy)
}

func TestAddMemberToMissingBoard(t *testing.T) {
	repo := &mockBoardRepo{
		findByIDFn: func(_ context.Context, _ uint) (*model.ExecutiveBoard, error) {
			return nil, NotFound("executive board")
		},
	}
	svc := NewExecutiveBoardService(repo)

	_, err := svc.AddMember(context.Background(), 99, BoardMemberRequest{Name: "Jordan", Position: "President"}, nil)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, AsError(err).Kind)
}

func TestAddMemberValidation(t *testing.T) {
	svc := NewExecutiveBoardService(&mockBoardRepo{})

	_, err := svc.AddMember(context.Background(), 1, BoardMemberRequest{Position: "President"}, nil)
	require.Error(t, err)
	assert.Equal(t, KindValidation, AsError(err).Kind)

	_, err = svc.AddMember(context.Background(), 1, BoardMemberRequest{Name: "Jordan"}, nil)
	require.Error(t, err)
	assert.Equal(t, KindValidation, AsError(err).Kind)
}
