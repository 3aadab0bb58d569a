package service

import (
	"context"
	"strings"

	"github.com/mateusfigmelo/msc-backend/internal/model"
)

// ApplicationRepository is the persistence surface the application workflow
// needs. The Postgres implementation lives in internal/repository.
type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	FindByID(ctx context.Context, id uint) (*model.Application, error)
	FindAll(ctx context.Context) ([]model.Application, error)
	FindByStatus(ctx context.Context, status string) ([]model.Application, error)
	UpdateByID(ctx context.Context, id uint, fields map[string]interface{}) (*model.Application, error)
}

// ApplicationRequest carries the fields of a membership submission.
type ApplicationRequest struct {
	Name                string `json:"name"`
	StudentID           string `json:"studentId"`
	Email               string `json:"email"`
	ContactNumber       string `json:"contactNumber"`
	CurrentAcademicYear string `json:"currentAcademicYear"`
	SelfIntroduction    string `json:"selfIntroduction"`
	LinkedIn            string `json:"linkedIn"`
	GitHub              string `json:"gitHub"`
	SkillsAndTalents    string `json:"skillsAndTalents"`
}

// ApplicationPatch carries optional fields merged into an application when a
// status transition is applied. Empty fields are left untouched.
type ApplicationPatch struct {
	ContactNumber    string `json:"contactNumber"`
	LinkedIn         string `json:"linkedIn"`
	GitHub           string `json:"gitHub"`
	SkillsAndTalents string `json:"skillsAndTalents"`
}

// ApplicationService implements the application status workflow. Status
// transitions are unconditional on the current state: any application can be
// moved to any status through its named operation, and archiving is an
// orthogonal flag available at every status.
type ApplicationService struct {
	repo ApplicationRepository
}

// NewApplicationService returns a service backed by repo.
func NewApplicationService(repo ApplicationRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// Submit validates the request and creates a new application in the pending
// state. Validation failures reject the submission before anything is
// persisted. The acknowledgement mail is dispatched by the caller after the
// record is durable, never here.
func (s *ApplicationService) Submit(ctx context.Context, req ApplicationRequest) (*model.Application, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}
	app := &model.Application{
		Name:                strings.TrimSpace(req.Name),
		StudentID:           strings.TrimSpace(req.StudentID),
		Email:               strings.TrimSpace(req.Email),
		ContactNumber:       strings.TrimSpace(req.ContactNumber),
		CurrentAcademicYear: strings.TrimSpace(req.CurrentAcademicYear),
		SelfIntroduction:    req.SelfIntroduction,
		LinkedIn:            req.LinkedIn,
		GitHub:              req.GitHub,
		SkillsAndTalents:    req.SkillsAndTalents,
		Status:              model.ApplicationStatusPending,
		Archived:            false,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// GetByID fetches a single application.
func (s *ApplicationService) GetByID(ctx context.Context, id uint) (*model.Application, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns every application regardless of status.
func (s *ApplicationService) List(ctx context.Context) ([]model.Application, error) {
	return s.repo.FindAll(ctx)
}

// ListByStatus returns the applications currently holding the given status.
// An unknown status is a validation error; no match is an empty list.
func (s *ApplicationService) ListByStatus(ctx context.Context, status string) ([]model.Application, error) {
	if !model.ValidStatus(status) {
		return nil, Validation("unknown application status: " + status)
	}
	return s.repo.FindByStatus(ctx, status)
}

// MoveToInterview sets the status to interview and merges the patch fields.
func (s *ApplicationService) MoveToInterview(ctx context.Context, id uint, patch ApplicationPatch) (*model.Application, error) {
	return s.transition(ctx, id, model.ApplicationStatusInterview, patch)
}

// MoveToSelected sets the status to selected and merges the patch fields.
func (s *ApplicationService) MoveToSelected(ctx context.Context, id uint, patch ApplicationPatch) (*model.Application, error) {
	return s.transition(ctx, id, model.ApplicationStatusSelected, patch)
}

// MoveToRejected sets the status to rejected.
func (s *ApplicationService) MoveToRejected(ctx context.Context, id uint) (*model.Application, error) {
	return s.transition(ctx, id, model.ApplicationStatusRejected, ApplicationPatch{})
}

// Archive flags the application archived. The flag is independent of status
// and re-archiving is a no-op write, so the operation is idempotent.
func (s *ApplicationService) Archive(ctx context.Context, id uint) (*model.Application, error) {
	return s.repo.UpdateByID(ctx, id, map[string]interface{}{"archived": true})
}

func (s *ApplicationService) transition(ctx context.Context, id uint, status string, patch ApplicationPatch) (*model.Application, error) {
	fields := map[string]interface{}{"status": status}
	if patch.ContactNumber != "" {
		fields["contact_number"] = patch.ContactNumber
	}
	if patch.LinkedIn != "" {
		fields["linked_in"] = patch.LinkedIn
	}
	if patch.GitHub != "" {
		fields["git_hub"] = patch.GitHub
	}
	if patch.SkillsAndTalents != "" {
		fields["skills_and_talents"] = patch.SkillsAndTalents
	}
	return s.repo.UpdateByID(ctx, id, fields)
}

func validateSubmission(req ApplicationRequest) *Error {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"studentId", req.StudentID},
		{"email", req.Email},
		{"contactNumber", req.ContactNumber},
		{"currentAcademicYear", req.CurrentAcademicYear},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return Validation(field.name + " is required")
		}
	}
	return nil
}
