package model

import (
	"time"
)

const (
	// ApplicationStatusPending is the status every new application starts in.
	ApplicationStatusPending = "pending"
	// ApplicationStatusInterview marks an application that has been called for an interview.
	ApplicationStatusInterview = "interview"
	// ApplicationStatusSelected marks an application that has been accepted into the club.
	ApplicationStatusSelected = "selected"
	// ApplicationStatusRejected marks an application that has been turned down.
	ApplicationStatusRejected = "rejected"
)

// ApplicationStatuses lists every status an application can hold.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusInterview,
	ApplicationStatusSelected,
	ApplicationStatusRejected,
}

// Application represents a candidate's submission to join the club.
// Applications are never hard-deleted; Archived hides them from active views
// independent of the workflow status.
type Application struct {
	ID                  uint      `json:"id" gorm:"primarykey"`
	Name                string    `json:"name" gorm:"type:varchar(255);not null"`
	StudentID           string    `json:"studentId" gorm:"column:student_id;type:varchar(50);not null"`
	Email               string    `json:"email" gorm:"type:varchar(255);not null"`
	ContactNumber       string    `json:"contactNumber" gorm:"type:varchar(50);not null"`
	CurrentAcademicYear string    `json:"currentAcademicYear" gorm:"type:varchar(20);not null"`
	SelfIntroduction    string    `json:"selfIntroduction" gorm:"type:text"`
	LinkedIn            string    `json:"linkedIn" gorm:"type:varchar(255)"`
	GitHub              string    `json:"gitHub" gorm:"type:varchar(255)"`
	SkillsAndTalents    string    `json:"skillsAndTalents" gorm:"type:text"`
	Status              string    `json:"status" gorm:"type:varchar(20);not null;default:pending"`
	Archived            bool      `json:"archived" gorm:"not null;default:false"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s string) bool {
	for _, status := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}
