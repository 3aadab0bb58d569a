package model

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Webinar represents an online session published on the club site.
// Webinars share the past/upcoming typing of events but live in their
// own collection with their own admin endpoints.
type Webinar struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Title       string         `json:"title" gorm:"type:varchar(255);not null"`
	Description string         `json:"description" gorm:"type:text;not null"`
	ImageURL    string         `json:"imageUrl" gorm:"type:varchar(512);not null"`
	DateTime    time.Time      `json:"dateTime" gorm:"not null"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Link        string         `json:"link" gorm:"type:varchar(512)"`
	WebinarType string         `json:"webinarType" gorm:"type:varchar(20);not null"`
	CreatedBy   *string        `json:"createdBy" gorm:"type:varchar(100)"`
	UpdatedBy   *string        `json:"updatedBy" gorm:"type:varchar(100)"`
	DeletedBy   *string        `json:"deletedBy" gorm:"type:varchar(100)"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}
