package model

import (
	"time"

	"gorm.io/gorm"
)

// ExecutiveBoard is the yearly roster of the club leadership.
// Members are owned by reference; the board record survives member churn.
type ExecutiveBoard struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Year      string         `json:"year" gorm:"type:varchar(20);not null"`
	Board     []BoardMember  `json:"board" gorm:"foreignKey:ExecutiveBoardID"`
	CreatedBy *string        `json:"createdBy" gorm:"type:varchar(100)"`
	UpdatedBy *string        `json:"updatedBy" gorm:"type:varchar(100)"`
	DeletedBy *string        `json:"deletedBy" gorm:"type:varchar(100)"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// BoardMember is a single seat on an executive board.
type BoardMember struct {
	ID               uint      `json:"id" gorm:"primarykey"`
	ExecutiveBoardID uint      `json:"executiveBoardId" gorm:"index;not null"`
	Name             string    `json:"name" gorm:"type:varchar(255);not null"`
	Position         string    `json:"position" gorm:"type:varchar(100);not null"`
	ImageURL         string    `json:"imageUrl" gorm:"type:varchar(512)"`
	LinkedIn         string    `json:"linkedIn" gorm:"type:varchar(255)"`
	CreatedBy        *string   `json:"createdBy" gorm:"type:varchar(100)"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
