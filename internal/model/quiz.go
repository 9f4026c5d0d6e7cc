package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	CourseID    uint    `json:"course_id" gorm:"not null;index"`
	Course      Course  `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description,omitempty"`
	TotalMarks  float64 `json:"total_marks" gorm:"not null"`
	// PassingScore is a percentage threshold. Zero means "use the configured default".
	PassingScore float64        `json:"passing_score"`
	MaxAttempts  *int           `json:"max_attempts,omitempty"` // nil = unlimited
	StartTime    *time.Time     `json:"start_time,omitempty"`
	EndTime      *time.Time     `json:"end_time,omitempty"`
	Published    bool           `json:"published" gorm:"default:true"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
