package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ         = "mcq"
	QuestionTypeTrueFalse   = "true_false"
	QuestionTypeShortAnswer = "short_answer"
	QuestionTypeEssay       = "essay"
)

type Question struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	QuizID   uint   `json:"quiz_id" gorm:"not null;index"`
	Position int    `json:"position" gorm:"not null"` // 1-based order within the quiz
	Text     string `json:"text" gorm:"type:text;not null"`
	Type     string `json:"type" gorm:"not null"` // "mcq", "true_false", "short_answer", "essay"
	// Options holds a JSON-encoded string array for mcq/true_false questions.
	Options       string         `json:"options,omitempty" gorm:"type:jsonb"`
	CorrectAnswer string         `json:"correct_answer" gorm:"type:text"`
	Points        float64        `json:"points" gorm:"default:1"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
