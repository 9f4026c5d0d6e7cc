package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt is one recorded, scored submission of a quiz by a learner.
// Rows are created exactly once at the end of a grading run and never mutated.
type QuizAttempt struct {
	ID     uint `gorm:"primarykey" json:"id"`
	QuizID uint `json:"quiz_id" gorm:"not null;index:idx_attempt_quiz_user"`
	Quiz   Quiz `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	UserID uint `json:"user_id" gorm:"not null;index:idx_attempt_quiz_user"`
	// Answers is the raw submitted answer map, JSON-encoded as received.
	Answers string `json:"answers" gorm:"type:jsonb;not null"`
	// Feedback is the JSON-encoded EvaluationFeedback from whichever grader ran.
	Feedback    string         `json:"feedback" gorm:"type:jsonb"`
	Score       float64        `json:"score"`
	Percentage  float64        `json:"percentage"`
	Passed      bool           `json:"passed"`
	TimeSpent   int            `json:"time_spent"` // seconds
	SubmittedAt time.Time      `json:"submitted_at" gorm:"autoCreateTime"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
