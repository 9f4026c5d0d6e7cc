package dto

import "time"

// SubmitQuizAttemptDTO is the request body for a learner submitting a quiz.
// Answer keys may be question ids or 1-based positions; historical clients
// used both, so both are accepted.
type SubmitQuizAttemptDTO struct {
	QuizID    uint              `json:"quiz_id" binding:"required"`
	Answers   map[string]string `json:"answers" binding:"required"`
	TimeSpent int               `json:"time_spent"` // seconds, optional
}

type CreateCourseDTO struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// QuestionForQuizDTO is used when creating questions as part of a new quiz.
type QuestionForQuizDTO struct {
	Position      int      `json:"position" binding:"required,min=1"`
	Text          string   `json:"text" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=mcq true_false short_answer essay"`
	Options       []string `json:"options"` // required for mcq/true_false
	CorrectAnswer string   `json:"correct_answer" binding:"required"`
	Points        float64  `json:"points"` // defaults to 1 when omitted
}

type CreateQuizDTO struct {
	CourseID     uint                 `json:"course_id" binding:"required"`
	Title        string               `json:"title" binding:"required"`
	Description  string               `json:"description"`
	TotalMarks   float64              `json:"total_marks"`
	PassingScore float64              `json:"passing_score" binding:"omitempty,min=0,max=100"`
	MaxAttempts  *int                 `json:"max_attempts" binding:"omitempty,min=1"`
	StartTime    *time.Time           `json:"start_time"`
	EndTime      *time.Time           `json:"end_time"`
	Questions    []QuestionForQuizDTO `json:"questions" binding:"required,min=1,dive"`
}
