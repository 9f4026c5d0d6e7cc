package dto

import "time"

// APIResponse is the success envelope used by every endpoint.
type APIResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

type APIErrorBody struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type APIErrorResponse struct {
	Success bool         `json:"success"`
	Error   APIErrorBody `json:"error"`
}

func OK(data any) APIResponse {
	return APIResponse{Success: true, Data: data}
}

func Error(code, message string) APIErrorResponse {
	return APIErrorResponse{Success: false, Error: APIErrorBody{Code: code, Message: message}}
}

// SubmissionResultDTO is the payload returned after a graded submission.
// AttemptsRemaining is either a non-negative integer or the literal string
// "unlimited" when the quiz has no attempt ceiling.
type SubmissionResultDTO struct {
	AttemptID         uint               `json:"attempt_id"`
	Score             float64            `json:"score"`
	TotalMarks        float64            `json:"total_marks"`
	Percentage        float64            `json:"percentage"`
	Passed            bool               `json:"passed"`
	CorrectAnswers    int                `json:"correct_answers"`
	TotalQuestions    int                `json:"total_questions"`
	TimeSpent         int                `json:"time_spent"`
	AIFeedback        EvaluationFeedback `json:"ai_feedback"`
	CanRetake         bool               `json:"can_retake"`
	AttemptsRemaining any                `json:"attempts_remaining"`
}

type CourseResponseDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	TeacherID   uint      `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuestionResponseDTO carries question details for students; the correct
// answer is intentionally absent.
type QuestionResponseDTO struct {
	ID       uint     `json:"id"`
	Position int      `json:"position"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Points   float64  `json:"points"`
}

type QuizSummaryDTO struct {
	ID            uint      `json:"id"`
	CourseID      uint      `json:"course_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TotalMarks    float64   `json:"total_marks"`
	PassingScore  float64   `json:"passing_score"`
	MaxAttempts   *int      `json:"max_attempts,omitempty"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

type QuizDetailDTO struct {
	ID           uint                  `json:"id"`
	CourseID     uint                  `json:"course_id"`
	CourseTitle  string                `json:"course_title,omitempty"`
	Title        string                `json:"title"`
	Description  string                `json:"description,omitempty"`
	TotalMarks   float64               `json:"total_marks"`
	PassingScore float64               `json:"passing_score"`
	MaxAttempts  *int                  `json:"max_attempts,omitempty"`
	StartTime    *time.Time            `json:"start_time,omitempty"`
	EndTime      *time.Time            `json:"end_time,omitempty"`
	Questions    []QuestionResponseDTO `json:"questions"`
	CreatedAt    time.Time             `json:"created_at"`
}

type AttemptSummaryDTO struct {
	ID          uint      `json:"id"`
	QuizID      uint      `json:"quiz_id"`
	Score       float64   `json:"score"`
	Percentage  float64   `json:"percentage"`
	Passed      bool      `json:"passed"`
	TimeSpent   int       `json:"time_spent"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AttemptDetailDTO struct {
	ID          uint               `json:"id"`
	QuizID      uint               `json:"quiz_id"`
	QuizTitle   string             `json:"quiz_title,omitempty"`
	UserID      uint               `json:"user_id"`
	Answers     map[string]string  `json:"answers"`
	Feedback    EvaluationFeedback `json:"feedback"`
	Score       float64            `json:"score"`
	Percentage  float64            `json:"percentage"`
	Passed      bool               `json:"passed"`
	TimeSpent   int                `json:"time_spent"`
	SubmittedAt time.Time          `json:"submitted_at"`
}
