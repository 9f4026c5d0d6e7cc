package service

// NoAnswerSentinel is recorded as the submitted answer when neither the
// question id nor its ordinal appears in the learner's answer map.
const NoAnswerSentinel = "No answer provided"

// QuestionEvaluation is one question of an EvaluationRequest with the
// learner's answer already resolved. Both the model path and the fallback
// grader read from this, so the two can never disagree about what the
// learner submitted.
type QuestionEvaluation struct {
	Number          int // 1-based ordinal within the quiz
	QuestionID      uint
	Text            string
	Type            string
	Options         []string
	CorrectAnswer   string
	SubmittedAnswer string
	Points          float64
}

// EvaluationRequest is the single source of truth for one grading run.
type EvaluationRequest struct {
	QuizTitle    string
	CourseTitle  string
	TotalMarks   float64
	PassingScore float64
	Questions    []QuestionEvaluation
}
