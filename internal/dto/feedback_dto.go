package dto

// QuestionFeedback is the per-question slice of an evaluation.
type QuestionFeedback struct {
	QuestionNumber int     `json:"question_number"` // 1-based ordinal
	IsCorrect      bool    `json:"is_correct"`
	PointsEarned   float64 `json:"points_earned"`
	Explanation    string  `json:"explanation"`
	ImprovementTip string  `json:"improvement_tip,omitempty"`
}

// EvaluationFeedback is the full graded-feedback object attached to an
// attempt. AIGenerated records provenance: true when the text came from the
// external model (even if structure extraction was lossy), false when the
// deterministic fallback grader produced it.
type EvaluationFeedback struct {
	QuestionFeedback []QuestionFeedback `json:"question_feedback"`
	OverallFeedback  string             `json:"overall_feedback"`
	Strengths        []string           `json:"strengths"`
	Improvements     []string           `json:"improvements"`
	Recommendations  []string           `json:"recommendations"`
	AIGenerated      bool               `json:"ai_generated"`
}
