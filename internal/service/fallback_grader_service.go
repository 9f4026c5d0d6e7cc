package service

import (
	"fmt"
	"strings"

	"github.com/coursflow/coursflow/internal/dto"
)

// FallbackGraderService is the deterministic exact-match scorer used whenever
// the model path cannot produce usable structured feedback. It is a total
// function: any EvaluationRequest grades without error, so a learner always
// gets a result even with the AI service down.
type FallbackGraderService interface {
	Grade(req *EvaluationRequest) *dto.EvaluationFeedback
}

type fallbackGraderService struct{}

func NewFallbackGraderService() FallbackGraderService {
	return &fallbackGraderService{}
}

func (s *fallbackGraderService) Grade(req *EvaluationRequest) *dto.EvaluationFeedback {
	feedback := &dto.EvaluationFeedback{
		QuestionFeedback: make([]dto.QuestionFeedback, 0, len(req.Questions)),
		Strengths:        []string{},
		Improvements:     []string{},
		Recommendations:  []string{},
		AIGenerated:      false,
	}

	correct := 0
	for _, q := range req.Questions {
		if answersMatch(q.SubmittedAnswer, q.CorrectAnswer) {
			correct++
			feedback.QuestionFeedback = append(feedback.QuestionFeedback, dto.QuestionFeedback{
				QuestionNumber: q.Number,
				IsCorrect:      true,
				PointsEarned:   q.Points,
				Explanation:    "Your answer is correct!",
				ImprovementTip: "Keep up the good work.",
			})
		} else {
			feedback.QuestionFeedback = append(feedback.QuestionFeedback, dto.QuestionFeedback{
				QuestionNumber: q.Number,
				IsCorrect:      false,
				PointsEarned:   0,
				Explanation:    fmt.Sprintf("The correct answer is: %s", q.CorrectAnswer),
				ImprovementTip: "Review this topic in the course material and try again.",
			})
		}
	}

	total := len(req.Questions)
	feedback.OverallFeedback = fmt.Sprintf("You answered %d out of %d questions correctly.", correct, total)
	if correct > 0 {
		feedback.Strengths = append(feedback.Strengths,
			fmt.Sprintf("You answered %d question(s) correctly.", correct))
	}
	if correct < total {
		feedback.Improvements = append(feedback.Improvements,
			fmt.Sprintf("%d question(s) need another look.", total-correct))
		feedback.Recommendations = append(feedback.Recommendations,
			"Revisit the course material covering the questions you missed before retaking the quiz.")
	}
	return feedback
}

// answersMatch compares answers with case-insensitive, whitespace-trimmed
// exact equality.
func answersMatch(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}
