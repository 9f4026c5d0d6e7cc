package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/coursflow/coursflow/internal/model"
)

// PromptService normalizes a quiz and a raw answer map into one
// EvaluationRequest. Answer keys are resolved by explicit question id first,
// then by 1-based ordinal; historical clients used both key spaces.
type PromptService interface {
	Build(quiz *model.Quiz, answers map[string]string) *EvaluationRequest
}

type promptService struct{}

func NewPromptService() PromptService {
	return &promptService{}
}

func (s *promptService) Build(quiz *model.Quiz, answers map[string]string) *EvaluationRequest {
	req := &EvaluationRequest{
		QuizTitle:    quiz.Title,
		CourseTitle:  quiz.Course.Title,
		TotalMarks:   quiz.TotalMarks,
		PassingScore: quiz.PassingScore,
	}

	for i, q := range quiz.Questions {
		number := q.Position
		if number < 1 {
			number = i + 1
		}
		points := q.Points
		if points <= 0 {
			points = 1
		}
		req.Questions = append(req.Questions, QuestionEvaluation{
			Number:          number,
			QuestionID:      q.ID,
			Text:            q.Text,
			Type:            q.Type,
			Options:         decodeOptions(q.Options),
			CorrectAnswer:   q.CorrectAnswer,
			SubmittedAnswer: resolveAnswer(q, number, answers),
			Points:          points,
		})
	}
	return req
}

// resolveAnswer prefers the explicit question id key and falls back to the
// 1-based ordinal key.
func resolveAnswer(q model.Question, number int, answers map[string]string) string {
	if answer, ok := answers[strconv.FormatUint(uint64(q.ID), 10)]; ok {
		return answer
	}
	if answer, ok := answers[strconv.Itoa(number)]; ok {
		return answer
	}
	return NoAnswerSentinel
}

func decodeOptions(raw string) []string {
	if raw == "" {
		return nil
	}
	var options []string
	if err := json.Unmarshal([]byte(raw), &options); err != nil {
		return nil
	}
	return options
}

// renderEvaluationPrompt serializes the request into the natural-language
// instruction block sent to the model.
func renderEvaluationPrompt(req *EvaluationRequest) string {
	var b strings.Builder
	b.WriteString("You are an experienced course instructor grading a student's quiz submission.\n")
	b.WriteString(fmt.Sprintf("Quiz: %q", req.QuizTitle))
	if req.CourseTitle != "" {
		b.WriteString(fmt.Sprintf(" (course: %q)", req.CourseTitle))
	}
	b.WriteString(fmt.Sprintf("\nTotal marks: %.1f. Passing threshold: %.1f%%.\n\n", req.TotalMarks, req.PassingScore))

	for _, q := range req.Questions {
		b.WriteString(fmt.Sprintf("Question %d (%s, %.1f points):\n%s\n", q.Number, q.Type, q.Points, q.Text))
		if len(q.Options) > 0 {
			b.WriteString("Options: " + strings.Join(q.Options, " | ") + "\n")
		}
		b.WriteString(fmt.Sprintf("Correct answer: %s\n", q.CorrectAnswer))
		b.WriteString(fmt.Sprintf("Student's answer: %s\n\n", q.SubmittedAnswer))
	}

	b.WriteString(`Evaluate every question. Award partial credit for short answers and essays where deserved, never more than the question's points.

Respond strictly as a fenced JSON block of this exact shape:
` + "```json" + `
{
  "question_feedback": [
    {"question_number": 1, "is_correct": true, "points_earned": 1.0, "explanation": "...", "improvement_tip": "..."}
  ],
  "overall_feedback": "...",
  "strengths": ["..."],
  "improvements": ["..."],
  "recommendations": ["..."]
}
` + "```" + `
`)
	return b.String()
}
