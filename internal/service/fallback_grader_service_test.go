package service

import (
	"reflect"
	"testing"
)

func twoQuestionRequest(answer1, answer2 string) *EvaluationRequest {
	return &EvaluationRequest{
		QuizTitle:    "Physics basics",
		TotalMarks:   20,
		PassingScore: 60,
		Questions: []QuestionEvaluation{
			{Number: 1, QuestionID: 10, Text: "Q1", Type: "short_answer", CorrectAnswer: "gravity", SubmittedAnswer: answer1, Points: 10},
			{Number: 2, QuestionID: 11, Text: "Q2", Type: "short_answer", CorrectAnswer: "mass", SubmittedAnswer: answer2, Points: 10},
		},
	}
}

func TestFallbackGraderExactMatch(t *testing.T) {
	testCases := []struct {
		name          string
		submitted     string
		correct       string
		expectCorrect bool
	}{
		{"exact match", "gravity", "gravity", true},
		{"case insensitive", "GRAVITY", "gravity", true},
		{"whitespace trimmed", "  gravity \n", "gravity", true},
		{"mismatch", "magnetism", "gravity", false},
		{"sentinel never matches", NoAnswerSentinel, "gravity", false},
		{"empty correct answer vs empty submission", "", "", true},
	}

	grader := NewFallbackGraderService()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := &EvaluationRequest{
				TotalMarks: 5,
				Questions: []QuestionEvaluation{
					{Number: 1, CorrectAnswer: tc.correct, SubmittedAnswer: tc.submitted, Points: 5},
				},
			}
			feedback := grader.Grade(req)
			qf := feedback.QuestionFeedback[0]
			if qf.IsCorrect != tc.expectCorrect {
				t.Errorf("expected is_correct=%v, got %v", tc.expectCorrect, qf.IsCorrect)
			}
			wantPoints := 0.0
			if tc.expectCorrect {
				wantPoints = 5
			}
			if qf.PointsEarned != wantPoints {
				t.Errorf("expected %.1f points, got %.1f", wantPoints, qf.PointsEarned)
			}
		})
	}
}

func TestFallbackGraderAllCorrectScenario(t *testing.T) {
	grader := NewFallbackGraderService()
	feedback := grader.Grade(twoQuestionRequest("gravity", "mass"))

	if feedback.AIGenerated {
		t.Error("fallback feedback must not be marked ai_generated")
	}
	total := 0.0
	for _, qf := range feedback.QuestionFeedback {
		if !qf.IsCorrect {
			t.Errorf("question %d: expected correct", qf.QuestionNumber)
		}
		total += qf.PointsEarned
	}
	if total != 20 {
		t.Errorf("expected 20 points total, got %.1f", total)
	}
	if len(feedback.Improvements) != 0 {
		t.Errorf("all-correct submission should have no improvements, got %v", feedback.Improvements)
	}
	if len(feedback.Strengths) == 0 {
		t.Error("all-correct submission should list a strength")
	}
}

func TestFallbackGraderRevealsCorrectAnswer(t *testing.T) {
	grader := NewFallbackGraderService()
	feedback := grader.Grade(twoQuestionRequest("wrong", "mass"))

	qf := feedback.QuestionFeedback[0]
	if qf.IsCorrect || qf.PointsEarned != 0 {
		t.Fatalf("expected incorrect with 0 points, got %+v", qf)
	}
	if qf.Explanation != "The correct answer is: gravity" {
		t.Errorf("expected explanation to reveal the correct answer, got %q", qf.Explanation)
	}
}

func TestFallbackGraderDeterministic(t *testing.T) {
	grader := NewFallbackGraderService()
	first := grader.Grade(twoQuestionRequest("gravity", "wrong"))
	second := grader.Grade(twoQuestionRequest("gravity", "wrong"))
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input must produce identical feedback")
	}
}

func TestFallbackGraderEmptyRequest(t *testing.T) {
	grader := NewFallbackGraderService()
	feedback := grader.Grade(&EvaluationRequest{})
	if len(feedback.QuestionFeedback) != 0 {
		t.Errorf("expected no per-question feedback, got %d entries", len(feedback.QuestionFeedback))
	}
	if feedback.OverallFeedback == "" {
		t.Error("expected overall feedback even with zero questions")
	}
}
