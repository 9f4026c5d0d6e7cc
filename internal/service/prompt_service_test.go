package service

import (
	"testing"

	"github.com/coursflow/coursflow/internal/model"
)

func TestBuildResolvesAnswerKeys(t *testing.T) {
	quiz := &model.Quiz{
		Title:      "Midterm",
		TotalMarks: 3,
		Questions: []model.Question{
			{ID: 57, Position: 1, Text: "Pick one", Type: model.QuestionTypeMCQ, CorrectAnswer: "C", Points: 1},
			{ID: 58, Position: 2, Text: "True or false", Type: model.QuestionTypeTrueFalse, CorrectAnswer: "true", Points: 1},
			{ID: 59, Position: 3, Text: "Explain", Type: model.QuestionTypeEssay, CorrectAnswer: "gravity", Points: 1},
		},
	}

	testCases := []struct {
		name     string
		answers  map[string]string
		expected [3]string
	}{
		{
			name:     "keyed by ordinal",
			answers:  map[string]string{"1": "C", "2": "false", "3": "stuff"},
			expected: [3]string{"C", "false", "stuff"},
		},
		{
			name:     "keyed by question id",
			answers:  map[string]string{"57": "A", "58": "true", "59": "words"},
			expected: [3]string{"A", "true", "words"},
		},
		{
			name: "id takes precedence over ordinal",
			// "57" is question 1's id; "1" could only be an ordinal.
			answers:  map[string]string{"57": "by-id", "1": "by-ordinal"},
			expected: [3]string{"by-id", NoAnswerSentinel, NoAnswerSentinel},
		},
		{
			name:     "missing answers get the sentinel",
			answers:  map[string]string{"2": "true"},
			expected: [3]string{NoAnswerSentinel, "true", NoAnswerSentinel},
		},
	}

	svc := NewPromptService()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := svc.Build(quiz, tc.answers)
			if len(req.Questions) != 3 {
				t.Fatalf("expected 3 questions, got %d", len(req.Questions))
			}
			for i, want := range tc.expected {
				if got := req.Questions[i].SubmittedAnswer; got != want {
					t.Errorf("question %d: expected answer %q, got %q", i+1, want, got)
				}
			}
		})
	}
}

func TestBuildEmptyQuestionList(t *testing.T) {
	svc := NewPromptService()
	req := svc.Build(&model.Quiz{Title: "Empty", TotalMarks: 0}, map[string]string{"1": "A"})
	if len(req.Questions) != 0 {
		t.Fatalf("expected zero questions, got %d", len(req.Questions))
	}
	if req.QuizTitle != "Empty" {
		t.Errorf("expected quiz title carried over, got %q", req.QuizTitle)
	}
}

func TestBuildDefaultsPointsAndPosition(t *testing.T) {
	quiz := &model.Quiz{
		Title: "Defaults",
		Questions: []model.Question{
			{ID: 7, Text: "No points set", Type: model.QuestionTypeShortAnswer, CorrectAnswer: "x"},
		},
	}
	req := NewPromptService().Build(quiz, nil)
	q := req.Questions[0]
	if q.Points != 1 {
		t.Errorf("expected default points 1, got %v", q.Points)
	}
	if q.Number != 1 {
		t.Errorf("expected ordinal fallback 1, got %d", q.Number)
	}
}

func TestBuildDecodesOptions(t *testing.T) {
	quiz := &model.Quiz{
		Questions: []model.Question{
			{ID: 1, Position: 1, Type: model.QuestionTypeMCQ, Options: `["A","B","C"]`, CorrectAnswer: "B", Points: 2},
			{ID: 2, Position: 2, Type: model.QuestionTypeMCQ, Options: `not json`, CorrectAnswer: "A", Points: 2},
		},
	}
	req := NewPromptService().Build(quiz, nil)
	if got := len(req.Questions[0].Options); got != 3 {
		t.Errorf("expected 3 decoded options, got %d", got)
	}
	if req.Questions[1].Options != nil {
		t.Errorf("expected malformed options to decode to nil, got %v", req.Questions[1].Options)
	}
}
