package service

import (
	"errors"
	"testing"
)

func parserRequest() *EvaluationRequest {
	return &EvaluationRequest{
		TotalMarks: 15,
		Questions: []QuestionEvaluation{
			{Number: 1, Points: 10},
			{Number: 2, Points: 5},
		},
	}
}

const wellFormedPayload = `{
  "question_feedback": [
    {"question_number": 1, "is_correct": true, "points_earned": 10, "explanation": "Spot on.", "improvement_tip": "None needed."},
    {"question_number": 2, "is_correct": false, "points_earned": 2, "explanation": "Partially right.", "improvement_tip": "Revisit chapter 3."}
  ],
  "overall_feedback": "Good effort overall.",
  "strengths": ["Clear reasoning"],
  "improvements": ["Definitions"],
  "recommendations": ["Reread chapter 3"]
}`

func TestParseFencedJSON(t *testing.T) {
	parser := NewFeedbackParserService()
	raw := "Here is the evaluation:\n```json\n" + wellFormedPayload + "\n```\nThanks!"

	feedback, err := parser.Parse(raw, parserRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !feedback.AIGenerated {
		t.Error("expected ai_generated=true for model-sourced feedback")
	}
	if len(feedback.QuestionFeedback) != 2 {
		t.Fatalf("expected 2 question entries, got %d", len(feedback.QuestionFeedback))
	}
	if feedback.QuestionFeedback[0].PointsEarned != 10 || feedback.QuestionFeedback[1].PointsEarned != 2 {
		t.Errorf("points lost in round trip: %+v", feedback.QuestionFeedback)
	}
	if feedback.OverallFeedback != "Good effort overall." {
		t.Errorf("overall feedback lost: %q", feedback.OverallFeedback)
	}
	if len(feedback.Strengths) != 1 || feedback.Strengths[0] != "Clear reasoning" {
		t.Errorf("strengths lost: %v", feedback.Strengths)
	}
}

func TestParseBareJSON(t *testing.T) {
	parser := NewFeedbackParserService()
	raw := "The result is " + wellFormedPayload + " as requested."

	feedback, err := parser.Parse(raw, parserRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !feedback.AIGenerated || len(feedback.QuestionFeedback) != 2 {
		t.Errorf("bare JSON span not extracted: %+v", feedback)
	}
}

func TestParseDefaultsMissingKeys(t *testing.T) {
	parser := NewFeedbackParserService()
	feedback, err := parser.Parse(`{"overall_feedback": "ok"}`, parserRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feedback.QuestionFeedback == nil || feedback.Strengths == nil || feedback.Improvements == nil || feedback.Recommendations == nil {
		t.Errorf("missing keys must default to empty collections: %+v", feedback)
	}
}

func TestParseClampsPoints(t *testing.T) {
	parser := NewFeedbackParserService()
	raw := `{"question_feedback": [
		{"question_number": 1, "is_correct": true, "points_earned": 99},
		{"question_number": 2, "is_correct": false, "points_earned": -3},
		{"question_number": 9, "is_correct": true, "points_earned": 50}
	]}`

	feedback, err := parser.Parse(raw, parserRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feedback.QuestionFeedback) != 2 {
		t.Fatalf("entry for unknown question 9 should be dropped, got %d entries", len(feedback.QuestionFeedback))
	}
	if feedback.QuestionFeedback[0].PointsEarned != 10 {
		t.Errorf("points over the question max must clamp to 10, got %.1f", feedback.QuestionFeedback[0].PointsEarned)
	}
	if feedback.QuestionFeedback[1].PointsEarned != 0 {
		t.Errorf("negative points must clamp to 0, got %.1f", feedback.QuestionFeedback[1].PointsEarned)
	}
}

func TestParseKeepsFirstEntryPerQuestion(t *testing.T) {
	parser := NewFeedbackParserService()
	raw := `{"question_feedback": [
		{"question_number": 1, "is_correct": true, "points_earned": 10},
		{"question_number": 1, "is_correct": true, "points_earned": 10},
		{"question_number": 2, "is_correct": true, "points_earned": 5},
		{"question_number": 2, "is_correct": false, "points_earned": 5}
	]}`

	req := parserRequest()
	feedback, err := parser.Parse(raw, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feedback.QuestionFeedback) != 2 {
		t.Fatalf("repeated question numbers must collapse to one entry each, got %d entries", len(feedback.QuestionFeedback))
	}
	sum := 0.0
	for _, qf := range feedback.QuestionFeedback {
		sum += qf.PointsEarned
	}
	if sum > req.TotalMarks {
		t.Errorf("summed points %.1f exceed total marks %.1f", sum, req.TotalMarks)
	}
	if !feedback.QuestionFeedback[1].IsCorrect {
		t.Error("the first entry for each question must win, not a later one")
	}
}

func TestParseProseDegradesToMining(t *testing.T) {
	parser := NewFeedbackParserService()
	raw := `The student did reasonably well.

Strengths:
- Solid grasp of definitions
- Clear writing

Improvements:
- Show more working

Recommendations:
- Practice past papers
- Review unit 2`

	feedback, err := parser.Parse(raw, parserRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !feedback.AIGenerated {
		t.Error("mined feedback still came from the model; expected ai_generated=true")
	}
	if feedback.OverallFeedback != raw {
		t.Error("overall feedback must be the raw text verbatim")
	}
	if len(feedback.Strengths) != 2 {
		t.Errorf("expected 2 strengths, got %v", feedback.Strengths)
	}
	if len(feedback.Improvements) != 1 {
		t.Errorf("expected 1 improvement, got %v", feedback.Improvements)
	}
	if len(feedback.Recommendations) != 2 {
		t.Errorf("expected 2 recommendations, got %v", feedback.Recommendations)
	}
}

func TestParseMiningCapsBuckets(t *testing.T) {
	parser := NewFeedbackParserService()
	raw := "Strengths:\n"
	for i := 0; i < 8; i++ {
		raw += "- item\n"
	}
	feedback, err := parser.Parse(raw, parserRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feedback.Strengths) != bulletBucketCap {
		t.Errorf("expected bucket capped at %d, got %d", bulletBucketCap, len(feedback.Strengths))
	}
}

func TestParseEmptyOutputFails(t *testing.T) {
	parser := NewFeedbackParserService()
	for _, raw := range []string{"", "   \n\t "} {
		if _, err := parser.Parse(raw, parserRequest()); !errors.Is(err, ErrEmptyModelOutput) {
			t.Errorf("Parse(%q): expected ErrEmptyModelOutput, got %v", raw, err)
		}
	}
}
