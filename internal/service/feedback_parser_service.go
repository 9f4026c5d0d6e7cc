package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/coursflow/coursflow/internal/dto"
	"github.com/rs/zerolog/log"
)

// FeedbackParserService extracts a structured EvaluationFeedback from the
// model's raw text. Extraction strategies are tried in order, first success
// wins: a ```json fenced block, the first balanced {...} span, the whole
// text. A failed structured decode degrades to bullet mining rather than
// failing; only blank model output is a parse error.
type FeedbackParserService interface {
	Parse(raw string, req *EvaluationRequest) (*dto.EvaluationFeedback, error)
}

type feedbackParserService struct{}

func NewFeedbackParserService() FeedbackParserService {
	return &feedbackParserService{}
}

var fencedJSONPattern = regexp.MustCompile("(?s)```json\\s*(.*?)```")

const bulletBucketCap = 5

func (s *feedbackParserService) Parse(raw string, req *EvaluationRequest) (*dto.EvaluationFeedback, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyModelOutput
	}

	candidate := extractCandidateJSON(raw)
	if feedback := decodeFeedback(candidate, req); feedback != nil {
		return feedback, nil
	}

	log.Warn().Int("raw_len", len(raw)).Msg("Model output is not decodable JSON, degrading to bullet mining")
	return mineFeedbackText(raw), nil
}

func extractCandidateJSON(raw string) string {
	if m := fencedJSONPattern.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if start := strings.Index(raw, "{"); start >= 0 {
		if end := strings.LastIndex(raw, "}"); end > start {
			return raw[start : end+1]
		}
	}
	return raw
}

func decodeFeedback(candidate string, req *EvaluationRequest) *dto.EvaluationFeedback {
	var payload struct {
		QuestionFeedback []dto.QuestionFeedback `json:"question_feedback"`
		OverallFeedback  string                 `json:"overall_feedback"`
		Strengths        []string               `json:"strengths"`
		Improvements     []string               `json:"improvements"`
		Recommendations  []string               `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil
	}

	feedback := &dto.EvaluationFeedback{
		QuestionFeedback: payload.QuestionFeedback,
		OverallFeedback:  payload.OverallFeedback,
		Strengths:        payload.Strengths,
		Improvements:     payload.Improvements,
		Recommendations:  payload.Recommendations,
		AIGenerated:      true,
	}
	if feedback.QuestionFeedback == nil {
		feedback.QuestionFeedback = []dto.QuestionFeedback{}
	}
	if feedback.Strengths == nil {
		feedback.Strengths = []string{}
	}
	if feedback.Improvements == nil {
		feedback.Improvements = []string{}
	}
	if feedback.Recommendations == nil {
		feedback.Recommendations = []string{}
	}

	if req != nil {
		feedback.QuestionFeedback = clampQuestionFeedback(feedback.QuestionFeedback, req)
	}
	return feedback
}

// clampQuestionFeedback drops entries for questions the quiz does not have,
// keeps only the first entry per question number, and bounds points_earned to
// [0, question points], so the summed score can never exceed the quiz's total
// marks.
func clampQuestionFeedback(entries []dto.QuestionFeedback, req *EvaluationRequest) []dto.QuestionFeedback {
	pointsByNumber := make(map[int]float64, len(req.Questions))
	for _, q := range req.Questions {
		pointsByNumber[q.Number] = q.Points
	}

	seen := make(map[int]bool, len(req.Questions))
	kept := make([]dto.QuestionFeedback, 0, len(entries))
	for _, entry := range entries {
		maxPoints, known := pointsByNumber[entry.QuestionNumber]
		if !known {
			log.Warn().Int("question_number", entry.QuestionNumber).Msg("Model graded a question the quiz does not have, dropping entry")
			continue
		}
		if seen[entry.QuestionNumber] {
			log.Warn().Int("question_number", entry.QuestionNumber).Msg("Model graded a question more than once, keeping the first entry")
			continue
		}
		seen[entry.QuestionNumber] = true
		if entry.PointsEarned < 0 {
			entry.PointsEarned = 0
		}
		if entry.PointsEarned > maxPoints {
			entry.PointsEarned = maxPoints
		}
		kept = append(kept, entry)
	}
	return kept
}

// mineFeedbackText buckets line-leading bullet items into strengths,
// improvements and recommendations based on the most recent keyword seen,
// capped per bucket. The raw text becomes the overall feedback verbatim; the
// words still came from the model, so provenance stays ai_generated.
func mineFeedbackText(raw string) *dto.EvaluationFeedback {
	feedback := &dto.EvaluationFeedback{
		QuestionFeedback: []dto.QuestionFeedback{},
		OverallFeedback:  raw,
		Strengths:        []string{},
		Improvements:     []string{},
		Recommendations:  []string{},
		AIGenerated:      true,
	}

	var current *[]string
	for _, line := range strings.Split(raw, "\n") {
		lower := strings.ToLower(line)
		switch {
		case strings.Contains(lower, "strength"):
			current = &feedback.Strengths
		case strings.Contains(lower, "improvement"):
			current = &feedback.Improvements
		case strings.Contains(lower, "recommendation"):
			current = &feedback.Recommendations
		}
		trimmed := strings.TrimSpace(line)
		if current != nil && strings.HasPrefix(trimmed, "- ") && len(*current) < bulletBucketCap {
			*current = append(*current, strings.TrimSpace(strings.TrimPrefix(trimmed, "- ")))
		}
	}
	return feedback
}
