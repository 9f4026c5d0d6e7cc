package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursflow/coursflow/config"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GradingLLMService sends one evaluation request to the external model and
// returns its raw text output. Every failure mode comes back as a typed
// *GradingError so the caller can deterministically fall back; nothing
// escapes this boundary as a panic.
type GradingLLMService interface {
	Evaluate(ctx context.Context, req *EvaluationRequest) (string, error)
}

type geminiGradingService struct {
	model *genai.GenerativeModel
	cfg   *config.Config
}

func NewGeminiGradingService(cfg *config.Config) (GradingLLMService, error) {
	if cfg.Grading.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. All submissions will be graded by the fallback grader.")
		return &geminiGradingService{cfg: cfg}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Grading.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	return &geminiGradingService{
		model: client.GenerativeModel(cfg.Grading.GeminiModel),
		cfg:   cfg,
	}, nil
}

func (s *geminiGradingService) Evaluate(ctx context.Context, req *EvaluationRequest) (string, error) {
	if s.model == nil {
		return "", &GradingError{Kind: GradingNotConfigured}
	}

	// A hung upstream must not stall the submission; the caller falls back on
	// timeout the same as on any other failure.
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Grading.Timeout)
	defer cancel()

	resp, err := s.model.GenerateContent(ctx, genai.Text(renderEvaluationPrompt(req)))
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			log.Warn().Int("status", apiErr.Code).Msg("Gemini returned an error status")
			return "", &GradingError{Kind: GradingUpstreamError, Err: err}
		}
		return "", &GradingError{Kind: GradingTransportFailure, Err: err}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &GradingError{Kind: GradingUpstreamError, Err: errors.New("gemini returned no candidates")}
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text += string(txt)
		}
	}
	if text == "" {
		return "", &GradingError{Kind: GradingUpstreamError, Err: errors.New("gemini returned no text content")}
	}
	return text, nil
}
