package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/coursflow/coursflow/config"
	"github.com/coursflow/coursflow/internal/dto"
	"github.com/coursflow/coursflow/internal/model"
	"github.com/coursflow/coursflow/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizSubmissionService runs the whole grading pipeline for one submission:
// access gate, evaluation-request build, model grade with deterministic
// fallback, attempt persistence, response assembly. A submission either
// completes end to end or the caller sees a terminal error before anything
// is persisted.
type QuizSubmissionService interface {
	SubmitQuiz(ctx context.Context, userID uint, req dto.SubmitQuizAttemptDTO) (*dto.SubmissionResultDTO, error)
	GetAttemptDetails(attemptID, userID uint) (*dto.AttemptDetailDTO, error)
	GetUserAttemptsForQuiz(quizID, userID uint) ([]dto.AttemptSummaryDTO, error)
}

type quizSubmissionService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.AttemptRepository
	accessSvc   AccessService
	promptSvc   PromptService
	llm         GradingLLMService
	parser      FeedbackParserService
	fallback    FallbackGraderService
	cfg         *config.Config
}

func NewQuizSubmissionService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.AttemptRepository,
	accessSvc AccessService,
	promptSvc PromptService,
	llm GradingLLMService,
	parser FeedbackParserService,
	fallback FallbackGraderService,
	cfg *config.Config,
) QuizSubmissionService {
	return &quizSubmissionService{
		quizRepo:    quizRepo,
		attemptRepo: attemptRepo,
		accessSvc:   accessSvc,
		promptSvc:   promptSvc,
		llm:         llm,
		parser:      parser,
		fallback:    fallback,
		cfg:         cfg,
	}
}

func (s *quizSubmissionService) SubmitQuiz(ctx context.Context, userID uint, req dto.SubmitQuizAttemptDTO) (*dto.SubmissionResultDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(req.QuizID)
	if err != nil {
		return nil, fmt.Errorf("quiz %d not found: %w", req.QuizID, err)
	}

	if err := s.accessSvc.CanSubmit(quiz, userID); err != nil {
		return nil, err
	}

	evalReq := s.promptSvc.Build(quiz, req.Answers)
	feedback := s.gradeWithFallback(ctx, evalReq, quiz.ID, userID)

	// The caller went away mid-grade; nothing was persisted, so just stop.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	score := 0.0
	correct := 0
	for _, qf := range feedback.QuestionFeedback {
		score += qf.PointsEarned
		if qf.IsCorrect {
			correct++
		}
	}
	// Teacher-entered total_marks may be lower than the sum of question points.
	if quiz.TotalMarks > 0 && score > quiz.TotalMarks {
		score = quiz.TotalMarks
	}

	percentage := 0.0
	if quiz.TotalMarks > 0 {
		percentage = math.Round(score/quiz.TotalMarks*100*100) / 100
	}
	threshold := quiz.PassingScore
	if threshold <= 0 {
		threshold = s.cfg.Grading.PassingDefault
	}
	passed := percentage >= threshold

	answersJSON, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode answers: %w", err)
	}
	feedbackJSON, err := json.Marshal(feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feedback: %w", err)
	}

	attempt := model.QuizAttempt{
		QuizID:     quiz.ID,
		UserID:     userID,
		Answers:    string(answersJSON),
		Feedback:   string(feedbackJSON),
		Score:      score,
		Percentage: percentage,
		Passed:     passed,
		TimeSpent:  req.TimeSpent,
	}
	if err := s.attemptRepo.CreateWithinLimit(&attempt, quiz.MaxAttempts); err != nil {
		if errors.Is(err, repository.ErrAttemptLimitReached) {
			// A concurrent submission won the last slot between the access
			// check and the insert.
			return nil, ErrAttemptsExhausted
		}
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("quizID", quiz.ID).
		Uint("userID", userID).
		Float64("score", score).
		Bool("passed", passed).
		Bool("ai_generated", feedback.AIGenerated).
		Msg("Quiz attempt recorded")

	canRetake, remaining := s.retakeStatus(quiz, userID, attempt.ID)

	return &dto.SubmissionResultDTO{
		AttemptID:         attempt.ID,
		Score:             score,
		TotalMarks:        quiz.TotalMarks,
		Percentage:        percentage,
		Passed:            passed,
		CorrectAnswers:    correct,
		TotalQuestions:    len(evalReq.Questions),
		TimeSpent:         req.TimeSpent,
		AIFeedback:        *feedback,
		CanRetake:         canRetake,
		AttemptsRemaining: remaining,
	}, nil
}

// gradeWithFallback tries the model path and flips to the deterministic
// grader on any GradingError or ParseError. The branch is explicit: AI
// grading is best effort, the fallback is the guaranteed result.
func (s *quizSubmissionService) gradeWithFallback(ctx context.Context, evalReq *EvaluationRequest, quizID, userID uint) *dto.EvaluationFeedback {
	raw, err := s.llm.Evaluate(ctx, evalReq)
	if err != nil {
		var gradingErr *GradingError
		if errors.As(err, &gradingErr) {
			log.Warn().Str("kind", string(gradingErr.Kind)).Err(gradingErr.Err).
				Uint("quizID", quizID).Uint("userID", userID).
				Msg("Model grading unavailable, using fallback grader")
		} else {
			log.Warn().Err(err).Uint("quizID", quizID).Msg("Model grading failed, using fallback grader")
		}
		return s.fallback.Grade(evalReq)
	}

	feedback, err := s.parser.Parse(raw, evalReq)
	if err != nil {
		log.Warn().Err(err).Uint("quizID", quizID).Msg("Model output unparseable, using fallback grader")
		return s.fallback.Grade(evalReq)
	}
	return feedback
}

// retakeStatus derives can_retake and attempts_remaining from the
// post-insert attempt count. attempts_remaining is the literal string
// "unlimited" when the quiz has no ceiling.
func (s *quizSubmissionService) retakeStatus(quiz *model.Quiz, userID, attemptID uint) (bool, any) {
	if quiz.MaxAttempts == nil {
		return true, "unlimited"
	}
	count, err := s.attemptRepo.CountByQuizAndUser(quiz.ID, userID)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Failed to count attempts for retake status")
		return false, 0
	}
	remaining := *quiz.MaxAttempts - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return remaining > 0, remaining
}

func (s *quizSubmissionService) GetAttemptDetails(attemptID, userID uint) (*dto.AttemptDetailDTO, error) {
	attempt, err := s.attemptRepo.FindByIDWithQuiz(attemptID)
	if err != nil {
		return nil, fmt.Errorf("attempt %d not found: %w", attemptID, err)
	}
	if attempt.UserID != userID {
		// Attempt detail is private to its owner.
		return nil, fmt.Errorf("attempt %d not found for user %d: %w", attemptID, userID, gorm.ErrRecordNotFound)
	}

	detail := &dto.AttemptDetailDTO{
		ID:          attempt.ID,
		QuizID:      attempt.QuizID,
		QuizTitle:   attempt.Quiz.Title,
		UserID:      attempt.UserID,
		Score:       attempt.Score,
		Percentage:  attempt.Percentage,
		Passed:      attempt.Passed,
		TimeSpent:   attempt.TimeSpent,
		SubmittedAt: attempt.SubmittedAt,
	}
	if err := json.Unmarshal([]byte(attempt.Answers), &detail.Answers); err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("Stored answers are not valid JSON")
	}
	if err := json.Unmarshal([]byte(attempt.Feedback), &detail.Feedback); err != nil {
		log.Warn().Err(err).Uint("attemptID", attempt.ID).Msg("Stored feedback is not valid JSON")
	}
	return detail, nil
}

func (s *quizSubmissionService) GetUserAttemptsForQuiz(quizID, userID uint) ([]dto.AttemptSummaryDTO, error) {
	attempts, err := s.attemptRepo.FindAllByQuizAndUser(quizID, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching attempts for quiz %d: %w", quizID, err)
	}

	summaries := make([]dto.AttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		summaries = append(summaries, dto.AttemptSummaryDTO{
			ID:          attempt.ID,
			QuizID:      attempt.QuizID,
			Score:       attempt.Score,
			Percentage:  attempt.Percentage,
			Passed:      attempt.Passed,
			TimeSpent:   attempt.TimeSpent,
			SubmittedAt: attempt.SubmittedAt,
		})
	}
	return summaries, nil
}
