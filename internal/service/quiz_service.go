package service

import (
	"fmt"

	"github.com/coursflow/coursflow/internal/dto"
	"github.com/coursflow/coursflow/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// QuizService serves the student-facing read surfaces: quiz listing and
// details. Correct answers never leave this layer.
type QuizService interface {
	GetAllQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error)
}

type quizService struct {
	quizRepo repository.QuizRepository
}

func NewQuizService(quizRepo repository.QuizRepository) QuizService {
	return &quizService{quizRepo: quizRepo}
}

func (s *quizService) GetAllQuizzes() ([]dto.QuizSummaryDTO, error) {
	quizzes, err := s.quizRepo.FindPublishedWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, dto.QuizSummaryDTO{
			ID:            q.ID,
			CourseID:      q.CourseID,
			Title:         q.Title,
			Description:   q.Description,
			TotalMarks:    q.TotalMarks,
			PassingScore:  q.PassingScore,
			MaxAttempts:   q.MaxAttempts,
			QuestionCount: q.QuestionCount,
			CreatedAt:     q.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *quizService) GetQuizDetails(quizID uint) (*dto.QuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, fmt.Errorf("quiz not found with ID %d: %w", quizID, err)
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		log.Error().Err(err).Msg("Failed to copy Quiz model to QuizDetailDTO")
		return nil, fmt.Errorf("error preparing quiz details response: %w", err)
	}
	resp.CourseTitle = quiz.Course.Title

	// Rebuild questions by hand: the DTO strips correct answers and decodes
	// the stored options JSON.
	resp.Questions = make([]dto.QuestionResponseDTO, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		resp.Questions = append(resp.Questions, dto.QuestionResponseDTO{
			ID:       q.ID,
			Position: q.Position,
			Text:     q.Text,
			Type:     q.Type,
			Options:  decodeOptions(q.Options),
			Points:   points,
		})
	}
	return &resp, nil
}
