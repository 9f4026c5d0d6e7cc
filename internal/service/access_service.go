package service

import (
	"time"

	"github.com/coursflow/coursflow/internal/model"
	"github.com/coursflow/coursflow/internal/repository"
	"github.com/rs/zerolog/log"
)

// AccessService gates quiz submissions. Checks run before any grading work so
// a denied learner never costs an external-service call. It has no side
// effects; the ceiling is re-verified atomically at insert time.
type AccessService interface {
	CanSubmit(quiz *model.Quiz, userID uint) error
}

type accessService struct {
	enrollmentRepo repository.EnrollmentRepository
	attemptRepo    repository.AttemptRepository
}

func NewAccessService(enrollmentRepo repository.EnrollmentRepository, attemptRepo repository.AttemptRepository) AccessService {
	return &accessService{enrollmentRepo: enrollmentRepo, attemptRepo: attemptRepo}
}

func (s *accessService) CanSubmit(quiz *model.Quiz, userID uint) error {
	enrollment, err := s.enrollmentRepo.FindPaid(quiz.CourseID, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		log.Info().Uint("userID", userID).Uint("quizID", quiz.ID).Msg("Submission denied: no paid enrollment")
		return ErrNotEnrolled
	}

	now := time.Now()
	if quiz.StartTime != nil && now.Before(*quiz.StartTime) {
		return ErrQuizClosed
	}
	if quiz.EndTime != nil && now.After(*quiz.EndTime) {
		return ErrQuizClosed
	}

	if quiz.MaxAttempts != nil {
		count, err := s.attemptRepo.CountByQuizAndUser(quiz.ID, userID)
		if err != nil {
			return err
		}
		if count >= int64(*quiz.MaxAttempts) {
			log.Info().Uint("userID", userID).Uint("quizID", quiz.ID).Int64("attempts", count).Msg("Submission denied: attempt ceiling reached")
			return ErrAttemptsExhausted
		}
	}
	return nil
}
