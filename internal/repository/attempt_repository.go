package repository

import (
	"errors"

	"github.com/coursflow/coursflow/internal/model"
	"gorm.io/gorm"
)

// ErrAttemptLimitReached is returned by CreateWithinLimit when inserting the
// attempt would push the learner past the quiz's attempt ceiling.
var ErrAttemptLimitReached = errors.New("attempt limit reached for quiz")

type AttemptRepository interface {
	// CreateWithinLimit inserts the attempt and verifies, inside the same
	// transaction, that the per-(quiz, user) count does not exceed maxAttempts.
	// A maxAttempts of nil means unlimited. On a ceiling breach the insert is
	// rolled back and ErrAttemptLimitReached is returned, so two concurrent
	// submissions cannot both land under the ceiling.
	CreateWithinLimit(attempt *model.QuizAttempt, maxAttempts *int) error
	CountByQuizAndUser(quizID, userID uint) (int64, error)
	FindByID(id uint) (*model.QuizAttempt, error)
	FindByIDWithQuiz(id uint) (*model.QuizAttempt, error)
	FindAllByQuizAndUser(quizID, userID uint) ([]model.QuizAttempt, error)
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) CreateWithinLimit(attempt *model.QuizAttempt, maxAttempts *int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(attempt).Error; err != nil {
			return err
		}
		if maxAttempts == nil {
			return nil
		}
		var count int64
		err := tx.Model(&model.QuizAttempt{}).
			Where("quiz_id = ? AND user_id = ?", attempt.QuizID, attempt.UserID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > int64(*maxAttempts) {
			return ErrAttemptLimitReached
		}
		return nil
	})
}

func (r *attemptRepository) CountByQuizAndUser(quizID, userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizAttempt{}).
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Count(&count).Error
	return count, err
}

func (r *attemptRepository) FindByID(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByIDWithQuiz(id uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	if err := r.db.Preload("Quiz").First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindAllByQuizAndUser(quizID, userID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("submitted_at DESC").
		Find(&attempts).Error
	return attempts, err
}
