package service

import (
	"context"

	"github.com/coursflow/coursflow/internal/model"
	"github.com/coursflow/coursflow/internal/repository"
	"gorm.io/gorm"
)

type fakeEnrollmentRepo struct {
	paid map[[2]uint]bool // (courseID, userID) -> paid enrollment exists
	err  error
}

func (f *fakeEnrollmentRepo) Create(e *model.Enrollment) error { return nil }

func (f *fakeEnrollmentRepo) FindPaid(courseID, userID uint) (*model.Enrollment, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.paid[[2]uint{courseID, userID}] {
		return &model.Enrollment{CourseID: courseID, UserID: userID, PaymentStatus: model.PaymentStatusPaid}, nil
	}
	return nil, nil
}

type fakeAttemptRepo struct {
	attempts []model.QuizAttempt
	nextID   uint
	// createErr is returned by CreateWithinLimit without keeping the row,
	// standing in for a transaction that rolled back.
	createErr error
}

func (f *fakeAttemptRepo) CreateWithinLimit(attempt *model.QuizAttempt, maxAttempts *int) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	attempt.ID = f.nextID
	f.attempts = append(f.attempts, *attempt)
	if maxAttempts != nil {
		count := 0
		for _, a := range f.attempts {
			if a.QuizID == attempt.QuizID && a.UserID == attempt.UserID {
				count++
			}
		}
		if count > *maxAttempts {
			f.attempts = f.attempts[:len(f.attempts)-1]
			return repository.ErrAttemptLimitReached
		}
	}
	return nil
}

func (f *fakeAttemptRepo) CountByQuizAndUser(quizID, userID uint) (int64, error) {
	var count int64
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeAttemptRepo) FindByID(id uint) (*model.QuizAttempt, error) {
	for i := range f.attempts {
		if f.attempts[i].ID == id {
			return &f.attempts[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAttemptRepo) FindByIDWithQuiz(id uint) (*model.QuizAttempt, error) {
	return f.FindByID(id)
}

func (f *fakeAttemptRepo) FindAllByQuizAndUser(quizID, userID uint) ([]model.QuizAttempt, error) {
	var out []model.QuizAttempt
	for _, a := range f.attempts {
		if a.QuizID == quizID && a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeQuizRepo struct {
	quizzes map[uint]*model.Quiz
}

func (f *fakeQuizRepo) Create(quiz *model.Quiz) error { return nil }

func (f *fakeQuizRepo) FindByID(id uint) (*model.Quiz, error) {
	return f.FindByIDWithQuestions(id)
}

func (f *fakeQuizRepo) FindByIDWithQuestions(id uint) (*model.Quiz, error) {
	quiz, ok := f.quizzes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (f *fakeQuizRepo) FindPublishedWithQuestionCount() ([]repository.QuizWithQuestionCount, error) {
	return nil, nil
}

// scriptedLLM returns a canned response or error and counts invocations.
type scriptedLLM struct {
	raw   string
	err   error
	calls int
}

func (s *scriptedLLM) Evaluate(ctx context.Context, req *EvaluationRequest) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.raw, nil
}
