package repository

import (
	"errors"

	"github.com/coursflow/coursflow/internal/model"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(enrollment *model.Enrollment) error
	// FindPaid returns the learner's paid enrollment on a course, or nil when
	// no such enrollment exists.
	FindPaid(courseID, userID uint) (*model.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *enrollmentRepository) FindPaid(courseID, userID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.
		Where("course_id = ? AND user_id = ? AND payment_status = ?", courseID, userID, model.PaymentStatusPaid).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
