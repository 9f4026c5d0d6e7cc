package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPaid    = "paid"
	PaymentStatusPending = "pending"
)

type Enrollment struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	CourseID      uint           `json:"course_id" gorm:"not null;index:idx_enrollment_course_user"`
	Course        Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	UserID        uint           `json:"user_id" gorm:"not null;index:idx_enrollment_course_user"`
	PaymentStatus string         `json:"payment_status" gorm:"not null;default:'pending'"`
	EnrolledAt    time.Time      `json:"enrolled_at" gorm:"autoCreateTime"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
