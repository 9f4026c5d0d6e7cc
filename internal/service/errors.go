package service

import (
	"errors"
	"fmt"
)

// AccessError is a pre-grading denial. It is surfaced to the caller as a 403
// with its code and never triggers any grading work.
type AccessError struct {
	Code    string
	Message string
}

func (e *AccessError) Error() string {
	return e.Message
}

var (
	ErrNotEnrolled = &AccessError{
		Code:    "NOT_ENROLLED",
		Message: "You are not enrolled in this course or your enrollment is unpaid",
	}
	ErrAttemptsExhausted = &AccessError{
		Code:    "ATTEMPTS_EXHAUSTED",
		Message: "You have used all allowed attempts for this quiz",
	}
	ErrQuizClosed = &AccessError{
		Code:    "QUIZ_CLOSED",
		Message: "This quiz is not currently open for submissions",
	}
)

type GradingErrorKind string

const (
	GradingNotConfigured    GradingErrorKind = "NOT_CONFIGURED"
	GradingTransportFailure GradingErrorKind = "TRANSPORT_FAILURE"
	GradingUpstreamError    GradingErrorKind = "UPSTREAM_ERROR"
)

// GradingError is any failure of the external grading call. It is always
// recovered internally by falling back to the deterministic grader; a learner
// never sees it.
type GradingError struct {
	Kind GradingErrorKind
	Err  error
}

func (e *GradingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("grading failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("grading failed (%s)", e.Kind)
}

func (e *GradingError) Unwrap() error {
	return e.Err
}

// ErrEmptyModelOutput is the only parse failure: the model produced no text
// to extract anything from. Like GradingError, it routes to the fallback.
var ErrEmptyModelOutput = errors.New("model output is empty")
