package student

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/coursflow/coursflow/internal/dto"
	"github.com/coursflow/coursflow/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizAttemptController struct {
	quizService       service.QuizService
	submissionService service.QuizSubmissionService
}

func NewQuizAttemptController(quizService service.QuizService, submissionService service.QuizSubmissionService) *QuizAttemptController {
	return &QuizAttemptController{
		quizService:       quizService,
		submissionService: submissionService,
	}
}

// currentUserID resolves the authenticated learner. Session mechanics live in
// an upstream identity layer; it hands us the user via the X-User-ID header.
func currentUserID(ctx *gin.Context) (uint, bool) {
	raw := ctx.GetHeader("X-User-ID")
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		return 0, false
	}
	return uint(val), true
}

// SubmitQuizAttempt godoc
// @Summary (Student) Submit a quiz for grading
// @Description Grades the submitted answers (AI-assisted with deterministic fallback) and records an attempt. A submission always returns a graded result unless access is denied or the request is invalid.
// @Tags Student - Quiz Attempts
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param submission body dto.SubmitQuizAttemptDTO true "Quiz ID, answers keyed by question id or position, optional time spent"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse "Unauthenticated"
// @Failure 403 {object} dto.APIErrorResponse "NOT_ENROLLED or ATTEMPTS_EXHAUSTED"
// @Failure 404 {object} dto.APIErrorResponse "Quiz not found"
// @Failure 422 {object} dto.APIErrorResponse "Malformed request body"
// @Failure 500 {object} dto.APIErrorResponse "Internal server error"
// @Router /quiz-attempts [post]
func (c *QuizAttemptController) SubmitQuizAttempt(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error("UNAUTHENTICATED", "Authentication required"))
		return
	}

	var req dto.SubmitQuizAttemptDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("SubmitQuizAttempt: failed to bind JSON")
		ctx.JSON(http.StatusUnprocessableEntity, dto.Error("VALIDATION_FAILED", "quiz_id and answers are required"))
		return
	}

	result, err := c.submissionService.SubmitQuiz(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondSubmitError(ctx, userID, req.QuizID, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(result))
}

func (c *QuizAttemptController) respondSubmitError(ctx *gin.Context, userID, quizID uint, err error) {
	var accessErr *service.AccessError
	switch {
	case errors.As(err, &accessErr):
		ctx.JSON(http.StatusForbidden, dto.Error(accessErr.Code, accessErr.Message))
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, dto.Error("QUIZ_NOT_FOUND", "Quiz not found"))
	case ctx.Request.Context().Err() != nil:
		// Client went away; nothing to write.
	default:
		log.Error().Err(err).Uint("userID", userID).Uint("quizID", quizID).Msg("SubmitQuizAttempt: unexpected failure")
		ctx.JSON(http.StatusInternalServerError, dto.Error("INTERNAL_ERROR", "Something went wrong. Please try again."))
	}
}

// GetAllQuizzes godoc
// @Summary (Student) List published quizzes
// @Tags Student - Quizzes
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 500 {object} dto.APIErrorResponse
// @Router /quizzes [get]
func (c *QuizAttemptController) GetAllQuizzes(ctx *gin.Context) {
	if _, ok := currentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error("UNAUTHENTICATED", "Authentication required"))
		return
	}
	quizzes, err := c.quizService.GetAllQuizzes()
	if err != nil {
		log.Error().Err(err).Msg("GetAllQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.Error("INTERNAL_ERROR", "Failed to retrieve quizzes"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(quizzes))
}

// GetQuizDetails godoc
// @Summary (Student) Get a quiz with its questions
// @Description Correct answers are never included in the response.
// @Tags Student - Quizzes
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse "Invalid quiz ID"
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /quizzes/{quiz_id} [get]
func (c *QuizAttemptController) GetQuizDetails(ctx *gin.Context) {
	if _, ok := currentUserID(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error("UNAUTHENTICATED", "Authentication required"))
		return
	}
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Invalid quiz ID format"))
		return
	}
	details, err := c.quizService.GetQuizDetails(uint(quizID))
	if err != nil {
		log.Warn().Err(err).Uint64("quizID", quizID).Msg("GetQuizDetails: not found or service error")
		ctx.JSON(http.StatusNotFound, dto.Error("QUIZ_NOT_FOUND", "Quiz not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(details))
}

// GetMyAttempts godoc
// @Summary (Student) List own attempts for a quiz
// @Tags Student - Quiz Attempts
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 500 {object} dto.APIErrorResponse
// @Router /quizzes/{quiz_id}/my-attempts [get]
func (c *QuizAttemptController) GetMyAttempts(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error("UNAUTHENTICATED", "Authentication required"))
		return
	}
	quizID, err := strconv.ParseUint(ctx.Param("quiz_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Invalid quiz ID format"))
		return
	}
	attempts, err := c.submissionService.GetUserAttemptsForQuiz(uint(quizID), userID)
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Uint("userID", userID).Msg("GetMyAttempts: service error")
		ctx.JSON(http.StatusInternalServerError, dto.Error("INTERNAL_ERROR", "Failed to retrieve attempts"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(attempts))
}

// GetAttemptDetails godoc
// @Summary (Student) Get one of own attempts with full feedback
// @Tags Student - Quiz Attempts
// @Produce json
// @Param X-User-ID header int true "Authenticated user ID"
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.APIErrorResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 404 {object} dto.APIErrorResponse
// @Router /quiz-attempts/{attempt_id} [get]
func (c *QuizAttemptController) GetAttemptDetails(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error("UNAUTHENTICATED", "Authentication required"))
		return
	}
	attemptID, err := strconv.ParseUint(ctx.Param("attempt_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("INVALID_ID", "Invalid attempt ID format"))
		return
	}
	detail, err := c.submissionService.GetAttemptDetails(uint(attemptID), userID)
	if err != nil {
		log.Warn().Err(err).Uint64("attemptID", attemptID).Uint("userID", userID).Msg("GetAttemptDetails: not found")
		ctx.JSON(http.StatusNotFound, dto.Error("ATTEMPT_NOT_FOUND", "Attempt not found"))
		return
	}
	ctx.JSON(http.StatusOK, dto.OK(detail))
}
