package teacher

import (
	"net/http"
	"strconv"

	"github.com/coursflow/coursflow/internal/dto"
	"github.com/coursflow/coursflow/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type TeacherController struct {
	teacherService service.TeacherService
}

func NewTeacherController(teacherService service.TeacherService) *TeacherController {
	return &TeacherController{teacherService: teacherService}
}

func currentTeacherID(ctx *gin.Context) (uint, bool) {
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

// CreateCourse godoc
// @Summary (Teacher) Create a course
// @Tags Teacher
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated teacher ID"
// @Param course body dto.CreateCourseDTO true "Course data"
// @Success 201 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 422 {object} dto.APIErrorResponse
// @Failure 500 {object} dto.APIErrorResponse
// @Router /teacher/courses [post]
func (c *TeacherController) CreateCourse(ctx *gin.Context) {
	teacherID, ok := currentTeacherID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error("UNAUTHENTICATED", "Authentication required"))
		return
	}
	var req dto.CreateCourseDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateCourse: failed to bind JSON")
		ctx.JSON(http.StatusUnprocessableEntity, dto.Error("VALIDATION_FAILED", err.Error()))
		return
	}
	course, err := c.teacherService.CreateCourse(teacherID, req)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", teacherID).Msg("CreateCourse: service error")
		ctx.JSON(http.StatusInternalServerError, dto.Error("INTERNAL_ERROR", "Failed to create course"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(course))
}

// CreateQuiz godoc
// @Summary (Teacher) Create a quiz with its questions
// @Description Total marks default to the sum of question points when omitted. Question positions are 1-based.
// @Tags Teacher
// @Accept json
// @Produce json
// @Param X-User-ID header int true "Authenticated teacher ID"
// @Param quiz body dto.CreateQuizDTO true "Quiz data including questions"
// @Success 201 {object} dto.APIResponse
// @Failure 401 {object} dto.APIErrorResponse
// @Failure 422 {object} dto.APIErrorResponse
// @Failure 500 {object} dto.APIErrorResponse
// @Router /teacher/quizzes [post]
func (c *TeacherController) CreateQuiz(ctx *gin.Context) {
	teacherID, ok := currentTeacherID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Error("UNAUTHENTICATED", "Authentication required"))
		return
	}
	var req dto.CreateQuizDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusUnprocessableEntity, dto.Error("VALIDATION_FAILED", err.Error()))
		return
	}

	positions := make(map[int]bool, len(req.Questions))
	for _, q := range req.Questions {
		if positions[q.Position] {
			ctx.JSON(http.StatusUnprocessableEntity, dto.Error("VALIDATION_FAILED", "Duplicate question position"))
			return
		}
		positions[q.Position] = true
		if (q.Type == "mcq" || q.Type == "true_false") && len(q.Options) == 0 {
			ctx.JSON(http.StatusUnprocessableEntity, dto.Error("VALIDATION_FAILED", "Choice questions require options"))
			return
		}
	}

	quiz, err := c.teacherService.CreateQuiz(teacherID, req)
	if err != nil {
		log.Error().Err(err).Uint("teacherID", teacherID).Uint("courseID", req.CourseID).Msg("CreateQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.Error("INTERNAL_ERROR", "Failed to create quiz"))
		return
	}
	ctx.JSON(http.StatusCreated, dto.OK(quiz))
}
