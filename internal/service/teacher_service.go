package service

import (
	"encoding/json"
	"fmt"

	"github.com/coursflow/coursflow/internal/dto"
	"github.com/coursflow/coursflow/internal/model"
	"github.com/coursflow/coursflow/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// TeacherService covers course and quiz authoring.
type TeacherService interface {
	CreateCourse(teacherID uint, req dto.CreateCourseDTO) (*dto.CourseResponseDTO, error)
	CreateQuiz(teacherID uint, req dto.CreateQuizDTO) (*dto.QuizDetailDTO, error)
}

type teacherService struct {
	courseRepo repository.CourseRepository
	quizRepo   repository.QuizRepository
}

func NewTeacherService(courseRepo repository.CourseRepository, quizRepo repository.QuizRepository) TeacherService {
	return &teacherService{courseRepo: courseRepo, quizRepo: quizRepo}
}

func (s *teacherService) CreateCourse(teacherID uint, req dto.CreateCourseDTO) (*dto.CourseResponseDTO, error) {
	course := model.Course{
		Title:       req.Title,
		Description: req.Description,
		TeacherID:   teacherID,
	}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Msg("Failed to create course")
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	var resp dto.CourseResponseDTO
	if err := copier.Copy(&resp, &course); err != nil {
		return nil, fmt.Errorf("error preparing course response: %w", err)
	}
	return &resp, nil
}

func (s *teacherService) CreateQuiz(teacherID uint, req dto.CreateQuizDTO) (*dto.QuizDetailDTO, error) {
	course, err := s.courseRepo.FindByID(req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("course not found with ID %d: %w", req.CourseID, err)
	}
	if course.TeacherID != teacherID {
		return nil, fmt.Errorf("course %d does not belong to teacher %d", req.CourseID, teacherID)
	}

	quiz := model.Quiz{
		CourseID:     req.CourseID,
		Title:        req.Title,
		Description:  req.Description,
		PassingScore: req.PassingScore,
		MaxAttempts:  req.MaxAttempts,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Published:    true,
	}

	totalMarks := 0.0
	for _, qReq := range req.Questions {
		points := qReq.Points
		if points <= 0 {
			points = 1
		}
		totalMarks += points

		optionsJSON := ""
		if len(qReq.Options) > 0 {
			encoded, err := json.Marshal(qReq.Options)
			if err != nil {
				return nil, fmt.Errorf("failed to encode options for question %d: %w", qReq.Position, err)
			}
			optionsJSON = string(encoded)
		}

		quiz.Questions = append(quiz.Questions, model.Question{
			Position:      qReq.Position,
			Text:          qReq.Text,
			Type:          qReq.Type,
			Options:       optionsJSON,
			CorrectAnswer: qReq.CorrectAnswer,
			Points:        points,
		})
	}
	quiz.TotalMarks = req.TotalMarks
	if quiz.TotalMarks <= 0 {
		quiz.TotalMarks = totalMarks
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Uint("courseID", req.CourseID).Msg("Failed to create quiz")
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	var resp dto.QuizDetailDTO
	if err := copier.Copy(&resp, &quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	resp.CourseTitle = course.Title
	resp.Questions = make([]dto.QuestionResponseDTO, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponseDTO{
			ID:       q.ID,
			Position: q.Position,
			Text:     q.Text,
			Type:     q.Type,
			Options:  decodeOptions(q.Options),
			Points:   q.Points,
		})
	}
	return &resp, nil
}
