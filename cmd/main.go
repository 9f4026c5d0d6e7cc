package main

import (
	"context"
	"net/http"
	"time"

	"github.com/coursflow/coursflow/config"
	"github.com/coursflow/coursflow/database"
	_ "github.com/coursflow/coursflow/docs" // Swagger docs - auto-generated
	studentctrl "github.com/coursflow/coursflow/internal/controller/student"
	teacherctrl "github.com/coursflow/coursflow/internal/controller/teacher"
	"github.com/coursflow/coursflow/internal/logger"
	"github.com/coursflow/coursflow/internal/model"
	"github.com/coursflow/coursflow/internal/repository"
	"github.com/coursflow/coursflow/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title CoursFlow Quiz Grading API
// @version 1.0
// @description Course-management quiz submission and AI-assisted grading API. Submissions are always graded: an unavailable AI service degrades to deterministic exact-match scoring, never to an error.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewCourseRepository,
			repository.NewEnrollmentRepository,
			repository.NewQuizRepository,
			repository.NewAttemptRepository,
		),

		// Services
		fx.Provide(
			service.NewAccessService,
			service.NewPromptService,
			service.NewGeminiGradingService,
			service.NewFeedbackParserService,
			service.NewFallbackGraderService,
			service.NewQuizSubmissionService,
			service.NewQuizService,
			service.NewTeacherService,
		),

		// Controllers
		fx.Provide(
			studentctrl.NewQuizAttemptController,
			teacherctrl.NewTeacherController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	attemptCtrl *studentctrl.QuizAttemptController,
	teacherCtrl *teacherctrl.TeacherController,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/quizzes", attemptCtrl.GetAllQuizzes)
		api.GET("/quizzes/:quiz_id", attemptCtrl.GetQuizDetails)
		api.GET("/quizzes/:quiz_id/my-attempts", attemptCtrl.GetMyAttempts)

		api.POST("/quiz-attempts", attemptCtrl.SubmitQuizAttempt)
		api.GET("/quiz-attempts/:attempt_id", attemptCtrl.GetAttemptDetails)

		teacherGroup := api.Group("/teacher")
		teacherGroup.POST("/courses", teacherCtrl.CreateCourse)
		teacherGroup.POST("/quizzes", teacherCtrl.CreateQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("CoursFlow grading API starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Course{},
		&model.Enrollment{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizAttempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
