package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SaiPrasanth27/interview-prep/internal/config"
	"github.com/SaiPrasanth27/interview-prep/internal/generation"
	"github.com/SaiPrasanth27/interview-prep/internal/interview"
	"github.com/SaiPrasanth27/interview-prep/internal/interview/questions"
	"github.com/SaiPrasanth27/interview-prep/internal/interview/sessions"
	"github.com/SaiPrasanth27/interview-prep/internal/interview/users"
)

// AppState holds all application services
type AppState struct {
	DB                *bun.DB
	Logger            *zap.Logger
	Config            *config.Config
	UserService       users.UserService
	SessionService    sessions.SessionManager
	QuestionService   questions.QuestionManager
	GenerationService generation.GenerationManager
}

func main() {
	// Local .env support, same precedence as real environment variables
	_ = godotenv.Load()

	// Load configuration
	config.Load()

	// Initialize logger with config
	logger := initLogger()

	// Initialize application state
	as, err := newAppState(logger)
	if err != nil {
		logger.Fatal("Failed to initialize application state", zap.Error(err))
	}

	// Create database tables
	ctx := context.Background()
	if err := createTables(ctx, as.DB); err != nil {
		logger.Fatal("Failed to create database tables", zap.Error(err))
	}

	// Create HTTP server
	router := setupRouter(as)

	addr := fmt.Sprintf("%s:%d", config.Http().Host, config.Http().Port)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Setup graceful shutdown
	done := setupSignalHandler(as, server, logger)

	// Start server
	logger.Info("Starting interview-prep server",
		zap.String("address", addr),
		zap.String("ai_provider", config.AI().Provider))

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}

	<-done
	logger.Info("Server shutdown complete")
}

// newAppState creates and initializes the application state
func newAppState(logger *zap.Logger) (*AppState, error) {
	pgConfig := config.Postgres()

	logger.Info("Database configuration",
		zap.String("host", pgConfig.Host),
		zap.Int("port", pgConfig.Port),
		zap.String("database", pgConfig.Database),
		zap.String("user", pgConfig.User))

	db := initializeDatabase(pgConfig.DSN(), pgConfig.MaxOpenConnections)

	// Initialize user service with database
	userStore := users.NewPostgresStore(db)
	userService := users.NewUserService(userStore)

	// Initialize session service with database
	sessionStore := sessions.NewPostgresStore(db)
	sessionService := sessions.NewService(sessionStore)

	// Initialize question service with database
	questionStore := questions.NewPostgresStore(db)
	questionService := questions.NewService(questionStore, sessionStore)

	// Initialize generation service with the configured provider
	provider, err := newProvider()
	if err != nil {
		return nil, err
	}
	generationService := generation.NewService(provider)

	return &AppState{
		DB:                db,
		Logger:            logger,
		Config:            config.Get(),
		UserService:       userService,
		SessionService:    sessionService,
		QuestionService:   questionService,
		GenerationService: generationService,
	}, nil
}

// initializeDatabase initializes the PostgreSQL database connection
func initializeDatabase(databaseURL string, maxConnections int) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(databaseURL)))
	sqldb.SetMaxOpenConns(maxConnections)
	sqldb.SetMaxIdleConns(maxConnections / 2)
	sqldb.SetConnMaxLifetime(time.Hour)

	return bun.NewDB(sqldb, pgdialect.New())
}

// newProvider selects the generation provider from config. The template
// provider serves local development without an API key.
func newProvider() (generation.Provider, error) {
	aiConfig := config.AI()

	switch aiConfig.Provider {
	case "openai":
		if aiConfig.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("ai provider 'openai' selected but no API key configured - set OPENAI_API_KEY")
		}
		return generation.NewOpenAIProvider(aiConfig.OpenAIAPIKey, aiConfig.Model), nil
	case "template", "":
		return generation.NewTemplateProvider(), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", aiConfig.Provider)
	}
}

func createTables(ctx context.Context, db *bun.DB) error {
	if err := users.CreateTables(ctx, db); err != nil {
		return err
	}
	if err := sessions.CreateTables(ctx, db); err != nil {
		return err
	}
	if err := questions.CreateTables(ctx, db); err != nil {
		return err
	}
	return nil
}

func initLogger() *zap.Logger {
	logConfig := config.Logger()

	var config zap.Config
	if logConfig.Format == "json" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	// Set log level
	switch logConfig.Level {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

// APIKeyMiddleware guards the /api routes with the configured API key.
// Full token auth is handled by an external collaborator; this is the
// service-to-service boundary only.
func APIKeyMiddleware(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		expectedKey := config.Auth().APIKey
		if expectedKey == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader != "Bearer "+expectedKey && authHeader != "Api-Key "+expectedKey {
			as.Logger.Warn("Unauthorized API request",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.String("remote_addr", c.Request.RemoteAddr))

			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or missing API key"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func setupRouter(as *AppState) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// CORS for the web frontend
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = config.Http().AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health endpoints
	router.GET("/", healthCheck)
	router.GET("/health", healthCheck)

	api := router.Group("/api")
	api.Use(APIKeyMiddleware(as))
	{
		// User management
		usersGroup := api.Group("/users")
		{
			usersGroup.POST("", createUser(as))
			usersGroup.GET("/:userId", getUser(as))
			usersGroup.DELETE("/:userId", deleteUser(as))
		}

		// Session management
		sessionsGroup := api.Group("/sessions")
		{
			sessionsGroup.POST("", createSession(as))
			sessionsGroup.GET("/my-sessions", getMySessions(as))
			sessionsGroup.GET("/:id", getSession(as))
			sessionsGroup.DELETE("/:id", deleteSession(as))
		}

		// Question bank and annotations
		questionsGroup := api.Group("/questions")
		{
			questionsGroup.POST("", addQuestionsToSession(as))
			questionsGroup.POST("/:id/pin", togglePinQuestion(as))
			questionsGroup.POST("/:id/note", updateQuestionNote(as))
		}

		// AI generation
		ai := api.Group("/ai")
		{
			ai.POST("/generate-questions", generateInterviewQuestions(as))
			ai.POST("/generate-explanation", generateConceptExplanation(as))
		}
	}

	return router
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Interview Prep API is running!",
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func setupSignalHandler(as *AppState, server *http.Server, logger *zap.Logger) chan struct{} {
	done := make(chan struct{}, 1)

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signalCh

		logger.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Error during server shutdown", zap.Error(err))
		}

		if err := as.DB.Close(); err != nil {
			logger.Error("Error closing database", zap.Error(err))
		}

		done <- struct{}{}
	}()

	return done
}

// respondError maps the shared error taxonomy to HTTP status codes. Server
// errors carry the underlying detail; client errors only the message.
func respondError(c *gin.Context, err error, serverMessage string) {
	switch {
	case interview.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case interview.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": serverMessage, "error": err.Error()})
	}
}

// User handlers

func createUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req users.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		user, err := as.UserService.CreateUser(c.Request.Context(), &req)
		if err != nil {
			as.Logger.Error("Failed to create user", zap.Error(err))
			respondError(c, err, "Failed to create user")
			return
		}

		c.JSON(http.StatusCreated, user)
	}
}

func getUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		user, err := as.UserService.GetUser(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Failed to get user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func deleteUser(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("userId")

		if err := as.UserService.DeleteUser(c.Request.Context(), userID); err != nil {
			as.Logger.Error("Failed to delete user", zap.String("user_id", userID), zap.Error(err))
			respondError(c, err, "Failed to delete user")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}

// Session handlers

func createSession(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sessions.CreateSessionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		session, err := as.SessionService.CreateSession(c.Request.Context(), &req)
		if err != nil {
			as.Logger.Error("Failed to create session", zap.Error(err))
			respondError(c, err, "Failed to create session")
			return
		}

		c.JSON(http.StatusCreated, session)
	}
}

func getMySessions(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "user_id is required"})
			return
		}

		result, err := as.SessionService.ListSessions(c.Request.Context(), userID)
		if err != nil {
			as.Logger.Error("Failed to list sessions", zap.String("user_id", userID), zap.Error(err))
			respondError(c, err, "Failed to list sessions")
			return
		}

		c.JSON(http.StatusOK, gin.H{"sessions": result})
	}
}

func getSession(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Session not found"})
			return
		}

		ctx := c.Request.Context()

		session, err := as.SessionService.GetSession(ctx, id)
		if err != nil {
			respondError(c, err, "Failed to get session")
			return
		}

		sessionQuestions, err := as.QuestionService.ListBySession(ctx, id)
		if err != nil {
			as.Logger.Error("Failed to list session questions", zap.String("session_id", id.String()), zap.Error(err))
			respondError(c, err, "Failed to get session")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session":   session,
			"questions": sessionQuestions,
		})
	}
}

func deleteSession(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Session not found"})
			return
		}

		ctx := c.Request.Context()

		// Remove owned questions first, then the session itself
		if _, err := as.SessionService.GetSession(ctx, id); err != nil {
			respondError(c, err, "Failed to delete session")
			return
		}

		if err := as.QuestionService.DeleteBySession(ctx, id); err != nil {
			as.Logger.Error("Failed to delete session questions", zap.String("session_id", id.String()), zap.Error(err))
			respondError(c, err, "Failed to delete session")
			return
		}

		if err := as.SessionService.DeleteSession(ctx, id); err != nil {
			as.Logger.Error("Failed to delete session", zap.String("session_id", id.String()), zap.Error(err))
			respondError(c, err, "Failed to delete session")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
	}
}

// Question handlers

func addQuestionsToSession(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req questions.AddQuestionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Session not found"})
			return
		}

		created, err := as.QuestionService.AddQuestions(c.Request.Context(), sessionID, req.Questions)
		if err != nil {
			as.Logger.Error("Failed to add questions",
				zap.String("session_id", req.SessionID),
				zap.Int("count", len(req.Questions)),
				zap.Error(err))
			respondError(c, err, "Failed to add questions")
			return
		}

		c.JSON(http.StatusCreated, gin.H{"createdQuestions": created})
	}
}

func togglePinQuestion(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found"})
			return
		}

		question, err := as.QuestionService.TogglePin(c.Request.Context(), id)
		if err != nil {
			if interview.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found"})
				return
			}
			as.Logger.Error("Failed to toggle pin", zap.String("question_id", id.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Question pinned successfully",
			"question": question,
		})
	}
}

func updateQuestionNote(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found"})
			return
		}

		var req struct {
			Note string `json:"note"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
			return
		}

		question, err := as.QuestionService.SetNote(c.Request.Context(), id, req.Note)
		if err != nil {
			if interview.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found"})
				return
			}
			as.Logger.Error("Failed to update note", zap.String("question_id", id.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"message":  "Question note updated successfully",
			"question": question,
		})
	}
}

// AI generation handlers

func generateInterviewQuestions(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var spec generation.GenerationSpec
		if err := c.ShouldBindJSON(&spec); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		result, err := as.GenerationService.GenerateQuestions(c.Request.Context(), spec)
		if err != nil {
			as.Logger.Error("Failed to generate questions",
				zap.String("role", spec.Role),
				zap.Int("count", spec.NumberOfQuestions),
				zap.Error(err))
			respondError(c, err, "Failed to generate questions")
			return
		}

		c.JSON(http.StatusOK, gin.H{"questions": result})
	}
}

func generateConceptExplanation(as *AppState) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Question string `json:"question"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}

		explanation, err := as.GenerationService.ExplainConcept(c.Request.Context(), req.Question)
		if err != nil {
			as.Logger.Error("Failed to generate explanation", zap.Error(err))
			respondError(c, err, "Failed to generate explanation")
			return
		}

		c.JSON(http.StatusOK, explanation)
	}
}
