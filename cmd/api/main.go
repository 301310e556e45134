package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"jobfit/matching-api/internal/config"
	"jobfit/matching-api/internal/handlers"
	"jobfit/matching-api/internal/logger"
	"jobfit/matching-api/internal/matching"
	"jobfit/matching-api/internal/repositories"
	"jobfit/matching-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog, err := logger.New(cfg.Server.JSONLog, cfg.Server.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("config loaded", zap.String("env", cfg.Server.Env))

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		zlog.Fatal("failed to initialize database", zap.Error(err))
	}
	zlog.Info("database connected and migrated")

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	jobRepo := repositories.NewJobDescriptionRepository(db)
	matchRepo := repositories.NewMatchRecordRepository(db)

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("failed to create upload directory", zap.Error(err))
	}

	extractionService := services.NewExtractionService()

	authService, err := services.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.Expiration, cfg.Auth.BcryptCost)
	if err != nil {
		zlog.Fatal("failed to initialize auth service", zap.Error(err))
	}

	// Initialize the matching engine
	vocab := matching.NewVocabulary(nil)

	catalog := matching.DefaultCatalog()
	if cfg.Matching.CatalogPath != "" {
		catalog, err = matching.LoadCatalog(cfg.Matching.CatalogPath, vocab)
		if err != nil {
			zlog.Fatal("failed to load suggestion catalog", zap.Error(err))
		}
	}
	zlog.Info("suggestion catalog loaded", zap.String("version", catalog.Version()))

	engine, err := matching.NewEngine(matching.EngineParams{
		Source:     services.NewDocumentSource(resumeRepo, jobRepo),
		Vocabulary: vocab,
		Catalog:    catalog,
		Weights: matching.Weights{
			Skills:         cfg.Matching.SkillsWeight,
			Experience:     cfg.Matching.ExperienceWeight,
			Education:      cfg.Matching.EducationWeight,
			RequiredSkill:  cfg.Matching.RequiredSkillWeight,
			PreferredSkill: cfg.Matching.PreferredSkillWeight,
		},
		SuggestionLimit: cfg.Matching.SuggestionLimit,
		LookupTimeout:   cfg.Matching.LookupTimeout,
		Logger:          zlog,
	})
	if err != nil {
		zlog.Fatal("failed to initialize matching engine", zap.Error(err))
	}
	zlog.Info("matching engine initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, authService)
	resumeHandler := handlers.NewResumeHandler(resumeRepo, storageService, extractionService, cfg.Storage.MaxFileSize)
	jobHandler := handlers.NewJobHandler(jobRepo)
	matchingHandler := handlers.NewMatchingHandler(engine, matchRepo, resumeRepo, zlog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "JobFit Matching API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	auth := api.Group("/auth")
	auth.Post("/signup", authHandler.HandleRegister)
	auth.Post("/signin", authHandler.HandleLogin)

	protected := api.Group("", handlers.RequireAuth(authService))

	resumes := protected.Group("/resumes")
	resumes.Post("/upload", resumeHandler.HandleUpload)
	resumes.Get("/", resumeHandler.HandleList)
	resumes.Get("/:id", resumeHandler.HandleGet)
	resumes.Delete("/:id", resumeHandler.HandleDelete)

	jobs := protected.Group("/jobs")
	jobs.Post("/", jobHandler.HandleCreate)
	jobs.Get("/", jobHandler.HandleList)
	jobs.Get("/:id", jobHandler.HandleGet)
	jobs.Delete("/:id", jobHandler.HandleDelete)

	matchingGroup := protected.Group("/matching")
	matchingGroup.Post("/match", matchingHandler.HandleMatch)
	matchingGroup.Get("/results", matchingHandler.HandleResults)
	matchingGroup.Get("/results/:resumeId/:jobId", matchingHandler.HandleGetResult)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			zlog.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
