package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"hirely/resume-matcher/internal/config"
	"hirely/resume-matcher/internal/handlers"
	"hirely/resume-matcher/internal/repositories"
	"hirely/resume-matcher/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	sessionRepo := repositories.NewSessionRepository(db)
	docRepo := repositories.NewDocumentRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewExtractorService()
	log.Println("✅ Services initialized successfully")

	// Initialize LLM backends
	geminiBackend, err := services.NewGeminiBackend(cfg.Backends.GeminiAPIKey, cfg.Backends.GeminiModel)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini backend: %v", err)
	}

	groqScoring := services.NewGroqBackend(
		"Groq LLaMA3",
		cfg.Backends.GroqAPIKey,
		cfg.Backends.GroqBaseURL,
		cfg.Backends.GroqScoringModel,
		cfg.Backends.RequestTimeout,
	)
	groqNarrative := services.NewGroqBackend(
		"Groq LLaMA3 8B",
		cfg.Backends.GroqAPIKey,
		cfg.Backends.GroqBaseURL,
		cfg.Backends.GroqNarrativeModel,
		cfg.Backends.RequestTimeout,
	)
	log.Println("✅ LLM backends initialized successfully")

	// Initialize analyzer
	analyzer := services.NewAnalyzerService(
		analysisRepo,
		docRepo,
		extractor,
		[]services.ScoreBackend{geminiBackend, groqScoring},
		groqNarrative,
		cfg.Features,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize worker
	worker := services.NewWorker(
		analysisRepo,
		analyzer,
		cfg.Worker.Concurrency,
	)

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	reportService := services.NewReportService(cfg.Report.ASCIIOnly)

	var chatService services.ChatService
	if cfg.Features.Chat {
		chatService = services.NewChatService(
			docRepo,
			extractor,
			groqNarrative,
			cfg.Chat.TranscriptPath,
		)
	}

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionRepo, chatService)
	uploadHandler := handlers.NewUploadHandler(
		sessionRepo,
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	analyzeHandler := handlers.NewAnalyzeHandler(
		sessionRepo,
		docRepo,
		analysisRepo,
		worker,
	)
	resultHandler := handlers.NewResultHandler(analysisRepo)
	reportHandler := handlers.NewReportHandler(analysisRepo, reportService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Hirely Resume Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/sessions", sessionHandler.HandleCreate)
	api.Delete("/sessions/:id", sessionHandler.HandleReset)
	api.Post("/sessions/:id/upload", uploadHandler.HandleUpload)
	api.Post("/sessions/:id/analyze", analyzeHandler.HandleAnalyze)
	api.Get("/sessions/:id/results", resultHandler.HandleGetResults)
	api.Get("/analyses/:id", resultHandler.HandleGetAnalysis)
	api.Get("/analyses/:id/report", reportHandler.HandleGetReport)

	if cfg.Features.Chat {
		chatHandler := handlers.NewChatHandler(sessionRepo, chatService)
		api.Post("/sessions/:id/chat", chatHandler.HandleAsk)
		api.Get("/sessions/:id/chat", chatHandler.HandleHistory)
		log.Println("✅ Chat enabled")
	}

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Hirely Resume Matcher API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/sessions",
				"DELETE /api/v1/sessions/:id",
				"POST /api/v1/sessions/:id/upload",
				"POST /api/v1/sessions/:id/analyze",
				"GET /api/v1/sessions/:id/results",
				"GET /api/v1/analyses/:id",
				"GET /api/v1/analyses/:id/report",
				"POST /api/v1/sessions/:id/chat",
				"GET /api/v1/sessions/:id/chat",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
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
