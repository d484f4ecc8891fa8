package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/observability"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// Multipart framing on top of the file itself.
const multipartOverhead = 1 << 20

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	zlog, err := logger.New(logger.Options{
		Env:   cfg.Server.Env,
		JSON:  cfg.Log.JSON,
		Debug: cfg.Log.Debug,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()
	zlog.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	observability.InitMetrics()

	// Initialize repositories
	keywordRepo, err := repositories.LoadKeywordRepository(cfg.Analyzer.DefaultRole, cfg.Analyzer.KeywordsFile)
	if err != nil {
		zlog.Fatal("❌ Failed to load keyword table", zap.Error(err))
	}
	zlog.Info("✅ Keyword table loaded", zap.Strings("roles", keywordRepo.Roles()))

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}

	extractor := services.NewTextExtractor(
		services.NewPDFParserService(),
		services.NewDOCXParserService(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	annotator, err := services.NewGeminiAnnotator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, zlog)
	if err != nil {
		zlog.Warn("⚠️  NLP annotator unavailable", zap.Error(err))
		annotator = services.NewNoopAnnotator()
	}
	zlog.Info("✅ Services initialized successfully", zap.Bool("nlp", annotator.Available()))

	analyzer := services.NewAnalyzerService(extractor, keywordRepo, annotator, zlog)

	// Initialize worker
	worker := services.NewWorker(analyzer, cfg.Analyzer.Concurrency, cfg.Analyzer.QueueSize, zlog)
	worker.Start(ctx)

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		storageService,
		keywordRepo,
		worker,
		cfg.Storage.MaxFileSize,
		zlog,
	)
	healthHandler := handlers.NewHealthHandler(keywordRepo)
	zlog.Info("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume ATS Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize) + multipartOverhead,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	api := app.Group("/api")
	api.Get("/health", healthHandler.HandleHealth)
	api.Post("/analyze-resume", analyzeHandler.HandleAnalyze)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume ATS Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/health",
				"POST /api/analyze-resume",
				"GET /metrics",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		}
		worker.Stop()
		cancel()
	}()

	// Start server
	addr := cfg.Address()
	zlog.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
