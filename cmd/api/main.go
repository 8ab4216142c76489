package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"ats-resume-analyzer/internal/config"
	"ats-resume-analyzer/internal/handlers"
	"ats-resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize temp storage
	storage := services.NewTempStorage(cfg.Storage.UploadPath)
	if err := storage.EnsureDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Initialize extraction tiers
	pdfParser := services.NewPDFParserService()
	ocr := services.NewOCRService(cfg.OCR)
	if ocr.Available() {
		log.Println("✅ OCR toolchain found (pdftoppm + tesseract)")
	} else {
		log.Println("⚠️  OCR toolchain not found; image-only PDFs will yield empty extractions")
	}
	extractor := services.NewTextExtractor(pdfParser, ocr)
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI. A missing credential disables analysis and
	// forces fallback scorecards rather than failing startup.
	var geminiService services.GeminiService
	if cfg.AnalysisConfigured() {
		gemini, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Printf("⚠️  Failed to initialize Gemini AI, analysis disabled: %v\n", err)
		} else {
			geminiService = gemini
			log.Println("✅ Gemini AI initialized successfully")
		}
	} else {
		log.Println("⚠️  GEMINI_API_KEY not set; AI analysis disabled")
	}

	// Initialize analyzer pipeline
	analyzerService := services.NewAnalyzerService(extractor, geminiService)
	log.Println("✅ Analyzer service initialized")

	// Initialize handlers
	analyzeHandler := handlers.NewAnalyzeHandler(
		storage,
		analyzerService,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ATS Resume Analyzer API",
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
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
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
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

	// API endpoints
	api.Post("/analyze", analyzeHandler.HandleAnalyze)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ATS Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/analyze",
				"GET /api/health",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
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

// customErrorHandler keeps the error contract: handler-level JSON errors
// carry their own status, anything unexpected becomes a 500 with detail
// and a diagnostic trace. The trace is a development convenience; a
// production deployment should suppress it.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("❌ Unhandled error: %v\n", err)
		return c.Status(code).JSON(fiber.Map{
			"error":  "Internal server error",
			"detail": err.Error(),
			"trace":  string(debug.Stack()),
		})
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
