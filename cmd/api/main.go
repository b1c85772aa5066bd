package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/smartmeethq/meeting-assistant-api/internal/adapter/handler"
	"github.com/smartmeethq/meeting-assistant-api/internal/infrastructure/audio"
	"github.com/smartmeethq/meeting-assistant-api/internal/infrastructure/stt"
	"github.com/smartmeethq/meeting-assistant-api/internal/usecase/meeting"
	pkgai "github.com/smartmeethq/meeting-assistant-api/pkg/ai"
	"github.com/smartmeethq/meeting-assistant-api/pkg/config"
	"github.com/smartmeethq/meeting-assistant-api/pkg/executor"
	pkgvalidator "github.com/smartmeethq/meeting-assistant-api/pkg/validator"
)

func main() {
	// Load configuration; fails fast when the LLM credential is absent
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover middleware
	e.Use(middleware.Recover())

	// CORS middleware for the wizard UI
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	log.Println("🔧 Initializing dependencies...")

	// Audio conversion (ffmpeg)
	conv := audio.NewConverter(cfg.Speech.FFmpegPath, cfg.Speech.SampleRate, executor.New(), logger)

	// Speech engine: loaded once at startup, shared read-only across requests
	log.Printf("🎙️  Initializing speech engine (%s)...", cfg.Speech.Engine)
	var transcriber stt.Transcriber
	switch cfg.Speech.Engine {
	case "assemblyai":
		transcriber = stt.NewAssemblyAITranscriber(&cfg.Speech, logger)
	default:
		voskTranscriber, err := stt.NewVoskTranscriber(&cfg.Speech, conv, logger)
		if err != nil {
			log.Fatalf("Failed to initialize speech engine: %v", err)
		}
		defer voskTranscriber.Close()
		transcriber = voskTranscriber
	}

	// Language model client
	log.Printf("🤖 Initializing language model client (%s)...", cfg.LLM.Provider)
	var generator pkgai.TextGenerator
	switch cfg.LLM.Provider {
	case "groq":
		generator = pkgai.NewGroqClient(&cfg.LLM)
	default:
		generator = pkgai.NewGeminiClient(&cfg.LLM)
	}

	// Orchestrator and handlers
	svc := meeting.NewService(generator, transcriber, logger)
	meetingHandler := handler.NewMeetingHandler(svc, cfg.Upload, logger)

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Addr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
