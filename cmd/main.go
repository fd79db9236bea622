package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
	"go.uber.org/zap"

	"github.com/Vovarama1992/voice_agents/internal/config"
	"github.com/Vovarama1992/voice_agents/internal/delivery"
	"github.com/Vovarama1992/voice_agents/internal/domain"
	"github.com/Vovarama1992/voice_agents/internal/error_notificator"
	"github.com/Vovarama1992/voice_agents/internal/speech"
	"github.com/Vovarama1992/voice_agents/internal/uploads"
)

func main() {

	// =========================================================================
	// ENV / LOGGER
	// =========================================================================

	cfg := config.Load()

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	if cfg.MurfAPIKey == "" {
		zl.Log(logger.LogEntry{Level: "warn", Message: "MURF_API_KEY is not set, /generate-audio will refuse", Service: domain.ServiceName})
	}
	if cfg.TranscriptionKey() == "" {
		zl.Log(logger.LogEntry{Level: "warn", Message: "no key for transcription provider " + cfg.TranscriptionProvider, Service: domain.ServiceName})
	}

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	store, err := uploads.NewDiskStore(cfg.UploadsDir)
	if err != nil {
		log.Fatalf("failed to init uploads dir: %v", err)
	}

	// =========================================================================
	// ERROR NOTIFICATION
	// =========================================================================

	var errInfra error_notificator.Notificator
	if cfg.TelegramAlertToken != "" && cfg.TelegramAlertChatID != 0 {
		tg, err := error_notificator.NewInfra(cfg.TelegramAlertToken, cfg.TelegramAlertChatID)
		if err != nil {
			// alerts are optional, the API still serves without them
			zl.Log(logger.LogEntry{Level: "warn", Message: "telegram alerts disabled", Service: domain.ServiceName, Error: err})
		} else {
			errInfra = tg
		}
	}
	errService := error_notificator.NewService(errInfra)

	// =========================================================================
	// CLIENTS (TTS / STT)
	// =========================================================================

	speechService := speech.NewServiceFromConfig(cfg)

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	voiceService := domain.NewVoiceService(
		cfg,
		speechService, // Murf
		speechService, // AssemblyAI or Whisper
		uploads.NewService(store),
		errService,
		zl,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	router := delivery.NewRouter(
		delivery.NewVoiceHandler(voiceService, zl),
		delivery.NewFrontendHandler(cfg.StaticDir, zl),
		cfg.RateLimitPerMinute,
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zl.Log(logger.LogEntry{
			Level:   "info",
			Message: "listening at " + srv.Addr,
			Service: domain.ServiceName,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Log(logger.LogEntry{Level: "error", Message: "graceful shutdown failed", Service: domain.ServiceName, Error: err})
		return
	}
	zl.Log(logger.LogEntry{Level: "info", Message: "server stopped", Service: domain.ServiceName})
}
