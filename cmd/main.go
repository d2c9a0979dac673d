package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/config"
	"github.com/atenaxx1412/nutrition-ai-gpTs/controllers"
	"github.com/atenaxx1412/nutrition-ai-gpTs/middlewares"
	"github.com/atenaxx1412/nutrition-ai-gpTs/routes"
	"github.com/atenaxx1412/nutrition-ai-gpTs/services"
	"github.com/atenaxx1412/nutrition-ai-gpTs/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := config.NewLogger(cfg.LogLevel)
	slog.SetDefault(log)
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.OpenDatabase(cfg.DB)
	if err != nil {
		log.Error("database unavailable", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	recognizer, err := buildRecognizer(ctx, cfg.Recognition, log)
	if err != nil {
		log.Error("recognition provider unavailable", "provider", cfg.Recognition.Provider, "error", err)
		os.Exit(1)
	}

	var images utils.ImageStore
	if cfg.Storage.Bucket != "" {
		store, err := utils.NewS3ImageStoreFromEnv(ctx, cfg.Storage.Region, cfg.Storage.Bucket, cfg.Storage.PublicURL)
		if err != nil {
			log.Error("s3 image store unavailable", "error", err)
			os.Exit(1)
		}
		images = store
	}

	mealSvc := services.NewMealService(db, recognizer, images, log)
	goalSvc := services.NewGoalService(db)
	authSvc := services.NewAuthService(cfg.Auth.Password, cfg.Auth.JWTSecret, services.DefaultTokenTTL)

	opts := routes.Options{
		Logger:      log,
		CORSOrigins: cfg.CORSOrigins,
		Docs:        cfg.DocsEnabled(),
	}
	if cfg.Auth.RequireToken {
		opts.Tokens = middlewares.TokenVerifier(authSvc)
	}

	r := routes.SetupRouter(routes.Handlers{
		Auth:      controllers.NewAuthController(authSvc, log),
		Meals:     controllers.NewMealController(mealSvc, log),
		Users:     controllers.NewUserController(services.NewUserService(db, mealSvc, goalSvc), log),
		Goals:     controllers.NewGoalController(goalSvc, log),
		Progress:  controllers.NewProgressController(services.NewProgressService(db), log),
		Families:  controllers.NewFamilyController(services.NewFamilyService(db), log),
		Analytics: controllers.NewAnalyticsController(services.NewAnalyticsService(mealSvc, goalSvc), log),
	}, opts)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("server listening",
			"address", addr,
			"env", cfg.AppEnv,
			"db_driver", cfg.DB.Driver,
			"recognition", cfg.Recognition.Provider,
			"image_storage", images != nil,
			"docs", opts.Docs,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("server stopped gracefully")
}

// buildRecognizer picks the image recognition backend. "auto" tries Gemini
// and falls back to Rekognition when Gemini finds nothing.
func buildRecognizer(ctx context.Context, rc config.RecognitionConfig, log *slog.Logger) (services.Recognizer, error) {
	timeout := time.Duration(rc.TimeoutSeconds) * time.Second
	gemini := func() *services.GeminiService {
		if rc.GeminiAPIKey == "" {
			log.Warn("GEMINI_API_KEY is not set; image analysis will fail")
		}
		return services.NewGeminiService(rc.GeminiAPIKey, rc.GeminiModel, rc.GeminiBaseURL, timeout)
	}

	if rc.Provider == "gemini" {
		return gemini(), nil
	}

	rek, err := services.NewRekognitionServiceFromEnv(ctx, rc.AWSRegion, timeout)
	if err != nil {
		return nil, err
	}
	if rc.Provider == "auto" {
		return &services.FallbackRecognizer{Primary: gemini(), Secondary: rek, Logger: log}, nil
	}
	return rek, nil
}
