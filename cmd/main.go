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

	"github.com/go-chi/chi/v5"

	"github.com/rubickshop/rubick-cup/bot"
	"github.com/rubickshop/rubick-cup/brackets"
	"github.com/rubickshop/rubick-cup/config"
	"github.com/rubickshop/rubick-cup/handlers"
	"github.com/rubickshop/rubick-cup/repositories"
	api "github.com/rubickshop/rubick-cup/routes"
	"github.com/rubickshop/rubick-cup/services"
	"github.com/rubickshop/rubick-cup/storage"
	"github.com/rubickshop/rubick-cup/telegram"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Клиент Telegram Bot API
	tgClient := telegram.New(cfg.BotToken)

	// Загрузчик изображений сетки (опционально)
	var uploader storage.FileUploader
	if cfg.R2Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("R2 is not configured, bracket images stay local")
	}

	// WebSocket Hub для дашборда
	wsHub := brackets.NewHub(logger)
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Инициализация хранилищ
	rosterRepo := repositories.NewInMemoryRosterRepository()
	sessionRepo := repositories.NewInMemorySessionRepository()
	bracketRepo := repositories.NewInMemoryBracketRepository()
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	notifier := bot.NewNotifier(tgClient)
	subscription := telegram.NewChannelSubscription(tgClient, cfg.ChannelUsername)

	rosterService := services.NewRosterService(
		rosterRepo,
		sessionRepo,
		subscription,
		notifier,
		wsHub,
		cfg.OrganizerChatID,
		logger,
	)
	bracketService := services.NewBracketService(
		rosterRepo,
		bracketRepo,
		brackets.NewSingleElimination(),
		brackets.RenderBracket,
		uploader,
		notifier,
		wsHub,
		cfg.OrganizerChatID,
		logger,
	)
	matchService := services.NewMatchService(
		bracketRepo,
		notifier,
		wsHub,
		cfg.OrganizerChatID,
		logger,
	)
	authService := services.NewAuthService(cfg.OrganizerPasswordHash, cfg.JWTSecretKey)
	logger.Info("Services initialized")

	// Бот и регистрация команд в Telegram
	tournamentBot := bot.New(
		tgClient,
		rosterService,
		bracketService,
		matchService,
		cfg.OrganizerChatID,
		cfg.ChannelUsername,
		logger,
	)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()
	if err := tournamentBot.Setup(startupCtx); err != nil {
		logger.Error("failed to register bot commands", slog.Any("error", err))
		os.Exit(1)
	}

	webhookPath := fmt.Sprintf("/webhook/%s", cfg.BotToken)
	if cfg.WebhookBaseURL != "" {
		if err := tgClient.SetWebhook(startupCtx, cfg.WebhookBaseURL+webhookPath); err != nil {
			logger.Error("failed to set webhook", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("webhook registered", slog.String("path", webhookPath))
	}

	// Инициализация обработчиков HTTP
	webhookHandler := handlers.NewWebhookHandler(tournamentBot, cfg.BotToken, logger)
	authHandler := handlers.NewAuthHandler(authService)
	tournamentHandler := handlers.NewTournamentHandler(rosterService, bracketService, matchService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, logger)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		[]byte(cfg.JWTSecretKey),
		webhookHandler,
		authHandler,
		tournamentHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if cfg.WebhookBaseURL != "" {
			if err := tgClient.DeleteWebhook(shutdownCtx); err != nil {
				logger.Error("failed to delete webhook", slog.Any("error", err))
			}
		}

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
