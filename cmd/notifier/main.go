package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/config"
	"github.com/piresc/easybank/internal/pkg/health"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/mailer"
	"github.com/piresc/easybank/internal/pkg/middleware"
	nrpkg "github.com/piresc/easybank/internal/pkg/newrelic"
	"github.com/piresc/easybank/internal/pkg/server"
	nsqHandler "github.com/piresc/easybank/services/notifier/handler/nsq"
	"github.com/piresc/easybank/services/notifier/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "notifier-service"
	configs, err := config.InitConfig("config/notifier.env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	nrApp := nrpkg.InitNewRelic(configs)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	renderer, err := mailer.NewRenderer()
	if err != nil {
		zapLogger.Fatal("Failed to parse email templates", zap.Error(err))
	}
	sender := mailer.NewSMTPSender(configs.SMTP)
	notifierUC := usecase.NewNotifierUC(renderer, sender, configs.Email, zapLogger)

	// Handlers for NSQ
	emailHandler := nsqHandler.NewEmailHandler(notifierUC, nrApp)
	if err := emailHandler.InitNSQConsumers(configs.NSQ); err != nil {
		zapLogger.Fatal("Failed to initialize NSQ consumers", zap.Error(err))
	}

	// The notifier only serves health endpoints over HTTP
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	healthService := health.NewHealthService(appName, configs.App.Version, zapLogger)
	health.RegisterHealthEndpoints(e, healthService)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
		return nil
	})
	srv.OnShutdown(func(ctx context.Context) error {
		emailHandler.Stop()
		return nil
	})

	zapLogger.Info("Consuming email events",
		zap.String("topic", configs.NSQ.EmailTopic),
		zap.String("channel", configs.NSQ.EmailChannel),
	)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
