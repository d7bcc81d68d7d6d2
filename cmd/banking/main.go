package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/easybank/internal/pkg/config"
	"github.com/piresc/easybank/internal/pkg/database"
	"github.com/piresc/easybank/internal/pkg/health"
	"github.com/piresc/easybank/internal/pkg/jwt"
	"github.com/piresc/easybank/internal/pkg/logger"
	"github.com/piresc/easybank/internal/pkg/middleware"
	nrpkg "github.com/piresc/easybank/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/easybank/internal/pkg/nsq"
	"github.com/piresc/easybank/internal/pkg/server"
	"github.com/piresc/easybank/services/banking/gateway"
	"github.com/piresc/easybank/services/banking/handler"
	httpHandler "github.com/piresc/easybank/services/banking/handler/http"
	"github.com/piresc/easybank/services/banking/repository"
	"github.com/piresc/easybank/services/banking/usecase"
	"go.uber.org/zap"
)

func main() {
	appName := "banking-service"
	configs, err := config.InitConfig("config/banking.env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

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

	// Initialize PostgreSQL and apply the schema
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	if err := postgresClient.ApplySchema(context.Background()); err != nil {
		zapLogger.Fatal("Failed to apply database schema", zap.Error(err))
	}

	// Initialize Redis client for rate limiting
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NSQ producer for email events
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}

	// Initialize repository, gateway and usecase
	bankingRepo := repository.NewBankingRepo(postgresClient.GetDB())
	bankingGW := gateway.NewBankingGW(producer, configs.NSQ.EmailTopic)
	bankingUC := usecase.NewBankingUC(bankingRepo, bankingGW, jwt.NewCodec(configs.JWT), configs)

	// Handlers for HTTP
	authHandler := httpHandler.NewAuthHandler(bankingUC)
	accountHandler := httpHandler.NewAccountHandler(bankingUC)
	Handler := handler.NewHandler(authHandler, accountHandler, bankingUC, redisClient, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(nrpkg.EchoMiddleware(nrApp))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	healthService := health.NewHealthService(appName, configs.App.Version, zapLogger)
	healthService.AddChecker("postgres", postgresClient)
	healthService.AddChecker("redis", redisClient)
	healthService.AddChecker("nsq", producer)
	health.RegisterHealthEndpoints(e, healthService)

	// Register service routes
	Handler.RegisterRoutes(e)

	// Closers run in reverse order once the listener has stopped
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	srv.OnShutdown(func(ctx context.Context) error {
		if nrApp != nil {
			nrApp.Shutdown(10 * time.Second)
		}
		return nil
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return postgresClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		return redisClient.Close()
	})
	srv.OnShutdown(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped with error",
			zap.String("app", appName),
			zap.Error(err),
		)
	}
}
