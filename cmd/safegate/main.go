package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mindspace-ai/safegate/pkg/audit"
	"github.com/mindspace-ai/safegate/pkg/config"
	"github.com/mindspace-ai/safegate/pkg/crisis"
	handlers "github.com/mindspace-ai/safegate/pkg/handlers/http"
	infraLogger "github.com/mindspace-ai/safegate/pkg/infra/logger"
	"github.com/mindspace-ai/safegate/pkg/infra/providers/factory"
	"github.com/mindspace-ai/safegate/pkg/moderation"
	"github.com/mindspace-ai/safegate/pkg/server"
	"github.com/mindspace-ai/safegate/pkg/server/router"
	"github.com/mindspace-ai/safegate/pkg/validation"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	cfg, err := config.Load("./config")
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}

	providerClient, err := factory.NewProviderLocator().Get(cfg.Provider.Name)
	if err != nil {
		logger.WithError(err).Fatal("failed to resolve provider")
	}

	gateway := moderation.NewLLMGateway(providerClient, moderation.GatewayConfig{
		Provider:    cfg.Provider.Name,
		ApiKey:      cfg.Provider.ApiKey,
		Model:       cfg.Provider.Model,
		MaxTokens:   cfg.Provider.MaxTokens,
		Temperature: cfg.Provider.Temperature,
		Timeout:     cfg.Provider.Timeout(),
		Options:     cfg.Provider.Options,
	}, logger)

	auditLog := audit.NewLog(cfg.Audit.Capacity, logger)

	orchestrator := moderation.NewOrchestrator(
		crisis.NewClassifier(),
		crisis.NewRepository(),
		validation.NewValidator(),
		gateway,
		auditLog,
		logger,
	)

	handlerTransport := handlers.HandlerTransport{
		ChatHandler:       handlers.NewChatHandler(logger, orchestrator),
		ListAuditHandler:  handlers.NewListAuditHandler(logger, orchestrator),
		ClearAuditHandler: handlers.NewClearAuditHandler(logger, orchestrator),
		GetVersionHandler: handlers.NewGetVersionHandler(logger),
	}

	apiServer, err := server.NewAPIServer(cfg, logger, router.NewAPIRouter(handlerTransport))
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize server")
	}

	go func() {
		if err := apiServer.Run(); err != nil {
			logger.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := apiServer.Shutdown(); err != nil {
		logger.WithError(err).Error("failed to shut down cleanly")
	}
}
