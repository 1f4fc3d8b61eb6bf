package moderation

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mindspace-ai/safegate/pkg/domain"
	"github.com/mindspace-ai/safegate/pkg/infra/httpx"
	"github.com/mindspace-ai/safegate/pkg/infra/providers"
)

// Gateway is the language model boundary. Every call is a blocking network
// operation subject to the configured timeout; a timeout is indistinguishable
// from any other gateway failure to the orchestrator.
type Gateway interface {
	Generate(ctx context.Context, systemPrompt string, history []providers.Message, message string) (string, error)
}

type GatewayConfig struct {
	Provider    string
	ApiKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	Options     map[string]interface{}
}

const defaultGatewayTimeout = 30 * time.Second

type llmGateway struct {
	client  providers.Client
	config  GatewayConfig
	breaker httpx.CircuitBreaker
	logger  *logrus.Logger
}

func NewLLMGateway(client providers.Client, config GatewayConfig, logger *logrus.Logger) Gateway {
	if config.Timeout <= 0 {
		config.Timeout = defaultGatewayTimeout
	}
	return &llmGateway{
		client:  client,
		config:  config,
		breaker: httpx.NewCircuitBreaker("llm-gateway", config.Timeout, 5),
		logger:  logger,
	}
}

func (g *llmGateway) Generate(
	ctx context.Context,
	systemPrompt string,
	history []providers.Message,
	message string,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	providerConfig := &providers.Config{
		Credentials:  providers.Credentials{ApiKey: g.config.ApiKey},
		Model:        g.config.Model,
		MaxTokens:    g.config.MaxTokens,
		Temperature:  g.config.Temperature,
		SystemPrompt: systemPrompt,
		History:      history,
		Options:      g.config.Options,
	}

	var completion *providers.CompletionResponse
	err := g.breaker.Execute(func() error {
		resp, askErr := g.client.Ask(ctx, providerConfig, message)
		if askErr != nil {
			return askErr
		}
		completion = resp
		return nil
	})
	if err != nil {
		g.logger.WithError(err).WithField("provider", g.config.Provider).Warn("gateway call failed")
		return "", domain.NewGatewayError(g.config.Provider, err)
	}

	if completion == nil || completion.Response == "" {
		return "", domain.NewGatewayError(g.config.Provider, domain.ErrGatewayFailure)
	}

	return completion.Response, nil
}
