package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mindspace-ai/safegate/pkg/infra/providers"
	"github.com/mindspace-ai/safegate/pkg/moderation"
)

type ChatRequest struct {
	Message string              `json:"message"`
	History []providers.Message `json:"history,omitempty"`
}

type chatHandler struct {
	logger       *logrus.Logger
	orchestrator *moderation.Orchestrator
}

func NewChatHandler(logger *logrus.Logger, orchestrator *moderation.Orchestrator) Handler {
	return &chatHandler{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

// Handle moderates one user turn and returns the structured outcome. The
// orchestrator never fails for operational reasons, so this endpoint only
// rejects malformed requests.
func (h *chatHandler) Handle(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.WithError(err).Error("failed to bind chat request")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message is required"})
	}

	requestID := uuid.NewString()
	h.logger.WithField("request_id", requestID).Debug("moderating chat turn")

	outcome := h.orchestrator.Moderate(c.Context(), req.Message, req.History)

	c.Set("X-Request-ID", requestID)
	return c.Status(fiber.StatusOK).JSON(outcome)
}
