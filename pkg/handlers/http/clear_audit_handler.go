package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/mindspace-ai/safegate/pkg/moderation"
)

type clearAuditHandler struct {
	logger       *logrus.Logger
	orchestrator *moderation.Orchestrator
}

func NewClearAuditHandler(logger *logrus.Logger, orchestrator *moderation.Orchestrator) Handler {
	return &clearAuditHandler{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

func (h *clearAuditHandler) Handle(c *fiber.Ctx) error {
	h.orchestrator.ClearAuditLog()
	h.logger.Info("audit log cleared")
	return c.SendStatus(fiber.StatusNoContent)
}
