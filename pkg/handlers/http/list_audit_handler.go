package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/mindspace-ai/safegate/pkg/moderation"
)

type listAuditHandler struct {
	logger       *logrus.Logger
	orchestrator *moderation.Orchestrator
}

func NewListAuditHandler(logger *logrus.Logger, orchestrator *moderation.Orchestrator) Handler {
	return &listAuditHandler{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

func (h *listAuditHandler) Handle(c *fiber.Ctx) error {
	entries := h.orchestrator.RecentAuditEntries()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":   len(entries),
		"entries": entries,
	})
}
