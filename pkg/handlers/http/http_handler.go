package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	// Moderation
	ChatHandler Handler

	// Audit
	ListAuditHandler  Handler
	ClearAuditHandler Handler

	// Meta
	GetVersionHandler Handler
}
