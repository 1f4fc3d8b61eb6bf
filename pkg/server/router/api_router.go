package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	handlers "github.com/mindspace-ai/safegate/pkg/handlers/http"
)

var ErrMissingHandler = errors.New("handler transport is missing a handler")

type apiRouter struct {
	handlerTransport handlers.HandlerTransport
}

func NewAPIRouter(handlerTransport handlers.HandlerTransport) ServerRouter {
	return &apiRouter{
		handlerTransport: handlerTransport,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	t := r.handlerTransport
	if t.ChatHandler == nil || t.ListAuditHandler == nil || t.ClearAuditHandler == nil || t.GetVersionHandler == nil {
		return ErrMissingHandler
	}

	router.Get("/version", t.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Post("/chat", t.ChatHandler.Handle)

		audit := v1.Group("/audit")
		{
			audit.Get("", t.ListAuditHandler.Handle)
			audit.Delete("", t.ClearAuditHandler.Handle)
		}
	}
	return nil
}
