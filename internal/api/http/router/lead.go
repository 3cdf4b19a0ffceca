package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bytsmartz/leads_backend/internal/api/http/handler"
)

func (r *Router) registerLeadRoutes(api fiber.Router, h *handler.LeadHandler) {
	api.Post("/contact", h.Submit)
}
