package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bytsmartz/leads_backend/internal/api/http/handler"
)

func (r *Router) registerUploadRoutes(api fiber.Router, h *handler.UploadHandler) {
	api.Post("/uploads/resume", h.UploadResume)
}
