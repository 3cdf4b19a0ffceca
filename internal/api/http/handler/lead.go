package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/bytsmartz/leads_backend/internal/service/lead"
)

type LeadHandler struct {
	svc lead.Service
}

func NewLeadHandler(svc lead.Service) *LeadHandler {
	return &LeadHandler{svc: svc}
}

// POST /api/contact
// Accepts {type?, name, email, phone, subject?, message?, ...otherFields}.
// The body is decoded with field order preserved so free-form fields render
// in the notification the way the form sent them.
func (h *LeadHandler) Submit(c fiber.Ctx) error {
	sub, err := lead.ParseSubmission(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
		})
	}

	sub.ApplyDefaults()

	if errs := sub.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"message": "Validation failed",
			"errors":  errs,
		})
	}

	res := h.svc.Submit(c.Context(), sub)

	status := fiber.StatusOK
	if !res.Success {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(res)
}
