package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/bytsmartz/leads_backend/internal/service/upload"
	"github.com/bytsmartz/leads_backend/pkg/cloudinary"
)

type UploadHandler struct {
	svc upload.Service
}

func NewUploadHandler(svc upload.Service) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// POST /api/uploads/resume
// Multipart upload; returns {url, file_name, size, mime_type}. The returned
// URL goes into the submission's resume field.
func (h *UploadHandler) UploadResume(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file field is required")
	}

	result, err := h.svc.UploadResume(c.Context(), fh)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrUnsupportedType), errors.Is(err, upload.ErrTooLarge):
			return badRequest(c, err.Error())
		case errors.Is(err, cloudinary.ErrNotConfigured):
			return serviceUnavailable(c, "resume uploads are not configured")
		default:
			slog.Error("resume upload failed", "error", err, "file", fh.Filename)
			return badGateway(c, "upload failed, please try again")
		}
	}

	return created(c, fiber.Map{
		"url":       result.URL,
		"file_name": result.FileName,
		"size":      result.Size,
		"mime_type": result.MimeType,
	})
}
