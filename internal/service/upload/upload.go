package upload

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/bytsmartz/leads_backend/pkg/cloudinary"
)

var (
	ErrUnsupportedType = errors.New("only Word documents (.doc, .docx) are accepted")
	ErrTooLarge        = errors.New("file must be 5 MB or smaller")
)

// MaxResumeSize is the upload limit checked before any network call.
const MaxResumeSize = 5 << 20

var wordMimeTypes = map[string]bool{
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var wordExtensions = map[string]bool{
	".doc":  true,
	".docx": true,
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type Result struct {
	URL      string
	FileName string
	Size     int64
	MimeType string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	UploadResume(ctx context.Context, fh *multipart.FileHeader) (*Result, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type uploadService struct {
	storage *cloudinary.Client
}

func New(storage *cloudinary.Client) Service {
	return &uploadService{storage: storage}
}

// UploadResume validates the attachment and pushes it to object storage,
// returning the durable URL. Rejections happen before any network call; a
// failed upload never produces a partial URL.
func (s *uploadService) UploadResume(ctx context.Context, fh *multipart.FileHeader) (*Result, error) {
	mime := fh.Header.Get("Content-Type")
	if err := validateResume(fh.Filename, mime, fh.Size); err != nil {
		return nil, err
	}

	if !s.storage.IsConfigured() {
		return nil, cloudinary.ErrNotConfigured
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	uploaded, err := s.storage.Upload(ctx, fh.Filename, src)
	if err != nil {
		return nil, fmt.Errorf("resume upload: %w", err)
	}

	return &Result{
		URL:      uploaded.SecureURL,
		FileName: fh.Filename,
		Size:     fh.Size,
		MimeType: mime,
	}, nil
}

// validateResume checks type and size. Pure function, no side effects, so a
// repeated call with the same bad file yields the same rejection.
func validateResume(filename, mime string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !wordMimeTypes[mime] && !wordExtensions[ext] {
		return ErrUnsupportedType
	}
	if size > MaxResumeSize {
		return ErrTooLarge
	}
	return nil
}
