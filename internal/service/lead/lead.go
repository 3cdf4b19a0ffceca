package lead

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bytsmartz/leads_backend/config"
	"github.com/bytsmartz/leads_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// Interfaces
// ---------------------------------------------------------------------------

// Mailer dispatches one message through the SMTP relay. Satisfied by
// *email.Client; tests inject fakes.
type Mailer interface {
	Send(ctx context.Context, m email.Message) error
}

// Service is the submission gateway: it normalizes a collected submission
// and forwards it to the notifier. Callers get a Result either way; nothing
// escapes as a panic or raw transport error.
type Service interface {
	Submit(ctx context.Context, sub Submission) Result
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

const (
	msgSent       = "Message sent successfully"
	msgSendFailed = "Failed to send message"
	msgInternal   = "Internal server error"
	msgInvalid    = "Validation failed"
)

type leadService struct {
	mailer Mailer
	cfg    config.LeadsConfig
}

func New(mailer Mailer, cfg config.LeadsConfig) Service {
	return &leadService{mailer: mailer, cfg: cfg}
}

func (s *leadService) Submit(ctx context.Context, sub Submission) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("lead submission panicked", "panic", r)
			res = Result{Success: false, Message: msgInternal}
		}
	}()

	sub.ApplyDefaults()

	// Guard against callers that skipped the collector. The HTTP layer
	// validates first and reports per-field errors; this just refuses to
	// dispatch an invalid lead.
	if errs := sub.Validate(); len(errs) > 0 {
		return Result{Success: false, Message: msgInvalid}
	}

	msg := email.BuildLeadEmail(email.LeadEmailData{
		Kind:         string(sub.Kind),
		Subject:      sub.Subject,
		FromName:     sub.Name,
		FromEmail:    sub.Email,
		Details:      s.details(sub),
		CompanyName:  s.cfg.CompanyName,
		CompanyEmail: s.cfg.CompanyEmail,
		LogoURL:      s.cfg.LogoURL,
	})

	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Error("lead email dispatch failed",
			"error", err,
			"kind", sub.Kind,
			"from", sub.Email,
		)
		return Result{Success: false, Message: msgSendFailed}
	}

	slog.Info("lead dispatched", "kind", sub.Kind, "subject", sub.Subject)
	return Result{Success: true, Message: msgSent}
}

// details builds the notification rows: Message first, then the free-form
// fields in body order. Values starting with http are tagged as links here,
// by the producer, so the renderer never has to guess.
func (s *leadService) details(sub Submission) []email.Detail {
	out := make([]email.Detail, 0, len(sub.Extras)+1)
	out = append(out, tagDetail("Message", sub.Message))

	for _, f := range sub.Extras {
		v := f.Value
		if f.Key == "phone" {
			v = s.normalizePhone(v)
		}
		out = append(out, tagDetail(f.Key, v))
	}
	return out
}

func tagDetail(label, value string) email.Detail {
	return email.Detail{
		Label: label,
		Value: value,
		Link:  strings.HasPrefix(value, "http"),
	}
}
