package app

import (
	"go.uber.org/fx"

	"github.com/bytsmartz/leads_backend/config"
	"github.com/bytsmartz/leads_backend/internal/service/lead"
	"github.com/bytsmartz/leads_backend/internal/service/upload"
	"github.com/bytsmartz/leads_backend/pkg/cloudinary"
	"github.com/bytsmartz/leads_backend/pkg/email"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideLeadService,
		ProvideUploadService,
	),
)

func ProvideLeadService(emailClient *email.Client, cfg *config.Config) lead.Service {
	return lead.New(emailClient, cfg.Leads)
}

func ProvideUploadService(storage *cloudinary.Client) upload.Service {
	return upload.New(storage)
}
