package app

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/bytsmartz/leads_backend/config"
	"github.com/bytsmartz/leads_backend/pkg/cloudinary"
	"github.com/bytsmartz/leads_backend/pkg/email"
	"github.com/bytsmartz/leads_backend/pkg/observability"
)

// InfraModule provides all infrastructure dependencies.
var InfraModule = fx.Module("infra",
	fx.Provide(ProvideEmailClient),
	fx.Provide(ProvideCloudinaryClient),
	fx.Provide(ProvideOTel),
)

func ProvideEmailClient(cfg *config.Config) (*email.Client, error) {
	return email.NewFromCentral(cfg.Email)
}

func ProvideCloudinaryClient(cfg *config.Config) *cloudinary.Client {
	client := cloudinary.New(cfg.Cloudinary)
	if !client.IsConfigured() {
		slog.Warn("cloudinary credentials missing, resume uploads disabled")
	}
	return client
}

func ProvideOTel(lc fx.Lifecycle, cfg *config.Config) (*observability.Provider, error) {
	if !cfg.Observability.Enabled {
		return nil, nil
	}
	provider, err := observability.InitTelemetry(context.Background(), observability.Config{
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVersion: cfg.Observability.ServiceVersion,
		Environment:    cfg.Server.Environment,
		OTLPEndpoint:   cfg.Observability.Tracing.OTLPEndpoint,
		OTLPInsecure:   cfg.Observability.Tracing.OTLPInsecure,
		SamplingRate:   cfg.Observability.Tracing.SamplingRate,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("observability initialized",
		"tracing", cfg.Observability.Tracing.Enabled,
		"metrics", cfg.Observability.Metrics.Enabled,
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			slog.Debug("shutting down observability providers")
			return provider.Shutdown(ctx)
		},
	})
	return provider, nil
}
