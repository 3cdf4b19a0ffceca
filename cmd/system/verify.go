package system

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bytsmartz/leads_backend/config"
	"github.com/bytsmartz/leads_backend/internal/service/lead"
	"github.com/bytsmartz/leads_backend/pkg/cloudinary"
	"github.com/bytsmartz/leads_backend/pkg/email"
	"github.com/bytsmartz/leads_backend/pkg/logs"
)

// NewVerifyCommand checks the SMTP and Cloudinary configuration and can
// push a test lead through the whole pipeline.
func NewVerifyCommand() *cobra.Command {
	var sendTest bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify SMTP relay and upload configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return err
			}
			slog.SetDefault(logs.New(cfg))

			out := cmd.OutOrStdout()

			if cfg.Email.Enabled {
				fmt.Fprintf(out, "email:      enabled (relay %s:%d, from %s, inbox %s)\n",
					cfg.Email.SMTP.Host, cfg.Email.SMTP.Port, cfg.Email.From, cfg.Leads.CompanyEmail)
			} else {
				fmt.Fprintln(out, "email:      disabled — lead notifications will fail")
			}

			storage := cloudinary.New(cfg.Cloudinary)
			if storage.IsConfigured() {
				fmt.Fprintf(out, "cloudinary: configured (cloud %s)\n", cfg.Cloudinary.CloudName)
			} else {
				fmt.Fprintln(out, "cloudinary: not configured — resume uploads will be rejected")
			}

			if !sendTest {
				return nil
			}

			mailer, err := email.NewFromCentral(cfg.Email)
			if err != nil {
				return err
			}

			svc := lead.New(mailer, cfg.Leads)
			res := svc.Submit(cmd.Context(), lead.Submission{
				Kind:    lead.KindContact,
				Subject: "Configuration Test",
				Name:    "Config Verify",
				Email:   cfg.Leads.CompanyEmail,
				Phone:   "+91 98765 43210",
				Message: "Test lead sent by `bytsmartz system verify`.",
			})

			fmt.Fprintf(out, "test lead:  success=%v message=%q\n", res.Success, res.Message)
			if !res.Success {
				return fmt.Errorf("test lead dispatch failed: %s", res.Message)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sendTest, "send-test", false, "send a test lead email through the SMTP relay")

	return cmd
}
