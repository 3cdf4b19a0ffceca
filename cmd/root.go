package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/bytsmartz/leads_backend/cmd/http"
	systemcmd "github.com/bytsmartz/leads_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "bytsmartz",
	Short: "BytSmartz lead-capture backend.",
	Long: `Lead-capture backend for the BytSmartz website. It accepts contact,
job application, course enrollment and project purchase submissions, uploads
resume documents to Cloudinary, and emails each lead to the company inbox.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
