// Package cli provides the cobra command tree for the siteschema tool:
// schema generation, SSG detection, and config validation.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-siteschema/internal/logging"
)

var (
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "siteschema",
	Short: "content model inference for static-site projects",
	Long: `siteschema analyzes a static-site repository, detects which site
generator built it, and infers a content model from its markdown and data
files. Existing configurations can be validated and normalized.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.DefaultConfig()
		cfg.Level = logLevel
		cfg.FilePath = logFile
		_, err := logging.Setup(cfg)
		return err
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newDetectCmd())
	rootCmd.AddCommand(newValidateCmd())
}
