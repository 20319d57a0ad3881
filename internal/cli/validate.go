package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-siteschema/pkg/config"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config]",
		Short: "validate and normalize a model configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultFileName
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := config.Load(path)
			if err != nil {
				color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "invalid: %v\n", err)
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s is valid (%d models)\n", path, len(cfg.Models))
			for _, model := range cfg.Models {
				fmt.Fprintf(cmd.OutOrStdout(), "  %-6s %s\n", model.Type, model.Name)
			}
			return nil
		},
	}
}
