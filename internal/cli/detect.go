package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-siteschema/internal/ssg"
	"github.com/goliatone/go-siteschema/pkg/filebrowser"
)

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [dir]",
		Short: "detect which static-site generator built a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoDir := "."
			if len(args) == 1 {
				repoDir = args[0]
			}

			browser, err := filebrowser.NewLocal(repoDir)
			if err != nil {
				return err
			}
			match, err := ssg.Match(browser)
			if err != nil {
				return err
			}
			if match == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "no static-site generator detected")
				return nil
			}

			color.New(color.FgCyan, color.Bold).Fprintln(cmd.OutOrStdout(), match.Name)
			printDir(cmd, "pages dir", match.PagesDir)
			printDir(cmd, "data dir", match.DataDir)
			printDir(cmd, "publish dir", match.PublishDir)
			return nil
		},
	}
}

func printDir(cmd *cobra.Command, label, dir string) {
	if dir == "" {
		dir = "."
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-12s %s\n", label+":", dir)
}
