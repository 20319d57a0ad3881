package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-siteschema/internal/ssg"
	"github.com/goliatone/go-siteschema/pkg/config"
	"github.com/goliatone/go-siteschema/pkg/filebrowser"
	"github.com/goliatone/go-siteschema/pkg/generator"
)

func newGenerateCmd() *cobra.Command {
	var (
		output    string
		force     bool
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "generate [dir]",
		Short: "infer a content model from a repository",
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

			progress := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
				spinner.WithWriter(cmd.ErrOrStderr()))
			progress.Suffix = " analyzing repository..."
			progress.Start()

			gen := generator.New(generator.WithDSCThreshold(threshold))
			result, err := gen.Generate(cmd.Context(), generator.Request{
				FileBrowser: browser,
				SSGMatch:    match,
			})
			progress.Stop()
			if err != nil {
				return err
			}

			cfg := config.FromInference(result.Models)
			if match != nil {
				cfg.SSGName = match.Name
				cfg.PagesDir = match.PagesDir
				cfg.DataDir = match.DataDir
				cfg.PublishDir = match.PublishDir
			}

			outPath := output
			if outPath == "" {
				outPath = filepath.Join(repoDir, config.DefaultFileName)
			}
			if !force {
				if _, err := os.Stat(outPath); err == nil {
					overwrite := false
					prompt := &survey.Confirm{Message: fmt.Sprintf("%s exists, overwrite?", outPath)}
					if err := survey.AskOne(prompt, &overwrite); err != nil {
						return err
					}
					if !overwrite {
						return fmt.Errorf("aborted: %s already exists", outPath)
					}
				}
			}

			if err := cfg.Write(outPath); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "wrote %s (%d models)\n", outPath, len(result.Models))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <dir>/"+config.DefaultFileName+")")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config without asking")
	cmd.Flags().Float64Var(&threshold, "similarity", 0.75, "page shape similarity threshold")
	return cmd
}
