package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/rendercv/internal/config"
	"github.com/jonathan/rendercv/internal/observability"
	"github.com/jonathan/rendercv/internal/pipeline"
)

func newBuildCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render several languages to .tex files",
		Long: `Build renders the CV for every language given by --langs concurrently and
writes each result to <out-dir>/cv.<lang>.tex.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(), map[string]string{
				config.KeyLangs:   "langs",
				config.KeyOutDir:  "out-dir",
				config.KeyDetails: "details",
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			results, err := pipeline.Build(cmd.Context(), runOptions(cfg, ""), cfg.Langs, cfg.OutDir)
			if err != nil {
				return report(cmd, err)
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintBuildResults(results)
			return nil
		},
	}

	cmd.Flags().StringSlice("langs", []string{"en", "de"}, "languages to build")
	cmd.Flags().String("out-dir", "out", "directory the .tex files are written to")
	cmd.Flags().Bool("details", false, "render the details section (default true when cv_details=y)")

	return cmd
}
