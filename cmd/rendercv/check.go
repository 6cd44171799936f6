package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/rendercv/internal/config"
	"github.com/jonathan/rendercv/internal/observability"
	"github.com/jonathan/rendercv/internal/pipeline"
)

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Compare translation tables across languages",
		Long: `Check loads the translation table of every language given by --langs and
lists the keys each one lacks compared to the others. It exits non-zero
when any language is incomplete.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(), map[string]string{config.KeyLangs: "langs"})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			cov, err := pipeline.Check(cfg.TranslationDir, cfg.Langs)
			if err != nil {
				return err
			}

			observability.NewPrinter(cmd.OutOrStdout()).PrintCoverage(cov)
			if !cov.Complete() {
				return fmt.Errorf("translation coverage incomplete")
			}
			return nil
		},
	}

	cmd.Flags().StringSlice("langs", []string{"en", "de"}, "languages to compare")

	return cmd
}
