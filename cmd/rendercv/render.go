package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/rendercv/internal/config"
	"github.com/jonathan/rendercv/internal/pipeline"
)

func runRender(cmd *cobra.Command, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	output, err := pipeline.Render(cmd.Context(), runOptions(cfg, cfg.Lang))
	if err != nil {
		return report(cmd, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}
