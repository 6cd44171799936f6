package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathan/rendercv/internal/config"
	"github.com/jonathan/rendercv/internal/pipeline"
)

// mustBind binds a persistent flag to a config key at construction time.
// Flags are registered in code, so a failure is a programming error.
func mustBind(v *viper.Viper, key string, flag *pflag.Flag) {
	if err := v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// bindFlags binds command-local flags to config keys. Several commands
// define flags for the same key, so binding happens once the command that
// actually runs is known.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// runOptions converts resolved settings into options for one language.
func runOptions(cfg *config.Config, lang string) pipeline.RunOptions {
	return pipeline.RunOptions{
		Lang:           lang,
		Details:        cfg.Details,
		DataDir:        cfg.DataDir,
		TemplateDir:    cfg.TemplateDir,
		TranslationDir: cfg.TranslationDir,
		Template:       cfg.Template,
		Schema:         cfg.Schema,
		Strict:         cfg.Strict,
	}
}
