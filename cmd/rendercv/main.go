// Package main provides the entry point for the rendercv CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/rendercv/internal/config"
	"github.com/jonathan/rendercv/internal/logging"
	"github.com/jonathan/rendercv/internal/pipeline"
)

// version is set at build time via ldflags.
var version = "dev"

// diagnosedError marks a failure whose diagnostic has already been printed.
type diagnosedError struct {
	cause error
}

func (e *diagnosedError) Error() string {
	return e.cause.Error()
}

func (e *diagnosedError) Unwrap() error {
	return e.cause
}

// report prints the diagnostic for a handled failure kind and marks it as
// reported. Other errors are returned unchanged.
func report(cmd *cobra.Command, err error) error {
	if msg, ok := pipeline.Diagnose(err); ok {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
		return &diagnosedError{cause: err}
	}
	return err
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "rendercv",
		Short: "Render a CV to LaTeX from YAML data and a template",
		Long: `rendercv renders a CV into LaTeX source. It combines the YAML datasource
data/cv.<lang>.yml with the template templates/cv.moderncv.tex.j2, resolving
labels from translations/translations.<lang>.txt and formatting dates for
the selected language. The result is printed to standard output.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			logging.Setup(cmd.ErrOrStderr(), verbosity)

			cfgFile, _ := cmd.Flags().GetString("config")
			config.Setup(v, cfgFile)
			found, err := config.ReadFile(v, cfgFile != "")
			if err != nil {
				return err
			}
			if found {
				logger := logging.GetLogger("config")
				logger.Info().Str("file", v.ConfigFileUsed()).Msg("Using config file")
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(), map[string]string{
				config.KeyLang:    "lang",
				config.KeyDetails: "details",
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, v)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./rendercv.yaml or ~/.config/rendercv/rendercv.yaml)")
	flags.CountP("verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace)")
	flags.String("data-dir", "data", "directory holding cv.<lang>.yml datasources")
	flags.String("template-dir", "templates", "directory holding templates")
	flags.String("translation-dir", "translations", "directory holding translations.<lang>.txt files")
	flags.String("template", "cv.moderncv.tex.j2", "template file name within the template directory")
	flags.String("schema", "", "JSON Schema file the datasource must satisfy")
	flags.Bool("strict", false, "fail on keys missing from the datasource instead of printing <no value>")

	rootCmd.Flags().String("lang", "en", "language code selecting datasource and translations")
	rootCmd.Flags().Bool("details", false, "render the details section (default true when cv_details=y)")

	mustBind(v, config.KeyDataDir, flags.Lookup("data-dir"))
	mustBind(v, config.KeyTemplateDir, flags.Lookup("template-dir"))
	mustBind(v, config.KeyTranslationDir, flags.Lookup("translation-dir"))
	mustBind(v, config.KeyTemplate, flags.Lookup("template"))
	mustBind(v, config.KeySchema, flags.Lookup("schema"))
	mustBind(v, config.KeyStrict, flags.Lookup("strict"))

	rootCmd.AddCommand(newBuildCmd(v), newCheckCmd(v), newVersionCmd())
	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		var diagnosed *diagnosedError
		if !errors.As(err, &diagnosed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
