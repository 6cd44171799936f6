// Package pipeline provides the high-level orchestration for rendering CVs.
package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/rendercv/internal/datasource"
	"github.com/jonathan/rendercv/internal/dates"
	"github.com/jonathan/rendercv/internal/logging"
	"github.com/jonathan/rendercv/internal/rendering"
	"github.com/jonathan/rendercv/internal/schemas"
	"github.com/jonathan/rendercv/internal/translations"
)

// Template context keys.
const (
	DataKey    = "data"
	DetailsKey = "print_details"
)

// RunOptions holds configuration for rendering one language
type RunOptions struct {
	Lang           string `validate:"required,bcp47_language_tag"`
	Details        bool
	DataDir        string `validate:"required"`
	TemplateDir    string `validate:"required"`
	TranslationDir string `validate:"required"`
	Template       string `validate:"required"`
	Schema         string
	Strict         bool
}

// Validate validates the RunOptions using the validator.
func (o *RunOptions) Validate() error {
	validate := validator.New()
	return validate.Struct(o)
}

// DatasourceName returns the datasource name for a language, e.g. "cv.en".
func DatasourceName(lang string) string {
	return "cv." + lang
}

// Render loads the translation table, date formatter, template and
// datasource for opts.Lang and returns the rendered document.
func Render(ctx context.Context, opts RunOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", fmt.Errorf("invalid options: %w", err)
	}

	logger := logging.GetLogger("pipeline").With().Str("lang", opts.Lang).Logger()
	done := logging.LogOperationStart(logger, "render")
	defer done()

	table, err := translations.Load(opts.TranslationDir, opts.Lang)
	if err != nil {
		return "", err
	}
	logger.Debug().Int("entries", table.Len()).Msg("Loaded translations")

	formatter := dates.NewFormatter(opts.Lang)
	if !dates.Supported(opts.Lang) {
		logger.Warn().Msg("No date format for language, format_date will fail")
	}

	env := rendering.NewEnvironment(
		os.DirFS(opts.TemplateDir),
		rendering.WithOrigin(opts.TemplateDir),
		rendering.WithStrict(opts.Strict),
		rendering.WithLogger(logging.GetLogger("rendering")),
		rendering.WithFunc("translate", table.Translate),
		rendering.WithFunc("format_date", formatter.Format),
	)

	tmpl, err := env.Parse(opts.Template)
	if err != nil {
		return "", err
	}

	data, err := datasource.Load(opts.DataDir, DatasourceName(opts.Lang))
	if err != nil {
		return "", err
	}
	if opts.Schema != "" {
		if err := schemas.ValidateDocument(opts.Schema, data); err != nil {
			return "", fmt.Errorf("datasource %s: %w", datasource.Path(opts.DataDir, DatasourceName(opts.Lang)), err)
		}
		logger.Debug().Str("schema", opts.Schema).Msg("Datasource matches schema")
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	output, err := env.Execute(tmpl, map[string]any{
		DataKey:    data,
		DetailsKey: opts.Details,
	})
	if err != nil {
		return "", err
	}

	logger.Info().Int("bytes", len(output)).Bool("details", opts.Details).Msg("Rendered CV")
	return output, nil
}
