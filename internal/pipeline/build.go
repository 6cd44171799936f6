package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/rendercv/internal/logging"
)

// BuildResult describes one rendered language
type BuildResult struct {
	Lang  string
	Path  string
	Bytes int
}

// OutputName returns the file name a language is written to, e.g. "cv.de.tex".
func OutputName(lang string) string {
	return "cv." + lang + ".tex"
}

// Build renders every language in langs concurrently and writes each
// document to outDir. base supplies all options except Lang. Results are
// returned in the order of langs. The first failure cancels the remaining
// languages; files already written are left in place.
func Build(ctx context.Context, base RunOptions, langs []string, outDir string) ([]BuildResult, error) {
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages to build")
	}

	runID := uuid.New()
	logger := logging.GetLogger("build").With().Str("run_id", runID.String()).Logger()
	logger.Info().Strs("langs", langs).Str("out_dir", outDir).Msg("Starting build")

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	results := make([]BuildResult, len(langs))
	g, gCtx := errgroup.WithContext(ctx)

	for i, lang := range langs {
		i, lang := i, lang
		g.Go(func() error {
			opts := base
			opts.Lang = lang

			output, err := Render(gCtx, opts)
			if err != nil {
				return fmt.Errorf("render %s: %w", lang, err)
			}

			path := filepath.Join(outDir, OutputName(lang))
			if err := os.WriteFile(path, []byte(output), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}

			results[i] = BuildResult{Lang: lang, Path: path, Bytes: len(output)}
			logger.Info().Str("lang", lang).Str("path", path).Msg("Wrote CV")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
