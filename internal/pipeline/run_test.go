package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/rendercv/internal/dates"
	"github.com/jonathan/rendercv/internal/rendering"
	"github.com/jonathan/rendercv/internal/schemas"
	"github.com/jonathan/rendercv/internal/translations"
)

func TestRender_English(t *testing.T) {
	p := newProject(t)

	out, err := Render(context.Background(), p.options("en"))
	require.NoError(t, err)

	assert.Contains(t, out, `\name{Jane Doe}`)
	assert.Contains(t, out, `\section{Education}`)
	assert.Contains(t, out, `\cventry{2015/9/1}{TU Munich \& Co}`)
	assert.NotContains(t, out, `\section{Details}`)
}

func TestRender_German(t *testing.T) {
	p := newProject(t)

	out, err := Render(context.Background(), p.options("de"))
	require.NoError(t, err)

	assert.Contains(t, out, `\section{Ausbildung}`)
	assert.Contains(t, out, `\cventry{1.9.2015}{TU München}`)
}

func TestRender_Details(t *testing.T) {
	p := newProject(t)
	opts := p.options("en")
	opts.Details = true

	out, err := Render(context.Background(), opts)
	require.NoError(t, err)
	assert.Contains(t, out, `\section{Details}`)
}

func TestRender_Deterministic(t *testing.T) {
	p := newProject(t)
	p.write(t, "templates/map.tex", "[% range $k, $v := .data %][[ $k ]]=[[ $v ]];[% end %]\n")
	p.write(t, "data/cv.en.yml", "zeta: 1\nalpha: 2\nmid: 3\nbeta: 4\n")
	opts := p.options("en")
	opts.Template = "map.tex"

	first, err := Render(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "alpha=2;beta=4;mid=3;zeta=1;\n", first)

	for i := 0; i < 5; i++ {
		again, err := Render(context.Background(), opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRender_MissingTranslation(t *testing.T) {
	p := newProject(t)
	p.write(t, "translations/translations.en.txt", "education@@@Education\n")
	opts := p.options("en")
	opts.Details = true

	_, err := Render(context.Background(), opts)
	require.Error(t, err)

	var missing *translations.MissingTranslationError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "details", missing.Key)
	assert.Equal(t, "en", missing.Lang)

	msg, ok := Diagnose(err)
	assert.True(t, ok)
	assert.Equal(t, `Translation for "details" is missing for language en`, msg)
}

func TestRender_SyntaxError(t *testing.T) {
	p := newProject(t)
	p.write(t, "templates/cv.tex", "\\documentclass{moderncv}\n\\name{[[ .data.name ]]}\n[% end %]\n\\end{document}\n")

	_, err := Render(context.Background(), p.options("en"))
	require.Error(t, err)

	var syntaxErr *rendering.TemplateSyntaxError
	require.True(t, errors.As(err, &syntaxErr))
	assert.Equal(t, filepath.Join(p.root, "templates", "cv.tex"), syntaxErr.File)
	assert.Equal(t, 3, syntaxErr.Line)
	assert.Equal(t, "[% end %]", syntaxErr.Source)

	msg, ok := Diagnose(err)
	assert.True(t, ok)
	assert.Equal(t, "TemplateSyntaxError "+syntaxErr.File+":3 [% end %]", msg)
}

func TestRender_SyntaxErrorReportedBeforeMissingData(t *testing.T) {
	p := newProject(t)
	p.write(t, "templates/cv.tex", "[% if .data %]\n")
	require.NoError(t, os.Remove(filepath.Join(p.root, "data", "cv.en.yml")))

	_, err := Render(context.Background(), p.options("en"))

	var syntaxErr *rendering.TemplateSyntaxError
	assert.True(t, errors.As(err, &syntaxErr))
}

func TestRender_UnsupportedDateLanguage(t *testing.T) {
	p := newProject(t)
	p.write(t, "translations/translations.fr.txt", "education@@@Formation\ndetails@@@Détails\n")
	p.write(t, "data/cv.fr.yml", "name: Jeanne\neducation:\n  - school: X\n    year: 2015\n    month: 9\n    day: 1\n")

	_, err := Render(context.Background(), p.options("fr"))
	require.Error(t, err)

	var unsupported *dates.UnsupportedLanguageError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "fr", unsupported.Lang)

	_, ok := Diagnose(err)
	assert.False(t, ok)
}

func TestRender_LanguageWithoutDatesStillRendersWhenUnused(t *testing.T) {
	p := newProject(t)
	p.write(t, "translations/translations.fr.txt", "education@@@Formation\ndetails@@@Détails\n")
	p.write(t, "data/cv.fr.yml", "name: Jeanne\neducation: []\n")

	out, err := Render(context.Background(), p.options("fr"))
	require.NoError(t, err)
	assert.Contains(t, out, `\section{Formation}`)
}

func TestRender_MissingTranslationFile(t *testing.T) {
	p := newProject(t)

	_, err := Render(context.Background(), p.options("it"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	_, ok := Diagnose(err)
	assert.False(t, ok)
}

func TestRender_MissingDatasource(t *testing.T) {
	p := newProject(t)
	require.NoError(t, os.Remove(filepath.Join(p.root, "data", "cv.de.yml")))

	_, err := Render(context.Background(), p.options("de"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRender_StrictMissingKey(t *testing.T) {
	p := newProject(t)
	p.write(t, "templates/cv.tex", "[[ .data.nickname ]]\n")

	opts := p.options("en")
	out, err := Render(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "<no value>\n", out)

	opts.Strict = true
	_, err = Render(context.Background(), opts)
	assert.Error(t, err)
}

func TestRender_SchemaValidation(t *testing.T) {
	p := newProject(t)
	p.write(t, "cv.schema.json", `{"type": "object", "required": ["name", "email"]}`)
	opts := p.options("en")
	opts.Schema = filepath.Join(p.root, "cv.schema.json")

	_, err := Render(context.Background(), opts)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), "cv.en.yml")

	p.write(t, "cv.schema.json", `{"type": "object", "required": ["name"]}`)
	_, err = Render(context.Background(), opts)
	assert.NoError(t, err)
}

func TestRender_InvalidOptions(t *testing.T) {
	p := newProject(t)
	opts := p.options("en")
	opts.Template = ""

	_, err := Render(context.Background(), opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid options")
}

func TestRender_CanceledContext(t *testing.T) {
	p := newProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Render(ctx, p.options("en"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiagnose_OtherErrors(t *testing.T) {
	_, ok := Diagnose(errors.New("boom"))
	assert.False(t, ok)

	_, ok = Diagnose(nil)
	assert.False(t, ok)
}

func TestDatasourceName(t *testing.T) {
	assert.Equal(t, "cv.en", DatasourceName("en"))
}
