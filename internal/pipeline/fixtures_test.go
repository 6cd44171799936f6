package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testTemplate = `\documentclass{moderncv}
\name{[[ .data.name ]]}
\section{[[ translate "education" ]]}
[% range .data.education %]\cventry{[[ format_date .year .month .day ]]}{[[ escape .school ]]}
[% end %]
[% if .print_details %]\section{[[ translate "details" ]]}[% end %]
`

// project is a rendercv working tree in a temp directory
type project struct {
	root string
}

func newProject(t *testing.T) *project {
	t.Helper()
	p := &project{root: t.TempDir()}

	p.write(t, "templates/cv.tex", testTemplate)
	p.write(t, "translations/translations.en.txt", "education@@@Education\ndetails@@@Details\n")
	p.write(t, "translations/translations.de.txt", "education@@@Ausbildung\ndetails@@@Details\n")
	p.write(t, "data/cv.en.yml", "name: Jane Doe\neducation:\n  - school: TU Munich & Co\n    year: 2015\n    month: 9\n    day: 1\n")
	p.write(t, "data/cv.de.yml", "name: Jane Doe\neducation:\n  - school: TU München\n    year: 2015\n    month: 9\n    day: 1\n")
	return p
}

func (p *project) write(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(p.root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func (p *project) options(lang string) RunOptions {
	return RunOptions{
		Lang:           lang,
		DataDir:        filepath.Join(p.root, "data"),
		TemplateDir:    filepath.Join(p.root, "templates"),
		TranslationDir: filepath.Join(p.root, "translations"),
		Template:       "cv.tex",
	}
}
