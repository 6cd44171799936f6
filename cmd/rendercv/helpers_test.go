package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeProject lays out a minimal rendercv working tree under a temp
// directory and changes into it.
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()

	defaults := map[string]string{
		"templates/cv.moderncv.tex.j2":     "\\name{[[ .data.name ]]}\n\\section{[[ translate \"skills\" ]]}\n[% if .print_details %]\\section{[[ translate \"details\" ]]}[% end %]\n\\date{[[ format_date .data.year .data.month .data.day ]]}",
		"translations/translations.en.txt": "skills@@@Skills\ndetails@@@Details\n",
		"translations/translations.de.txt": "skills@@@Kenntnisse\ndetails@@@Einzelheiten\n",
		"data/cv.en.yml":                   "name: Jane Doe\nyear: 2024\nmonth: 1\nday: 5\n",
		"data/cv.de.yml":                   "name: Jane Doe\nyear: 2024\nmonth: 1\nday: 5\n",
	}
	for rel, content := range files {
		defaults[rel] = content
	}

	for rel, content := range defaults {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	// Equivalent of t.Chdir (Go 1.24+) for the Go 1.21 toolchain.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", t.TempDir())
	return root
}

// execute runs the CLI in-process and returns stdout, stderr and the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
