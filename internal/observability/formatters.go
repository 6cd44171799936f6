// Package observability provides formatted output utilities for CLI reports.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/rendercv/internal/pipeline"
	"github.com/jonathan/rendercv/internal/translations"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted report output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // report output; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCoverage outputs which translation keys each language is missing.
func (p *Printer) PrintCoverage(cov *translations.Coverage) {
	if cov == nil {
		return
	}

	var sb strings.Builder
	for _, lang := range cov.Langs {
		missing := cov.Missing[lang]
		if len(missing) == 0 {
			sb.WriteString(fmt.Sprintf("%s: complete\n", lang))
			continue
		}

		sb.WriteString(fmt.Sprintf("%s: %d missing\n", lang, len(missing)))
		count := min(len(missing), maxItemsToShow)
		for _, key := range missing[:count] {
			sb.WriteString(fmt.Sprintf("  • %s\n", key))
		}
		if len(missing) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(missing)-maxItemsToShow))
		}
	}

	p.printBox("TRANSLATION COVERAGE", sb.String())
}

// PrintBuildResults outputs the files written by a build.
func (p *Printer) PrintBuildResults(results []pipeline.BuildResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	for _, r := range results {
		sb.WriteString(fmt.Sprintf("%-6s %s (%d bytes)\n", r.Lang, r.Path, r.Bytes))
	}

	p.printBox("BUILD RESULTS", sb.String())
}
