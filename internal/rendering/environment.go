// Package rendering provides functionality to render LaTeX CVs from templates.
//
// Templates use text/template semantics with delimiters that stay clear of
// LaTeX's own braces and percent comments: [% ... %] for blocks such as
// if and range, and [[ ... ]] for expressions.
package rendering

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"github.com/rs/zerolog"
)

// Template delimiters.
const (
	BlockStart = "[%"
	BlockEnd   = "%]"
	ExprStart  = "[["
	ExprEnd    = "]]"
)

// Environment loads templates from a filesystem and renders them with a
// fixed set of global functions.
type Environment struct {
	fsys   fs.FS
	origin string
	funcs  template.FuncMap
	strict bool
	logger zerolog.Logger
}

// Option configures an Environment.
type Option func(*Environment)

// WithFunc registers fn as a global template function under name.
func WithFunc(name string, fn any) Option {
	return func(e *Environment) {
		e.funcs[name] = fn
	}
}

// WithOrigin sets the directory reported as the location of template files
// in errors. It does not affect loading.
func WithOrigin(dir string) Option {
	return func(e *Environment) {
		e.origin = dir
	}
}

// WithStrict makes a missing map key an execution error instead of
// rendering "<no value>".
func WithStrict(strict bool) Option {
	return func(e *Environment) {
		e.strict = strict
	}
}

// WithLogger sets the logger used for parse diagnostics. Without it the
// Environment does not log.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Environment) {
		e.logger = logger
	}
}

// NewEnvironment creates an Environment reading templates from fsys.
// The escape function is always available.
func NewEnvironment(fsys fs.FS, opts ...Option) *Environment {
	env := &Environment{
		fsys:   fsys,
		logger: zerolog.Nop(),
		funcs: template.FuncMap{
			"escape": EscapeLaTeX,
		},
	}
	for _, opt := range opts {
		opt(env)
	}
	return env
}

// Parse loads and parses the named template.
func (e *Environment) Parse(name string) (*template.Template, error) {
	content, err := fs.ReadFile(e.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", e.location(name)),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", e.location(name)),
			Cause:   err,
		}
	}

	src := string(content)
	normalized, delimErr := normalizeDelims(src)
	if delimErr != nil {
		line := lineAt(src, delimErr.pos)
		return nil, &TemplateSyntaxError{
			File:    e.location(name),
			Line:    line,
			Source:  sourceLine(src, line),
			Message: delimErr.msg,
		}
	}

	tmpl := template.New(name).Delims(ExprStart, ExprEnd).Funcs(e.funcs)
	if e.strict {
		tmpl = tmpl.Option("missingkey=error")
	}

	tmpl, err = tmpl.Parse(normalized)
	if err != nil {
		return nil, e.syntaxError(name, src, err)
	}

	e.logger.Debug().
		Str("template", e.location(name)).
		Int("bytes", len(content)).
		Msg("Parsed template")

	return tmpl, nil
}

// Execute renders a parsed template against data.
func (e *Environment) Execute(tmpl *template.Template, data any) (string, error) {
	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}
	return result.String(), nil
}

// Render parses the named template and executes it against data.
func (e *Environment) Render(name string, data any) (string, error) {
	tmpl, err := e.Parse(name)
	if err != nil {
		return "", err
	}
	return e.Execute(tmpl, data)
}

func (e *Environment) location(name string) string {
	if e.origin == "" {
		return name
	}
	return filepath.Join(e.origin, name)
}

// syntaxError converts a parse error of the form
// "template: <name>:<line>: <message>" into a *TemplateSyntaxError.
func (e *Environment) syntaxError(name, src string, err error) error {
	rest, ok := strings.CutPrefix(err.Error(), "template: "+name+":")
	if !ok {
		return &TemplateError{Message: "failed to parse template", Cause: err}
	}
	lineText, message, ok := strings.Cut(rest, ": ")
	if !ok {
		return &TemplateError{Message: "failed to parse template", Cause: err}
	}
	line, convErr := strconv.Atoi(lineText)
	if convErr != nil {
		return &TemplateError{Message: "failed to parse template", Cause: err}
	}

	return &TemplateSyntaxError{
		File:    e.location(name),
		Line:    line,
		Source:  sourceLine(src, line),
		Message: message,
		Cause:   err,
	}
}

// sourceLine returns the 1-based line n of src without its line ending.
func sourceLine(src string, n int) string {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[n-1], "\r")
}
