package rendering

import "fmt"

// TemplateSyntaxError is returned when a template cannot be parsed.
// Line is 1-based and Source holds the literal text of that line.
type TemplateSyntaxError struct {
	File    string
	Line    int
	Source  string
	Message string
	Cause   error
}

func (e *TemplateSyntaxError) Error() string {
	return fmt.Sprintf("template syntax error: %s:%d: %s", e.File, e.Line, e.Message)
}

func (e *TemplateSyntaxError) Unwrap() error {
	return e.Cause
}

// TemplateError represents an error loading or executing a template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
