package pipeline

import (
	"errors"
	"fmt"

	"github.com/jonathan/rendercv/internal/rendering"
	"github.com/jonathan/rendercv/internal/translations"
)

// Diagnose returns the one-line report for the two anticipated failure
// kinds: template syntax errors and missing translations. ok is false for
// any other error.
func Diagnose(err error) (msg string, ok bool) {
	var syntaxErr *rendering.TemplateSyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("TemplateSyntaxError %s:%d %s", syntaxErr.File, syntaxErr.Line, syntaxErr.Source), true
	}

	var missing *translations.MissingTranslationError
	if errors.As(err, &missing) {
		return fmt.Sprintf(`Translation for "%s" is missing for language %s`, missing.Key, missing.Lang), true
	}

	return "", false
}
