package translations

import "fmt"

// MissingTranslationError is returned when a key has no entry in the table
// of the active language.
type MissingTranslationError struct {
	Key  string
	Lang string
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("translation for %q is missing for language %s", e.Key, e.Lang)
}

// ParseError represents a malformed line in a translation file
type ParseError struct {
	File string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: expected key%svalue, got %q", e.File, e.Line, Separator, e.Text)
}
