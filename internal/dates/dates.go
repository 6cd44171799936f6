// Package dates formats CV dates according to the conventions of a language.
package dates

import (
	"fmt"

	"golang.org/x/text/language"
)

// layout renders already-split date parts.
type layout func(year, month, day any) string

// layouts is keyed by base language.
var layouts = map[string]layout{
	"en": func(year, month, day any) string {
		return fmt.Sprintf("%v/%v/%v", year, month, day)
	},
	"de": func(year, month, day any) string {
		return fmt.Sprintf("%v.%v.%v", day, month, year)
	},
}

// UnsupportedLanguageError is returned when no date layout exists for a language.
type UnsupportedLanguageError struct {
	Lang string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("no date format defined for language %q", e.Lang)
}

// Formatter formats dates for the language it was created with.
type Formatter struct {
	lang   string
	layout layout
}

// NewFormatter returns a Formatter for lang. Regional variants use the layout
// of their base language, so "de-AT" formats like "de". A language without
// a layout is not rejected here; Format reports it instead.
func NewFormatter(lang string) *Formatter {
	return &Formatter{lang: lang, layout: lookup(lang)}
}

func lookup(lang string) layout {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil
	}
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return nil
	}
	return layouts[base.String()]
}

// Supported reports whether lang has a date layout.
func Supported(lang string) bool {
	return lookup(lang) != nil
}

// Lang returns the language the formatter was created with.
func (f *Formatter) Lang() string {
	return f.lang
}

// Format renders year, month and day. The parts are printed as given, so
// callers control zero padding.
func (f *Formatter) Format(year, month, day any) (string, error) {
	if f.layout == nil {
		return "", &UnsupportedLanguageError{Lang: f.lang}
	}
	return f.layout(year, month, day), nil
}
