// Package translations loads the per-language label tables used by CV templates.
//
// A translation file holds one entry per line in the form key@@@value.
// Surrounding whitespace is stripped from each line and blank lines are
// ignored. Later entries override earlier ones with the same key.
package translations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Separator divides key and value on a translation line.
const Separator = "@@@"

// maxLineSize bounds a single translation line.
const maxLineSize = 1024 * 1024

// Table is an immutable key to label mapping for one language.
type Table struct {
	lang    string
	entries map[string]string
}

// FileName returns the translation file name for a language code.
func FileName(lang string) string {
	return "translations." + lang + ".txt"
}

// Load reads the translation file for lang from dir.
func Load(dir, lang string) (*Table, error) {
	path := filepath.Join(dir, FileName(lang))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation file: %w", err)
	}
	defer f.Close()

	return Parse(f, lang, path)
}

// Parse reads key@@@value lines from r. name is only used in error messages.
func Parse(r io.Reader, lang, name string) (*Table, error) {
	entries := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, Separator)
		if len(parts) != 2 {
			return nil, &ParseError{File: name, Line: lineNo, Text: line}
		}
		entries[parts[0]] = parts[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return &Table{lang: lang, entries: entries}, nil
}

// New builds a table from an in-memory map. The map is copied.
func New(lang string, entries map[string]string) *Table {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &Table{lang: lang, entries: copied}
}

// Lang returns the language code the table was loaded for.
func (t *Table) Lang() string {
	return t.lang
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Translate returns the label for key, or a *MissingTranslationError.
func (t *Table) Translate(key string) (string, error) {
	value, ok := t.entries[key]
	if !ok {
		return "", &MissingTranslationError{Key: key, Lang: t.lang}
	}
	return value, nil
}

// Keys returns all keys in sorted order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
