package pipeline

import (
	"fmt"

	"github.com/jonathan/rendercv/internal/translations"
)

// Check loads the translation table of every language in langs from dir
// and reports which keys each one lacks compared to the others.
func Check(dir string, langs []string) (*translations.Coverage, error) {
	if len(langs) == 0 {
		return nil, fmt.Errorf("no languages to check")
	}

	tables := make([]*translations.Table, 0, len(langs))
	for _, lang := range langs {
		table, err := translations.Load(dir, lang)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return translations.Compare(tables...), nil
}
