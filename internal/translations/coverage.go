package translations

import "sort"

// Coverage lists, per language, the keys other languages define but it lacks.
type Coverage struct {
	Langs   []string
	Missing map[string][]string
}

// Complete reports whether every language defines every key.
func (c *Coverage) Complete() bool {
	for _, keys := range c.Missing {
		if len(keys) > 0 {
			return false
		}
	}
	return true
}

// Compare computes the key coverage across tables.
func Compare(tables ...*Table) *Coverage {
	union := make(map[string]struct{})
	for _, t := range tables {
		for k := range t.entries {
			union[k] = struct{}{}
		}
	}

	cov := &Coverage{
		Langs:   make([]string, 0, len(tables)),
		Missing: make(map[string][]string, len(tables)),
	}
	for _, t := range tables {
		cov.Langs = append(cov.Langs, t.lang)
		var missing []string
		for k := range union {
			if _, ok := t.entries[k]; !ok {
				missing = append(missing, k)
			}
		}
		sort.Strings(missing)
		cov.Missing[t.lang] = missing
	}
	return cov
}
