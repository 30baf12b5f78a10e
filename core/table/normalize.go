package table

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Anonymous index columns left behind by spreadsheet/CSV round-trips,
	// e.g. "Unnamed: 0".
	unnamedRe = regexp.MustCompile(`^unnamed`)
)

// NormalizeName canonicalizes a column name: trim surrounding whitespace,
// lowercase, collapse internal whitespace runs to a single underscore.
// Idempotent.
func NormalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	return whitespaceRe.ReplaceAllString(s, "_")
}

// NormalizeColumns canonicalizes every column name and drops anonymous
// index columns. If two source columns normalize to the same name the later
// one wins; collisions are an accepted data-quality risk, not validated.
func (t *Table) NormalizeColumns() {
	cols := make([]string, 0, len(t.Columns))
	renames := make(map[string]string, len(t.Columns))
	drop := make(map[string]struct{})

	for _, col := range t.Columns {
		norm := NormalizeName(col)
		if unnamedRe.MatchString(norm) {
			drop[col] = struct{}{}
			continue
		}
		renames[col] = norm
		// Later column wins on collision: remove the earlier occurrence.
		for i, existing := range cols {
			if existing == norm {
				cols = append(cols[:i], cols[i+1:]...)
				break
			}
		}
		cols = append(cols, norm)
	}

	for i, row := range t.Rows {
		nr := make(Row, len(row))
		// Walk in declared column order so a collision resolves to the
		// later column deterministically.
		for _, col := range t.Columns {
			if _, dropped := drop[col]; dropped {
				continue
			}
			norm, ok := renames[col]
			if !ok {
				continue
			}
			if cell, exists := row[col]; exists {
				nr[norm] = cell
			}
		}
		t.Rows[i] = nr
	}
	t.Columns = cols
}
