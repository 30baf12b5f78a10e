package validate

import "shopzada-etl/core/table"

// keySep joins key tuple parts unambiguously.
const keySep = "\x1f"

// DuplicateKeys returns the distinct key tuples that appear more than once,
// in order of first appearance. If any key column is missing the check is
// inapplicable and nil is returned. Never mutates the table.
func DuplicateKeys(t *table.Table, cols []string) [][]string {
	for _, col := range cols {
		if !t.HasColumn(col) {
			return nil
		}
	}

	counts := make(map[string]int, t.Len())
	var order []string
	tuples := make(map[string][]string)
	for _, row := range t.Rows {
		tuple := make([]string, len(cols))
		key := ""
		for i, col := range cols {
			tuple[i] = row.Get(col).TrimmedString()
			key += tuple[i] + keySep
		}
		if counts[key] == 0 {
			order = append(order, key)
			tuples[key] = tuple
		}
		counts[key]++
	}

	var dups [][]string
	for _, key := range order {
		if counts[key] > 1 {
			dups = append(dups, tuples[key])
		}
	}
	return dups
}

// NullCounts returns the number of null cells per named column. Columns the
// table does not have are omitted from the result.
func NullCounts(t *table.Table, cols []string) map[string]int {
	issues := make(map[string]int)
	for _, col := range cols {
		if !t.HasColumn(col) {
			continue
		}
		n := 0
		for _, row := range t.Rows {
			if row.Get(col).IsNull() {
				n++
			}
		}
		issues[col] = n
	}
	return issues
}

// FKMismatchCount counts the distinct non-null child-side key values that
// do not appear in the parent table's key column. Returns -1 when either
// key column is missing, marking the check inapplicable.
func FKMismatchCount(child, parent *table.Table, childKey, parentKey string) int {
	if !child.HasColumn(childKey) || !parent.HasColumn(parentKey) {
		return -1
	}

	parentSet := make(map[string]struct{}, parent.Len())
	for _, row := range parent.Rows {
		cell := row.Get(parentKey)
		if !cell.IsNull() {
			parentSet[cell.TrimmedString()] = struct{}{}
		}
	}

	missing := make(map[string]struct{})
	for _, row := range child.Rows {
		cell := row.Get(childKey)
		if cell.IsNull() {
			continue
		}
		key := cell.TrimmedString()
		if _, ok := parentSet[key]; !ok {
			missing[key] = struct{}{}
		}
	}
	return len(missing)
}
