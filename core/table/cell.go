package table

import (
	"strings"

	"shopzada-etl/core/utils"
)

// Kind tags the structural category of a cell value. Keeping the tag
// explicit avoids relying on runtime type switches scattered across the
// pipeline: a cell is null, a flat scalar, or a composite (nested map or
// sequence) that must be sanitized before it can be persisted.
type Kind uint8

const (
	// KindNull marks an absent value.
	KindNull Kind = iota
	// KindScalar marks a flat value (string, number, bool, time).
	KindScalar
	// KindComposite marks a nested value (map or sequence).
	KindComposite
)

// Cell is one value in a table, tagged with its structural kind.
type Cell struct {
	Kind  Kind
	Value any
}

// Null returns a null cell.
func Null() Cell {
	return Cell{Kind: KindNull}
}

// Scalar returns a scalar cell holding v.
func Scalar(v any) Cell {
	return Cell{Kind: KindScalar, Value: v}
}

// FromValue classifies an arbitrary decoded value into a cell.
// nil becomes null, maps and slices become composite, everything else scalar.
func FromValue(v any) Cell {
	switch v.(type) {
	case nil:
		return Null()
	case map[string]any, []any, map[any]any:
		return Cell{Kind: KindComposite, Value: v}
	default:
		return Cell{Kind: KindScalar, Value: v}
	}
}

// IsNull reports whether the cell holds no value.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// String renders the cell value as text. Null cells render as the empty
// string; callers that need to distinguish should check IsNull first.
func (c Cell) String() string {
	if c.IsNull() {
		return ""
	}
	return utils.ToString(c.Value)
}

// TrimmedString renders the cell as text with surrounding whitespace removed.
func (c Cell) TrimmedString() string {
	return strings.TrimSpace(c.String())
}
