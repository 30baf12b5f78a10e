// Package table provides the in-memory tabular model shared by every stage
// of the pipeline: ingestion lands raw files as tables, the cleaning stage
// reads staging tables back into them, and the validation stage checks
// curated tables through them.
//
// # Cells
//
// Every value is carried as a Cell tagged with an explicit Kind (null,
// scalar, composite). Composite cells hold nested structures decoded from
// JSON or serialized-object payloads; Sanitize folds them into a JSON text
// encoding before a table is persisted, so relational columns only ever see
// scalars.
//
// # Column names
//
// NormalizeColumns canonicalizes names (trim, lowercase, whitespace runs to
// a single underscore) and drops anonymous index columns such as
// "Unnamed: 0" left behind by spreadsheet round-trips.
package table
