// Package utils provides small conversion helpers shared across the pipeline.
//
// Values read back from staging tables arrive as driver-dependent types
// (string, []byte, float64, int64). These helpers coerce them without
// panicking so the cleaning transforms can stay focused on semantics.
package utils
