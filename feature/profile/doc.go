// Package profile produces data quality reports over the staging tables
// before curation: row counts, per-column null and cardinality stats,
// value frequencies for suspicious columns, candidate natural keys, and
// heuristic foreign key probes between staging tables.
package profile
