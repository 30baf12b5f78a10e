// Package database provides the relational storage access for the pipeline:
// connection management (postgres by default, mysql and sqlite supported),
// a whole-table reader, a full-replace writer, and schema inspection
// helpers used to discover staging tables by prefix.
//
// Staging and curated tables are always written with drop-and-recreate
// semantics, so a re-run fully replaces previous output and no incremental
// mutation ever happens.
package database
