// Package ingest lands heterogeneous raw dataset files into staging tables.
//
// A format sniffer classifies each file by extension (csv/tsv, json, html,
// xlsx/xls, parquet, msgpack); per-format readers convert the payload into
// the shared in-memory table model. JSON and serialized-object payloads go
// through the flexible structure loader, which infers tabular shape without
// a known schema: line-delimited records, column-oriented dict-of-dicts
// (reconstructed row-per-union-of-inner-keys), row lists, and a logged
// single-row fallback for anything else.
//
// Staging tables are named stg_<normalized source filename> and written
// with full-replace semantics. One malformed file never aborts the batch.
package ingest
