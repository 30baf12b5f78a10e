// Package curate reconciles dirty staging data into the curated star
// schema: one builder per entity (users, products, merchants, orders, line
// items, delays, campaigns, card summaries) plus the generated date
// dimension.
//
// Every builder follows the same shape: union the contributing staging
// tables (time-sliced sources may span several), normalize the natural key
// to trimmed text, apply type-specific field cleaning (lenient dates,
// birthdate plausibility, currency scrubbing, embedded-integer extraction,
// geography correction, card masking), then resolve duplicate keys by
// recency precedence and project the curated column set. The winning row is
// kept whole, never merged field by field.
//
// Missing or empty staging sources produce an empty curated table and a
// warning, never a failed run.
package curate
