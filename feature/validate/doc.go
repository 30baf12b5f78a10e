// Package validate runs read-only integrity checks over the curated star
// schema: natural-key uniqueness, null counts on critical columns, and
// fact-to-dimension foreign key coverage. Findings go to the log and a
// CSV report; the data itself is never touched.
package validate
