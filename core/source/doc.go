// Package source abstracts where raw dataset files are read from.
//
// The default backend is a flat local directory. The s3 backend reads the
// same files from an object-storage bucket (MinIO or any S3-compatible
// service), which is how raw drops arrive in shared environments. The
// ingestion service is agnostic: it lists names and opens readers.
package source
