// Package reportstore abstracts where serialized path reports are written.
//
// ReportStore is the interface for writing and reading report documents.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, atomic rename on write, optional gzip
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3
//   - minio.Store: MinIO and other S3-compatible storage
package reportstore
