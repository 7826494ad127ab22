// Package minio provides a MinIO implementation of reportstore.ReportStore
// for self-hosted S3-compatible storage.
package minio
