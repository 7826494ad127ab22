// Package s3 provides an Amazon S3 implementation of reportstore.ReportStore.
//
// Uploads go through the s3/manager uploader, downloads through GetObject.
// Missing objects map to reportstore.ErrNotFound.
package s3
