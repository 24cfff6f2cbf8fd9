// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface, which supports
// both AWS S3 and self-hosted MinIO and is mocked in tests (core/storage/mocks).
//
// # Helpers
//
//   - EnsureBucket: creates the bucket on first use.
//   - Upload: stores a finished spreadsheet export under a key.
//   - ReadObject: fetches a whole object, used for bundle stats files kept in a bucket.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	info, err := storage.Upload(ctx, client, "revo", "exports/invoices.xlsx", data, excel.ContentType)
package storage
