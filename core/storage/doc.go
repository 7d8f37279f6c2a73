// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small interface used to export view
// snapshots and load them back for read-only replay. Both AWS S3 and
// self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Helpers
//
//   - EnsureBucket: Creates the snapshot bucket on first use.
//   - PutJSON: Uploads an encoded snapshot document.
//   - ReadAll: Retrieves a snapshot document.
//   - ListKeys: Lists stored snapshots under a prefix.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.EnsureBucket(ctx, client, config.Bucket, config.Region)
package storage
