// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the shopping-list export archive needs: bucket checks, uploads,
// downloads, listing and deletion. The abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// The Client interface makes storage interactions mockable for unit testing
// (see core/storage/mocks).
package storage
