package catalog

import (
	"context"
	"time"
)

// ObjectStorage stores binary blobs (product images, vendor documents) under
// opaque keys and hands back publicly reachable URLs.
type ObjectStorage interface {
	// Upload stores a blob and returns its public URL
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Delete removes a blob. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// PresignDownload returns a time-limited download URL and its expiry
	PresignDownload(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}
