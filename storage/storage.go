// Package storage wraps the object-storage service behind a small interface:
// upload a file while observing progress, and resolve a download URL for a
// stored object.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// ProgressFunc receives upload progress as a 0-100 percentage. Implementations
// are called from the uploading goroutine and must be cheap.
type ProgressFunc func(percent int)

// FileStore is the object-storage client surface the asset flow consumes.
type FileStore interface {
	// Upload stores size bytes from r under key, reporting progress as the
	// body is consumed, and returns the object's download URL.
	Upload(ctx context.Context, key string, r io.Reader, size int64, onProgress ProgressFunc) (string, error)
	// DownloadURL resolves a URL for an already stored object.
	DownloadURL(ctx context.Context, key string) (string, error)
}

// ObjectKey derives the storage key for an asset upload. The timestamp keeps
// repeated uploads of the same filename from colliding.
func ObjectKey(kind, filename string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", kind, now.UnixMilli(), filename)
}
