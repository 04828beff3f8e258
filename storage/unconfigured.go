package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotConfigured = errors.New("object storage is not configured")

// Unconfigured stands in for the file store when no S3 credentials are set.
// Link-mode asset updates still work; upload mode fails with a clear message.
type Unconfigured struct{}

func (Unconfigured) Upload(ctx context.Context, key string, r io.Reader, size int64, onProgress ProgressFunc) (string, error) {
	return "", ErrNotConfigured
}

func (Unconfigured) DownloadURL(ctx context.Context, key string) (string, error) {
	return "", ErrNotConfigured
}
