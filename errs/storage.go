package errs

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrUploadFailed = errors.New("upload failed")

// NewUploadError wraps an object-storage failure for a given upload key.
func NewUploadError(key string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadGateway,
		err:        ErrUploadFailed,
		Details:    fmt.Sprintf("Failed to upload object %q", key),
		Cause:      cause,
	}
}
