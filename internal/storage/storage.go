package storage

import (
	"context"
	"io"
)

// Uploader stores a compliance document and returns the URL written into the
// employer's requirement entry.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (url string, err error)
}
