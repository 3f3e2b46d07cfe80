package files

import (
	"context"
	"io"
)

// File is a single attachment to be uploaded.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Store defines the interface for the attachment file store.
// Callers surface upload failures immediately; no retry policy is applied here.
type Store interface {
	// Upload stores the file under the given key and returns its public URL.
	Upload(ctx context.Context, key string, file File) (string, error)

	// Delete removes the object stored under the given key.
	Delete(ctx context.Context, key string) error
}
