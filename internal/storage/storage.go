// Package storage contains object storage abstractions for S3-compatible stores.
// Implementations must avoid using local disk and rely on streaming I/O only.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned when a key does not exist in the bucket.
var ErrObjectNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
	// Progress, when set, is called with the cumulative number of bytes sent.
	Progress func(sent int64)
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string            `json:"key"`
	Size         int64             `json:"size"`
	ETag         string            `json:"etag"`
	ContentType  string            `json:"contentType"`
	LastModified time.Time         `json:"lastModified"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Storage is a reusable, S3-compatible object storage client interface.
// Methods use context and streaming readers/writers; no local disk is used.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Stat returns object info without downloading content.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Delete removes an object by key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited URL that can be used to download the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
	// PublicURL returns the stable URL the object is served from.
	PublicURL(key string) string
}

// progressReader reports cumulative bytes as minio reads from it.
type progressReader struct {
	sent int64
	fn   func(int64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	p.sent += int64(len(b))
	p.fn(p.sent)
	return len(b), nil
}
