package storage

import (
	"context"
	"io"
	"time"
)

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified *time.Time
}

// Service stores exported statements in object storage. Implementations are bound to
// a single bucket.
type Service interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}
