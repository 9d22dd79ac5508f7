package model

import (
	"context"
	"io"
)

// Storage persists uploaded files in an object store.
type Storage interface {
	Upload(ctx context.Context, key string, upload Upload) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	URL(key string) string
}

// Upload is a file received from a client.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
