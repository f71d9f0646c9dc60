package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage persists uploaded files and resolves their public URLs.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

type Config struct {
	Type      string // local or r2
	BasePath  string // local only
	BaseURL   string
	Bucket    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "r2", "s3":
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
