package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kamranshamim45/ai-job-portal/internal/config"
)

// Storage persists uploaded files (resumes, profile photos, company logos)
// and resolves their public URLs.
type Storage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

// New builds the backend selected in configuration.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
