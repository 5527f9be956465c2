package storage

import (
	"fmt"

	adapter "github.com/marcos-nsantos/image-variants/internal/adapter/storage"
	"github.com/marcos-nsantos/image-variants/internal/infrastructure/config"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// NewFileStorage returns the FileStorage selected by cfg.Driver.
func NewFileStorage(cfg config.StorageConfig, s3Cfg config.S3Config) (adapter.FileStorage, error) {
	switch cfg.Driver {
	case "", DriverLocal:
		return NewLocalStorage(cfg.LocalRoot, cfg.PublicURL), nil
	case DriverS3:
		return NewS3Storage(s3Cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
