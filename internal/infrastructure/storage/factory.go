package storage

import (
	planningapp "github.com/estate/backend/internal/application/planning"
	infraconfig "github.com/estate/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewAttachmentStorage creates an attachment storage from configuration.
// A configured bucket selects S3; otherwise attachments go to the local
// filesystem under cfg.LocalDir
func NewAttachmentStorage(cfg infraconfig.StorageConfig, logger *zap.Logger) (planningapp.AttachmentStorage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Bucket != "" {
		store, err := NewS3AttachmentStorage(cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		logger.Info("using S3 attachment storage", zap.String("bucket", cfg.Bucket))
		return store, nil
	}

	dir := cfg.LocalDir
	if dir == "" {
		dir = "./attachments"
	}
	store, err := NewLocalAttachmentStorage(dir)
	if err != nil {
		return nil, err
	}
	logger.Info("using local attachment storage", zap.String("dir", dir))
	return store, nil
}
