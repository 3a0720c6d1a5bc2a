package cache

import (
	"github.com/estate/backend/internal/domain/shared"
	"github.com/estate/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore creates an idempotency store from configuration
// With Redis enabled it connects there; otherwise, or when Redis is
// unreachable, it falls back to the in-process store with a warning
func NewIdempotencyStore(cfg config.RedisConfig, logger *zap.Logger) (shared.IdempotencyStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if !cfg.Enabled {
		logger.Info("using in-memory idempotency store")
		return NewInMemoryIdempotencyStore(), nil
	}

	store, err := NewRedisIdempotencyStore(cfg)
	if err == nil {
		logger.Info("using Redis idempotency store",
			zap.String("host", cfg.Host),
			zap.Int("port", cfg.Port),
		)
		return store, nil
	}

	logger.Warn("Redis unavailable, falling back to in-memory idempotency store. "+
		"Duplicate decide requests may slip through across instances.",
		zap.Error(err),
	)
	return NewInMemoryIdempotencyStore(), nil
}
