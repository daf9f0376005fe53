package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/luckysign/internal/cache"
	"github.com/listenupapp/luckysign/internal/config"
	"github.com/listenupapp/luckysign/internal/logger"
)

// RenderCacheHandle wraps the render cache with shutdown capability.
// Cache is nil when caching is disabled.
type RenderCacheHandle struct {
	*cache.Cache
}

// Shutdown implements do.Shutdownable.
func (h *RenderCacheHandle) Shutdown() error {
	if h.Cache == nil {
		return nil
	}
	return h.Close()
}

// ProvideRenderCache provides the in-memory render cache.
func ProvideRenderCache(i do.Injector) (*RenderCacheHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if !cfg.Render.CacheEnabled {
		log.Info("Render cache disabled by configuration")
		return &RenderCacheHandle{}, nil
	}

	c, err := cache.Open(cache.Config{
		TTL:      cfg.Render.CacheTTL,
		MaxBytes: cfg.Render.CacheMaxBytes,
	}, log)
	if err != nil {
		return nil, err
	}

	log.Info("Render cache ready",
		"ttl", cfg.Render.CacheTTL,
		"max_bytes", cfg.Render.CacheMaxBytes,
	)

	return &RenderCacheHandle{Cache: c}, nil
}
