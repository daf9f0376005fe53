package providers

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/luckysign/internal/config"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/service"
	"github.com/listenupapp/luckysign/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(_ do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideInstanceService provides the instance service.
func ProvideInstanceService(i do.Injector) (*service.InstanceService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewInstanceService(cfg, log), nil
}

// ProvideSignService provides the sign service.
func ProvideSignService(i do.Injector) (*service.SignService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	v := do.MustInvoke[*validation.Validator](i)
	cacheHandle := do.MustInvoke[*RenderCacheHandle](i)

	// A nil *cache.Cache must not become a non-nil interface.
	var rc service.RenderCache
	if cacheHandle.Cache != nil {
		rc = cacheHandle.Cache
	}

	return service.NewSignService(v, rc, cfg, log), nil
}
