// Package di provides dependency injection configuration for the Lucky Sign server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/listenupapp/luckysign/internal/config"
	"github.com/listenupapp/luckysign/internal/di/providers"
	"github.com/listenupapp/luckysign/internal/logger"
	"github.com/listenupapp/luckysign/internal/service"
	"github.com/listenupapp/luckysign/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
// args are the command line flags passed to config.Load.
func NewContainer(args []string) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ConfigProvider(args))
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Storage layer
	do.Provide(injector, providers.ProvideRenderCache)

	// Business services
	do.Provide(injector, providers.ProvideInstanceService)
	do.Provide(injector, providers.ProvideSignService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)
	do.Provide(injector, providers.ProvideMDNSService)

	return injector
}

// Services resolves everything except the network listeners. The CLI uses
// it to draw signs without starting a server.
func Services(injector do.Injector) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	if _, err := do.Invoke[*providers.RenderCacheHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*service.InstanceService](injector)
	_ = do.MustInvoke[*service.SignService](injector)
	return nil
}

// Bootstrap initializes all services and starts the HTTP server and the
// mDNS advertisement.
func Bootstrap(injector *do.RootScope) error {
	if err := Services(injector); err != nil {
		return err
	}

	// Server
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*providers.MDNSServiceHandle](injector); err != nil {
		return err
	}

	return nil
}
