package core

import (
	stdcontext "context"

	"github.com/halbind/halbind/config"
	halcontext "github.com/halbind/halbind/context"
	"github.com/halbind/halbind/fetcher"
	providerhttp "github.com/halbind/halbind/internal/providers/server/http"
	"github.com/halbind/halbind/orchestrator"
)

func NewContextService(bootstrap BootstrapConfig) config.ContextService {
	return &halcontext.DefaultContextManager{CatalogPath: bootstrap.ContextCatalogPath}
}

// NewHalbindContext resolves the selected configuration context and wires
// the gateway, fetcher, and orchestrator for it.
func NewHalbindContext(ctx stdcontext.Context, bootstrap BootstrapConfig, selection config.ContextSelection) (*HalbindContext, error) {
	contexts := NewContextService(bootstrap)

	cfg, err := contexts.ResolveContext(ctx, selection)
	if err != nil {
		return nil, err
	}

	gateway, err := providerhttp.NewHTTPResourceServerGateway(cfg.API)
	if err != nil {
		return nil, err
	}

	fetch := fetcher.New(gateway, fetcher.NewCache())

	return &HalbindContext{
		Config:         cfg,
		Contexts:       contexts,
		ResourceServer: gateway,
		Fetcher:        fetch,
		Orchestrator: &orchestrator.DefaultOrchestrator{
			Fetcher:        fetch,
			ProfileBaseURL: cfg.API.EffectiveProfileBaseURL(),
		},
	}, nil
}
