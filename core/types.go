package core

import (
	"github.com/halbind/halbind/config"
	"github.com/halbind/halbind/fetcher"
	"github.com/halbind/halbind/orchestrator"
	"github.com/halbind/halbind/server"
)

// HalbindContext is the wired object graph for one selected configuration
// context.
type HalbindContext struct {
	Config         config.Context
	Contexts       config.ContextService
	ResourceServer server.ResourceServer
	Fetcher        *fetcher.Fetcher
	Orchestrator   orchestrator.Orchestrator
}

type BootstrapConfig struct {
	ContextCatalogPath string
}
