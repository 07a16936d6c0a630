package common

import (
	"github.com/halbind/halbind/config"
	"github.com/halbind/halbind/core"
)

// CommandDependencies is what every command group receives: the context
// catalog service plus the bootstrap settings used to wire an API context
// on demand.
type CommandDependencies struct {
	Contexts  config.ContextService
	Bootstrap core.BootstrapConfig
}
