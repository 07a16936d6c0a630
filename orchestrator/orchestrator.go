package orchestrator

import (
	"context"

	"github.com/halbind/halbind/binding"
)

type EntityType string

const (
	EntityDomain EntityType = "domain"
	EntityGroup  EntityType = "group"
	EntityUser   EntityType = "user"
)

// PageMetadata is the resolved page identity handed in by the page-detection
// collaborator: which entity the page shows and the credential it was
// detected with. The triple must be complete before any network activity.
type PageMetadata struct {
	// APIKey is checked for presence only; the configured gateway appends
	// the wire credential to every request URL itself.
	APIKey     string
	EntityType EntityType
	EntityID   string
}

// Result summarizes one hydration run. Unresolved keys are not errors:
// fields the visited resources never carried degrade to untouched
// placeholders.
type Result struct {
	RunID      string
	Resolved   map[string]string
	Unresolved []string
}

// Observer receives completion signals as placeholders resolve.
type Observer interface {
	PlaceholderResolved(key string, fragment string)
}

type Orchestrator interface {
	Hydrate(ctx context.Context, page PageMetadata, placeholders map[string][]binding.Target) (Result, error)
}
