package orchestrator

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/halbind/halbind/binding"
	"github.com/halbind/halbind/debugctx"
	"github.com/halbind/halbind/faults"
	"github.com/halbind/halbind/render"
	"github.com/halbind/halbind/resolver"
)

var _ Orchestrator = (*DefaultOrchestrator)(nil)

// DefaultOrchestrator owns the lifecycle of one page hydration: it validates
// the page metadata, fetches the root resource, and drives the crawl until
// the request set is empty or no further expansion applies.
type DefaultOrchestrator struct {
	Fetcher        resolver.Fetcher
	ProfileBaseURL string
	Observer       Observer
}

func (o *DefaultOrchestrator) Hydrate(ctx context.Context, page PageMetadata, placeholders map[string][]binding.Target) (Result, error) {
	rootPath, err := o.rootPath(page)
	if err != nil {
		return Result{}, err
	}
	if o.Fetcher == nil {
		return Result{}, faults.NewTypedError(faults.InternalError, "fetcher is not configured", nil)
	}

	runID := uuid.NewString()
	ctx = debugctx.WithLabel(ctx, runID)
	debugctx.Printf(ctx, "hydrating %s %s with %d placeholder(s)", page.EntityType, page.EntityID, len(placeholders))

	requests := binding.NewRequestSet(placeholders)

	var mu sync.Mutex
	resolved := map[string]string{}
	renderer := render.New(o.ProfileBaseURL)
	renderer.OnResolved(func(key string, fragment string) {
		mu.Lock()
		resolved[key] = fragment
		mu.Unlock()
		if o.Observer != nil {
			o.Observer.PlaceholderResolved(key, fragment)
		}
	})

	crawl := resolver.New(o.Fetcher, renderer)

	root, err := o.Fetcher.Fetch(ctx, rootPath)
	if err != nil {
		return Result{RunID: runID}, err
	}

	crawl.Crawl(ctx, root, requests)
	crawlErr := crawl.Wait()

	result := Result{
		RunID:      runID,
		Resolved:   resolved,
		Unresolved: requests.Remaining(),
	}
	debugctx.Printf(ctx, "hydration finished: %d resolved, %d unresolved", len(result.Resolved), len(result.Unresolved))
	return result, crawlErr
}

// rootPath builds the root resource path for the page entity. An incomplete
// metadata triple is fatal before any network activity.
func (o *DefaultOrchestrator) rootPath(page PageMetadata) (string, error) {
	if strings.TrimSpace(page.APIKey) == "" {
		return "", faults.NewTypedError(faults.MetadataError, "page metadata is missing the API key", nil)
	}
	if strings.TrimSpace(page.EntityID) == "" {
		return "", faults.NewTypedError(faults.MetadataError, "page metadata is missing the entity id", nil)
	}

	var segment string
	switch page.EntityType {
	case EntityDomain:
		segment = "domains"
	case EntityGroup:
		segment = "groups"
	case EntityUser:
		segment = "users"
	default:
		return "", faults.NewTypedError(faults.MetadataError, "page metadata entity type must be domain, group, or user", nil)
	}

	return "/" + segment + "/" + url.PathEscape(page.EntityID), nil
}
