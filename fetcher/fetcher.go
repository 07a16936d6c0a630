package fetcher

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/halbind/halbind/debugctx"
	"github.com/halbind/halbind/resource"
	"github.com/halbind/halbind/server"
)

// Fetcher retrieves hypermedia resources: it resolves the request URL,
// serves repeats from the cache, and flattens the envelope of everything it
// fetches before the resource is seen by anyone else.
//
// Cache misses go through a singleflight group keyed by the resolved URL, so
// at most one request per distinct URL is ever in flight; concurrent misses
// for the same URL share the first caller's result.
type Fetcher struct {
	server server.ResourceServer
	cache  *Cache
	group  singleflight.Group
}

func New(srv server.ResourceServer, cache *Cache) *Fetcher {
	if cache == nil {
		cache = NewCache()
	}
	return &Fetcher{server: srv, cache: cache}
}

func (f *Fetcher) Cache() *Cache {
	return f.cache
}

// Fetch returns the flattened resource behind rawURL. Failed fetches are not
// cached; a later request for the same URL retries.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (resource.FlatResource, error) {
	resolved, err := f.server.ResolveURL(rawURL)
	if err != nil {
		return nil, err
	}

	if cached, ok := f.cache.Get(resolved); ok {
		debugctx.Printf(ctx, "cache hit for %s", resolved)
		return cached, nil
	}

	value, err, shared := f.group.Do(resolved, func() (any, error) {
		if cached, ok := f.cache.Get(resolved); ok {
			return cached, nil
		}

		payload, err := f.server.Get(ctx, resolved)
		if err != nil {
			return nil, err
		}

		flat, err := resource.Flatten(payload)
		if err != nil {
			return nil, err
		}

		f.cache.Put(resolved, flat)
		return flat, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		debugctx.Printf(ctx, "shared in-flight fetch for %s", resolved)
	}
	return value.(resource.FlatResource), nil
}
