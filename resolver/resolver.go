package resolver

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/halbind/halbind/binding"
	"github.com/halbind/halbind/debugctx"
	"github.com/halbind/halbind/resource"
)

// Fetcher retrieves the flattened resource behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (resource.FlatResource, error)
}

// Injector renders an inline value for a key and, on success, resolves the
// key out of the request set.
type Injector interface {
	Inject(key string, value resource.Value, requests *binding.RequestSet) bool
}

// Resolver drives one hydration run's crawl. Link-stub fetches run on their
// own goroutines; the request set shrinks monotonically as keys resolve, and
// a failed branch never stops its siblings.
type Resolver struct {
	fetcher  Fetcher
	injector Injector
	group    errgroup.Group
}

func New(fetcher Fetcher, injector Injector) *Resolver {
	return &Resolver{fetcher: fetcher, injector: injector}
}

// Crawl visits every currently-unresolved key against the resource. Per key:
// an own field that is a link stub is fetched and the result crawled against
// the same live set; any other own field is injected inline; a prefix@rest
// key is renamed to rest and the crawl descends into the prefix sub-resource.
// Keys with no matching field stay unresolved, free to match a later
// resource.
//
// An own field always wins over prefix descent, even when the key contains @.
func (r *Resolver) Crawl(ctx context.Context, res resource.FlatResource, requests *binding.RequestSet) {
	for _, key := range requests.Keys() {
		value, ok := res[key]
		if ok {
			if href, isStub := resource.IsLinkStub(value); isStub {
				debugctx.Printf(ctx, "key %q is a link stub, following %s", key, href)
				r.fetchAndCrawl(ctx, href, requests)
				continue
			}
			r.injector.Inject(key, value, requests)
			continue
		}

		prefix, rest, hasPrefix := strings.Cut(key, "@")
		if !hasPrefix || prefix == "" || rest == "" {
			continue
		}

		debugctx.Printf(ctx, "descending into %q for key %q", prefix, rest)
		requests.Rename(key, rest)
		if sub, ok := resource.AsObject(res[prefix]); ok {
			r.Crawl(ctx, resource.FlatResource(sub), requests)
		}
	}
}

// Wait blocks until every spawned fetch branch finished and returns the
// first branch error, if any.
func (r *Resolver) Wait() error {
	return r.group.Wait()
}

func (r *Resolver) fetchAndCrawl(ctx context.Context, url string, requests *binding.RequestSet) {
	r.group.Go(func() error {
		flat, err := r.fetcher.Fetch(ctx, url)
		if err != nil {
			debugctx.Printf(ctx, "fetch of %s failed: %v", url, err)
			return err
		}
		r.Crawl(ctx, flat, requests)
		return nil
	})
}
