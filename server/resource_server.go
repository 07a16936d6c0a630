package server

import (
	"context"

	"github.com/halbind/halbind/resource"
)

// ResourceServer is the transport boundary to the hypermedia API. The
// gateway owns URL resolution (credential and embed parameters) so cache
// keys can use the exact URL that goes on the wire.
type ResourceServer interface {
	ResolveURL(raw string) (string, error)
	Get(ctx context.Context, resolvedURL string) (resource.Value, error)
}

// ValueFilter is an optional capability used by CLI inspection commands to
// apply an ad-hoc jq expression to a fetched payload.
type ValueFilter interface {
	Filter(ctx context.Context, value resource.Value, expression string) (resource.Value, error)
}
