package resource

// Value is any JSON-decoded payload value.
type Value = any

// FlatResource is a hypermedia resource after envelope flattening: the
// children of its links/embedded containers are hoisted to the top level and
// the containers themselves are discarded.
type FlatResource map[string]Value
