package resource

import "github.com/halbind/halbind/faults"

// envelopeKeys lists the hypermedia container keys whose children are hoisted
// to the top level during flattening. Order decides which container wins when
// two containers carry the same child key.
var envelopeKeys = []string{"links", "_links", "embedded", "_embedded"}

// Flatten hoists the children of every hypermedia envelope container to the
// top level of the resource and discards the containers. Children overwrite
// same-named top-level keys. Flattening an already-flat resource returns an
// equal resource.
func Flatten(value Value) (FlatResource, error) {
	fields, ok := AsObject(value)
	if !ok {
		return nil, faults.NewTypedError(faults.ValidationError, "resource payload must be a JSON object", nil)
	}

	flat := make(FlatResource, len(fields))
	for key, item := range fields {
		if isEnvelopeKey(key) {
			continue
		}
		flat[key] = item
	}

	for _, key := range envelopeKeys {
		children, ok := fields[key].(map[string]any)
		if !ok {
			continue
		}
		for childKey, childValue := range children {
			flat[childKey] = childValue
		}
	}

	return flat, nil
}

// Has reports whether the resource carries the field as its own key.
func (r FlatResource) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// AsObject reports the value as a string-keyed object when it is one.
func AsObject(value Value) (map[string]Value, bool) {
	switch typed := value.(type) {
	case FlatResource:
		return typed, true
	case map[string]any:
		return typed, true
	default:
		return nil, false
	}
}

func isEnvelopeKey(key string) bool {
	for _, envelope := range envelopeKeys {
		if key == envelope {
			return true
		}
	}
	return false
}
