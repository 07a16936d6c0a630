package resource

// Shape is the structural classification of a resolved value. Hypermedia
// payloads carry no declared types, so rendering dispatches on the shape a
// value happens to have; classification runs once per value and the constant
// order below is the match priority.
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeScalar
	ShapeLinkStub
	ShapeGroup
	ShapeUser
	ShapeSpec
	ShapeLink
	ShapeNamed
	ShapeTitled
	ShapeList
)

// userDiscriminator is the field value that marks an entity as a user record.
const userDiscriminator = "user"

// IsLinkStub reports whether the value is a link stub: an object whose only
// key is href. A stub means "fetch this URL to resolve the field".
func IsLinkStub(value Value) (string, bool) {
	fields, ok := AsObject(value)
	if !ok || len(fields) != 1 {
		return "", false
	}
	href, ok := fields["href"].(string)
	if !ok {
		return "", false
	}
	return href, true
}

// Classify maps a value onto its rendering shape.
func Classify(value Value) Shape {
	switch typed := value.(type) {
	case string, int64, float64:
		return ShapeScalar
	case []any:
		return ShapeList
	case map[string]any:
		return classifyObject(typed)
	case FlatResource:
		return classifyObject(typed)
	}
	return ShapeUnknown
}

func classifyObject(fields map[string]Value) Shape {
	if _, ok := IsLinkStub(fields); ok {
		return ShapeLinkStub
	}

	_, hasName := stringField(fields, "name")

	if hasName {
		if _, ok := GroupHomepage(fields); ok {
			return ShapeGroup
		}
		if discriminator, ok := stringField(fields, "type"); ok && discriminator == userDiscriminator {
			if _, ok := EntityID(fields); ok {
				return ShapeUser
			}
		}
	}

	_, hasTitle := stringField(fields, "title")
	if hasTitle {
		if _, ok := stringField(fields, "shortlink"); ok {
			return ShapeSpec
		}
	}

	if _, ok := stringField(fields, "href"); ok && hasName {
		return ShapeLink
	}
	if hasName {
		return ShapeNamed
	}
	if hasTitle {
		return ShapeTitled
	}
	return ShapeUnknown
}

// GroupHomepage extracts the homepage href of a group-shaped entity: the
// entity keeps its own _links container because list items are never
// flattened.
func GroupHomepage(fields map[string]Value) (string, bool) {
	links, ok := fields["_links"].(map[string]any)
	if !ok {
		if links, ok = fields["links"].(map[string]any); !ok {
			return "", false
		}
	}
	homepage, ok := links["homepage"].(map[string]any)
	if !ok {
		return "", false
	}
	href, ok := homepage["href"].(string)
	return href, ok
}

// EntityID returns the id field of an entity as its wire text. Identifiers
// arrive as strings or numbers depending on the endpoint.
func EntityID(fields map[string]Value) (string, bool) {
	switch typed := fields["id"].(type) {
	case string:
		return typed, typed != ""
	case int64:
		return formatInt(typed), true
	case float64:
		return formatFloat(typed), true
	}
	return "", false
}

func stringField(fields map[string]Value, key string) (string, bool) {
	text, ok := fields[key].(string)
	if !ok || text == "" {
		return "", false
	}
	return text, true
}
