package render

import (
	"html"
	"strings"

	"github.com/halbind/halbind/binding"
	"github.com/halbind/halbind/resource"
)

// Renderer turns resolved values into HTML fragments and pushes them into
// the document targets bound to each placeholder.
type Renderer struct {
	profileBaseURL string
	onResolved     func(key string, fragment string)
}

func New(profileBaseURL string) *Renderer {
	return &Renderer{profileBaseURL: profileBaseURL}
}

// OnResolved registers a completion callback invoked once per resolved
// placeholder, after its targets received the fragment.
func (r *Renderer) OnResolved(callback func(key string, fragment string)) {
	r.onResolved = callback
}

// Inject renders the value and, when it produces a fragment, atomically
// resolves the key out of the request set and applies the fragment to every
// bound target. Values no rule covers leave the key unresolved.
func (r *Renderer) Inject(key string, value resource.Value, requests *binding.RequestSet) bool {
	fragment, ok := r.Fragment(value)
	if !ok {
		return false
	}

	targets, ok := requests.Resolve(key)
	if !ok {
		return false
	}
	for _, target := range targets {
		target.SetFragment(fragment)
		target.MarkResolved()
	}

	if r.onResolved != nil {
		r.onResolved(key, fragment)
	}
	return true
}

// Fragment renders a value by its shape. Scalars become escaped text, lists
// become a photo reference or an unordered list, and href+name objects
// become hyperlinks. An object carrying href without name produces nothing:
// there is no label to render, so the field stays unresolved.
func (r *Renderer) Fragment(value resource.Value) (string, bool) {
	switch resource.Classify(value) {
	case resource.ShapeScalar:
		text, _ := resource.ScalarText(value)
		return html.EscapeString(text), true
	case resource.ShapeList:
		items, _ := value.([]any)
		return r.renderList(items), true
	case resource.ShapeLink:
		fields, _ := resource.AsObject(value)
		href, _ := fields["href"].(string)
		name, _ := fields["name"].(string)
		return anchor(href, name), true
	}
	return "", false
}

func (r *Renderer) renderList(items []any) string {
	if href, ok := PickPhoto(items); ok {
		return `<img src="` + html.EscapeString(href) + `">`
	}

	var builder strings.Builder
	builder.WriteString("<ul>")
	for _, item := range items {
		fragment, ok := r.renderListItem(item)
		if !ok {
			continue
		}
		builder.WriteString("<li>")
		builder.WriteString(fragment)
		builder.WriteString("</li>")
	}
	builder.WriteString("</ul>")
	return builder.String()
}

// renderListItem applies the entity-shape priority: group homepage link,
// user profile link, spec shortlink, then plain name or title text. Items
// matching no shape are omitted from the list.
func (r *Renderer) renderListItem(item resource.Value) (string, bool) {
	fields, isObject := resource.AsObject(item)

	switch resource.Classify(item) {
	case resource.ShapeGroup:
		href, _ := resource.GroupHomepage(fields)
		name, _ := fields["name"].(string)
		return anchor(href, name), true
	case resource.ShapeUser:
		id, _ := resource.EntityID(fields)
		name, _ := fields["name"].(string)
		return anchor(r.profileBaseURL+id, name), true
	case resource.ShapeSpec:
		shortlink, _ := fields["shortlink"].(string)
		title, _ := fields["title"].(string)
		return anchor(shortlink, title), true
	case resource.ShapeLink, resource.ShapeNamed:
		if !isObject {
			return "", false
		}
		name, _ := fields["name"].(string)
		return html.EscapeString(name), true
	case resource.ShapeTitled:
		title, _ := fields["title"].(string)
		return html.EscapeString(title), true
	}
	return "", false
}

func anchor(href string, label string) string {
	return `<a href="` + html.EscapeString(href) + `">` + html.EscapeString(label) + `</a>`
}
