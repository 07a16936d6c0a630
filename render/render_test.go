package render

import (
	"testing"

	"github.com/halbind/halbind/binding"
	"github.com/halbind/halbind/resource"
)

const profileBase = "https://www.w3.org/users/"

func TestFragment(t *testing.T) {
	t.Parallel()

	renderer := New(profileBase)

	cases := []struct {
		name     string
		value    resource.Value
		expected string
		rendered bool
	}{
		{"string_scalar", "Acme", "Acme", true},
		{"integer_scalar", int64(42), "42", true},
		{"scalar_is_escaped", "<b>Acme & Co</b>", "&lt;b&gt;Acme &amp; Co&lt;/b&gt;", true},
		{
			"link_object",
			map[string]any{"href": "https://acme.example", "name": "Acme"},
			`<a href="https://acme.example">Acme</a>`,
			true,
		},
		{
			"href_without_name_produces_nothing",
			map[string]any{"href": "https://acme.example", "rel": "next"},
			"",
			false,
		},
		{"boolean_produces_nothing", true, "", false},
		{
			"group_list",
			[]any{map[string]any{
				"name":   "G1",
				"_links": map[string]any{"homepage": map[string]any{"href": "H1"}},
			}},
			`<ul><li><a href="H1">G1</a></li></ul>`,
			true,
		},
		{
			"user_list_links_to_profile",
			[]any{map[string]any{"type": "user", "id": "u7", "name": "Ada"}},
			`<ul><li><a href="https://www.w3.org/users/u7">Ada</a></li></ul>`,
			true,
		},
		{
			"spec_list_uses_shortlink",
			[]any{map[string]any{"shortlink": "https://w3.example/s", "title": "Spec T"}},
			`<ul><li><a href="https://w3.example/s">Spec T</a></li></ul>`,
			true,
		},
		{
			"named_and_titled_render_as_text",
			[]any{
				map[string]any{"name": "Plain"},
				map[string]any{"title": "Headed"},
			},
			`<ul><li>Plain</li><li>Headed</li></ul>`,
			true,
		},
		{
			"unmatched_items_are_omitted",
			[]any{
				map[string]any{"rel": "next"},
				map[string]any{"name": "Kept"},
			},
			`<ul><li>Kept</li></ul>`,
			true,
		},
		{
			"photo_set_renders_best_size",
			[]any{
				map[string]any{"name": "tiny", "href": "t"},
				map[string]any{"name": "large", "href": "l"},
				map[string]any{"name": "thumbnail", "href": "h"},
			},
			`<img src="l">`,
			true,
		},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			fragment, ok := renderer.Fragment(testCase.value)
			if ok != testCase.rendered {
				t.Fatalf("expected rendered=%v, got %v (fragment %q)", testCase.rendered, ok, fragment)
			}
			if fragment != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, fragment)
			}
		})
	}
}

func TestListItemPriority(t *testing.T) {
	t.Parallel()

	renderer := New(profileBase)

	// Satisfies both the group shape and the plain-name shape; the group
	// homepage rule must win.
	item := map[string]any{
		"name":   "G1",
		"_links": map[string]any{"homepage": map[string]any{"href": "H1"}},
	}
	fragment, ok := renderer.Fragment([]any{item})
	if !ok {
		t.Fatalf("expected a fragment")
	}
	if expected := `<ul><li><a href="H1">G1</a></li></ul>`; fragment != expected {
		t.Fatalf("expected %q, got %q", expected, fragment)
	}
}

func TestPickPhoto(t *testing.T) {
	t.Parallel()

	t.Run("selects_highest_ranked_size", func(t *testing.T) {
		t.Parallel()

		href, ok := PickPhoto([]any{
			map[string]any{"name": "tiny", "href": "t"},
			map[string]any{"name": "large", "href": "l"},
			map[string]any{"name": "thumbnail", "href": "h"},
		})
		if !ok || href != "l" {
			t.Fatalf("expected large href, got %q %v", href, ok)
		}
	})

	t.Run("ignores_entries_missing_href_or_name", func(t *testing.T) {
		t.Parallel()

		href, ok := PickPhoto([]any{
			map[string]any{"name": "large"},
			map[string]any{"href": "x"},
			map[string]any{"name": "tiny", "href": "t"},
		})
		if !ok || href != "t" {
			t.Fatalf("expected tiny fallback, got %q %v", href, ok)
		}
	})

	t.Run("no_qualifying_entry_yields_nothing", func(t *testing.T) {
		t.Parallel()

		if _, ok := PickPhoto([]any{map[string]any{"name": "G1"}}); ok {
			t.Fatalf("expected no photo for non-size names")
		}
	})
}

func TestInject(t *testing.T) {
	t.Parallel()

	t.Run("applies_fragment_to_every_target", func(t *testing.T) {
		t.Parallel()

		first := binding.NewRecorder()
		second := binding.NewRecorder()
		requests := binding.NewRequestSet(map[string][]binding.Target{
			"name": {first, second},
		})

		renderer := New(profileBase)
		var resolvedKey, resolvedFragment string
		renderer.OnResolved(func(key string, fragment string) {
			resolvedKey, resolvedFragment = key, fragment
		})

		if !renderer.Inject("name", "Acme", requests) {
			t.Fatalf("expected injection to succeed")
		}

		for idx, target := range []*binding.Recorder{first, second} {
			if target.Fragment() != "Acme" || !target.Resolved() {
				t.Fatalf("target %d not resolved: %q %v", idx, target.Fragment(), target.Resolved())
			}
		}
		if resolvedKey != "name" || resolvedFragment != "Acme" {
			t.Fatalf("unexpected completion callback %q %q", resolvedKey, resolvedFragment)
		}
		if !requests.Empty() {
			t.Fatalf("expected key removed from set")
		}
	})

	t.Run("unrenderable_value_leaves_key_unresolved", func(t *testing.T) {
		t.Parallel()

		target := binding.NewRecorder()
		requests := binding.NewRequestSet(map[string][]binding.Target{
			"logo": {target},
		})

		renderer := New(profileBase)
		if renderer.Inject("logo", map[string]any{"href": "U", "rel": "x"}, requests) {
			t.Fatalf("expected injection to fail")
		}
		if target.Resolved() {
			t.Fatalf("target must stay unresolved")
		}
		if requests.Empty() {
			t.Fatalf("key must stay in the set")
		}
	})
}
