package resource

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		value    Value
		expected Shape
	}{
		{"string_scalar", "Acme", ShapeScalar},
		{"integer_scalar", int64(42), ShapeScalar},
		{"float_scalar", 1.5, ShapeScalar},
		{"list", []any{"a"}, ShapeList},
		{"link_stub", map[string]any{"href": "U"}, ShapeLinkStub},
		{"link", map[string]any{"href": "U", "name": "N"}, ShapeLink},
		{
			"group",
			map[string]any{
				"name":   "G1",
				"_links": map[string]any{"homepage": map[string]any{"href": "H1"}},
			},
			ShapeGroup,
		},
		{
			"user",
			map[string]any{"type": "user", "id": "abc123", "name": "Ada"},
			ShapeUser,
		},
		{
			"user_with_numeric_id",
			map[string]any{"type": "user", "id": int64(9), "name": "Ada"},
			ShapeUser,
		},
		{"spec", map[string]any{"shortlink": "S", "title": "T"}, ShapeSpec},
		{"named", map[string]any{"name": "N"}, ShapeNamed},
		{"titled", map[string]any{"title": "T"}, ShapeTitled},
		{"href_without_name_is_unhandled", map[string]any{"href": "U", "rel": "next"}, ShapeUnknown},
		{"boolean_is_unhandled", true, ShapeUnknown},
		{"nil_is_unhandled", nil, ShapeUnknown},
	}

	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(testCase.value); got != testCase.expected {
				t.Fatalf("expected shape %v, got %v", testCase.expected, got)
			}
		})
	}
}

func TestClassifyPriority(t *testing.T) {
	t.Parallel()

	t.Run("group_shape_beats_plain_name", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{
			"name":   "G1",
			"_links": map[string]any{"homepage": map[string]any{"href": "H1"}},
		}
		if got := Classify(value); got != ShapeGroup {
			t.Fatalf("expected group shape, got %v", got)
		}
	})

	t.Run("user_shape_beats_plain_name", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{"type": "user", "id": "u1", "name": "Ada"}
		if got := Classify(value); got != ShapeUser {
			t.Fatalf("expected user shape, got %v", got)
		}
	})

	t.Run("spec_shape_beats_plain_title", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{"shortlink": "S", "title": "T"}
		if got := Classify(value); got != ShapeSpec {
			t.Fatalf("expected spec shape, got %v", got)
		}
	})

	t.Run("non_user_discriminator_falls_back_to_name", func(t *testing.T) {
		t.Parallel()

		value := map[string]any{"type": "robot", "id": "r1", "name": "Ada"}
		if got := Classify(value); got != ShapeNamed {
			t.Fatalf("expected named shape, got %v", got)
		}
	})
}
