package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/halbind/halbind/faults"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil_error", err: nil, want: 0},
		{name: "plain_error", err: errors.New("boom"), want: 1},
		{name: "validation", err: faults.NewTypedError(faults.ValidationError, "bad input", nil), want: 2},
		{name: "metadata", err: faults.NewTypedError(faults.MetadataError, "bad page metadata", nil), want: 2},
		{name: "not_found", err: faults.NewTypedError(faults.NotFoundError, "missing", nil), want: 3},
		{name: "auth", err: faults.NewTypedError(faults.AuthError, "denied", nil), want: 4},
		{name: "parse", err: faults.NewTypedError(faults.ParseError, "bad body", nil), want: 5},
		{name: "transport", err: faults.NewTypedError(faults.TransportError, "timeout", nil), want: 6},
		{name: "internal", err: faults.NewTypedError(faults.InternalError, "bug", nil), want: 1},
		{
			name: "wrapped_typed_error",
			err:  fmt.Errorf("hydrate page: %w", faults.NewTypedError(faults.NotFoundError, "missing", nil)),
			want: 3,
		},
	}

	for _, current := range cases {
		t.Run(current.name, func(t *testing.T) {
			t.Parallel()

			if got := ExitCodeForError(current.err); got != current.want {
				t.Fatalf("ExitCodeForError() = %d, want %d", got, current.want)
			}
		})
	}
}
