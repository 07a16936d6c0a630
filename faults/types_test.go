package faults

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsCategory(t *testing.T) {
	t.Parallel()

	err := NewTypedError(MetadataError, "page metadata is incomplete", nil)
	if !IsCategory(err, MetadataError) {
		t.Fatalf("expected metadata category match")
	}
	if IsCategory(err, TransportError) {
		t.Fatalf("expected transport category mismatch")
	}

	wrapped := errors.New("wrap: " + err.Error())
	if IsCategory(wrapped, MetadataError) {
		t.Fatalf("plain wrapped string error must not match typed category")
	}

	joined := errors.Join(err, errors.New("other"))
	if !IsCategory(joined, MetadataError) {
		t.Fatalf("expected category match through errors.Join")
	}
}

func TestTypedErrorMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewTypedError(TransportError, "remote request failed", cause)
	if got, want := err.Error(), "remote request failed: connection refused"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to unwrap")
	}

	bare := NewTypedError(ParseError, "", nil)
	if got, want := bare.Error(), string(ParseError); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	wrapped := fmt.Errorf("hydrate: %w", err)
	if !IsCategory(wrapped, TransportError) {
		t.Fatalf("expected category match through fmt wrapping")
	}
}
