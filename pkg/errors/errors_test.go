package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeUnauthorized, http.StatusUnauthorized},
		{CodeForbidden, http.StatusForbidden},
		{CodeNotFound, http.StatusNotFound},
		{CodeConflict, http.StatusBadRequest},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBackToInternal(t *testing.T) {
	if got := MetadataFor(Code("NOPE")).HTTPStatus; got != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeDependency, cause, "load product")
	if !errors.Is(err, cause) {
		t.Fatal("expected cause to remain in the chain")
	}
	if As(err).Code() != CodeDependency {
		t.Fatalf("unexpected code %s", As(err).Code())
	}
}

func TestAsFindsNestedTypedError(t *testing.T) {
	inner := New(CodeNotFound, "wishlist item not found")
	wrapped := fmt.Errorf("handler: %w", inner)
	typed := As(wrapped)
	if typed == nil || typed.Code() != CodeNotFound {
		t.Fatalf("expected typed NOT_FOUND, got %v", typed)
	}
}

func TestRootMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(CodeInternal, cause, "query wishlist")
	if got := RootMessage(err); got != "connection refused" {
		t.Fatalf("unexpected root message %q", got)
	}
}

func TestChainOrder(t *testing.T) {
	cause := errors.New("inner")
	err := Wrap(CodeInternal, cause, "outer")
	chain := Chain(err)
	if len(chain) != 2 || chain[1] != "inner" {
		t.Fatalf("unexpected chain %v", chain)
	}
}
