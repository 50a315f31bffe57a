package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestFieldBuildsValidationError(t *testing.T) {
	err := Field("quantity", "Quantity must be greater than 0.")
	if err.Kind != Validation {
		t.Fatalf("kind %v, want Validation", err.Kind)
	}
	if err.Error() != "Quantity must be greater than 0." {
		t.Fatalf("message %q", err.Error())
	}
	if got := err.Fields["quantity"]; len(got) != 1 || got[0] != "Quantity must be greater than 0." {
		t.Fatalf("fields %+v", err.Fields)
	}
}

func TestWithKindRetags(t *testing.T) {
	err := Field("dishId", "Dish does not exist.").WithKind(NotFound)
	if err.Kind != NotFound {
		t.Fatalf("kind %v, want NotFound", err.Kind)
	}
	if len(err.Fields["dishId"]) != 1 {
		t.Fatalf("fields lost on retag: %+v", err.Fields)
	}
}

func TestKindOfUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("placing order: %w", New(Conflict, "cart was modified concurrently"))
	k, ok := KindOf(wrapped)
	if !ok || k != Conflict {
		t.Fatalf("KindOf = (%v, %v), want (Conflict, true)", k, ok)
	}
	if !IsKind(wrapped, Conflict) {
		t.Fatal("IsKind missed wrapped Conflict")
	}
	if IsKind(wrapped, NotFound) {
		t.Fatal("IsKind matched the wrong kind")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if _, ok := KindOf(errors.New("boom")); ok {
		t.Fatal("plain error reported a kind")
	}
	if IsKind(nil, Validation) {
		t.Fatal("nil error reported a kind")
	}
}
