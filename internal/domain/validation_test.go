package domain

import "testing"

func TestValidationErrorErrNilWhenClean(t *testing.T) {
	verr := &ValidationError{}
	if err := verr.Err(); err != nil {
		t.Fatalf("expected nil for an empty validation error, got %v", err)
	}
}

func TestValidationErrorCollectsFields(t *testing.T) {
	verr := &ValidationError{}
	verr.Add("title", "is required")
	verr.Add("distance", "must be zero or more kilometers")

	err := verr.Err()
	if err == nil {
		t.Fatal("expected an error once fields are recorded")
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(verr.Fields))
	}
	if verr.Fields[0].Field != "title" || verr.Fields[1].Field != "distance" {
		t.Fatalf("fields recorded out of order: %+v", verr.Fields)
	}

	msg := err.Error()
	if msg != "validation failed: title: is required; distance: must be zero or more kilometers" {
		t.Fatalf("unexpected message: %q", msg)
	}
}
