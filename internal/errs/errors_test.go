package errs

import (
	"errors"
	"testing"
)

func TestClassificationErrorIsMatchesMarker(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(ErrModel, "modelstore", "load", "checksum mismatch", cause)

	if !errors.Is(err, ErrModel) {
		t.Fatal("expected errors.Is to match ErrModel via marker")
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to match wrapped cause")
	}
	if errors.Is(err, ErrInput) {
		t.Fatal("did not expect match against unrelated sentinel")
	}
}

func TestClassificationErrorUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrModel, "modelstore", "save", "", cause)
	if errors.Unwrap(err) != cause {
		t.Fatal("expected Unwrap to return cause")
	}
}

func TestExplainExtractsStructuredFields(t *testing.T) {
	err := WrapCode(ErrRegistry, "categoryregistry", "register", CodeAlreadyExists, "canonical name collides", nil)
	details := Explain(err)
	if details.Code != CodeAlreadyExists {
		t.Fatalf("expected code %q, got %q", CodeAlreadyExists, details.Code)
	}
	if details.Component != "categoryregistry" {
		t.Fatalf("unexpected component %q", details.Component)
	}
}

func TestExplainHandlesPlainError(t *testing.T) {
	details := Explain(errors.New("generic failure"))
	if details.Message != "generic failure" {
		t.Fatalf("unexpected message %q", details.Message)
	}
	if details.Code != "" {
		t.Fatalf("expected empty code, got %q", details.Code)
	}
}

func TestCodeHelper(t *testing.T) {
	err := WrapCode(ErrModel, "modelstore", "load", CodeCorruptModel, "", nil)
	if Code(err) != CodeCorruptModel {
		t.Fatalf("expected %q, got %q", CodeCorruptModel, Code(err))
	}
	if Code(errors.New("plain")) != "" {
		t.Fatal("expected empty code for non-ClassificationError")
	}
}
