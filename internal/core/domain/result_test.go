package domain

import "testing"

func TestResult(t *testing.T) {
	ok := Ok(42)
	if ok.IsFailure() {
		t.Fatalf("Ok is not a failure")
	}
	if ok.Value() != 42 {
		t.Fatalf("expected 42, got %d", ok.Value())
	}
	if ok.Message() != "" {
		t.Fatalf("success carries no message, got %q", ok.Message())
	}

	fail := Failure[int]("boom")
	if !fail.IsFailure() {
		t.Fatalf("Failure is a failure")
	}
	if fail.Message() != "boom" {
		t.Fatalf("expected boom, got %q", fail.Message())
	}
}
