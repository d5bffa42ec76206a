package secrets

import (
	"strings"
	"testing"
)

func TestStoreFetchRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Store("openai", "sk-test-123"); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, err := Fetch("openai")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if got != "sk-test-123" {
		t.Fatalf("Fetch = %q, want sk-test-123", got)
	}
}

func TestFetchMissingSecret(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if _, err := Fetch("openai"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("Fetch of missing secret err = %v, want not found", err)
	}
}

func TestDeleteRemovesSecret(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := Store("openai", "sk-test"); err != nil {
		t.Fatalf("Store: %v", err)
	}
	if err := Delete("openai"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := Fetch("openai"); err == nil {
		t.Fatal("Fetch after Delete succeeded, want error")
	}
}

func TestNameIsRequired(t *testing.T) {
	if err := Store("  ", "x"); err == nil {
		t.Fatal("Store with blank name succeeded")
	}
	if _, err := Fetch(""); err == nil {
		t.Fatal("Fetch with blank name succeeded")
	}
}
