package config

import (
	"context"
	"testing"
)

func TestResolveOnePassesPlainValuesThrough(t *testing.T) {
	got, err := resolveOne(context.Background(), "postgres://plain", nil)
	if err != nil || got != "postgres://plain" {
		t.Fatalf("got (%q, %v)", got, err)
	}
}

func TestResolveOneRejectsReferencesWithoutClient(t *testing.T) {
	if _, err := resolveOne(context.Background(), "vault:secret/summit#dsn", nil); err == nil {
		t.Fatal("vault reference without a client must fail")
	}
}

func TestResolveOneRejectsMalformedReferences(t *testing.T) {
	for _, ref := range []string{"vault:", "vault:no-key", "vault:#key", "vault:path#"} {
		if _, err := resolveOne(context.Background(), ref, nil); err == nil {
			t.Fatalf("%q must be rejected", ref)
		}
	}
}
