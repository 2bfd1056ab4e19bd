package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "conf"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "conf", "global.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SUMMIT_ROOT", root)
	return root
}

func TestLoadMergesLayers(t *testing.T) {
	root := writeYAML(t, `
http:
  listen_addr: ":9000"
store:
  dsn: "postgres://u:p@db/summit"
  admin_dsn: "postgres://a:p@db/summit"
admin:
  key: "secret"
`)
	// Env overlay beats YAML.
	t.Setenv("SUMMIT_HTTP__LISTEN_ADDR", ":9100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":9100" {
		t.Fatalf("listen_addr = %q, want env override", cfg.HTTP.ListenAddr)
	}
	if cfg.Store.DSN != "postgres://u:p@db/summit" {
		t.Fatalf("dsn = %q", cfg.Store.DSN)
	}
	if cfg.Paths.Root != root {
		t.Fatalf("root = %q, want %q", cfg.Paths.Root, root)
	}
	if Get() != cfg {
		t.Fatal("Load must cache the config for Get")
	}
}

func TestLoadFallsBackToDevDSNs(t *testing.T) {
	writeYAML(t, `
http:
  listen_addr: ":9000"
admin:
  key: "secret"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Store.DSN != devDSN || cfg.Store.AdminDSN != devAdminDSN {
		t.Fatalf("fallback DSNs not applied: %+v", cfg.Store)
	}
}

func TestLoadRejectsMissingAdminKey(t *testing.T) {
	writeYAML(t, `
http:
  listen_addr: ":9000"
`)

	if _, err := Load(); err == nil {
		t.Fatal("missing admin key must fail validation")
	}
}
