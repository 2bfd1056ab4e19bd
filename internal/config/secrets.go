// internal/config/secrets.go
//
// Vault reference resolution.
//
// Context
// -------
// Any secret-bearing config value may be written as
//
//	vault:<mount>/<path>#<key>
//
// instead of the literal secret.  `ResolveSecrets` rewrites those fields
// in place through the Vault client, so DSNs and the admin key can stay
// out of flat files and git history.  Plain values pass through
// untouched; deployments without Vault simply never use the prefix.

package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/primenumber-jp/datasummit-site/internal/vault"
)

// vaultPrefix marks a config value as a Vault reference.
const vaultPrefix = "vault:"

// secretTTL caches resolved values briefly so Reload() does not hammer
// Vault.
const secretTTL = 5 * time.Minute

// ResolveSecrets replaces every `vault:` reference in cfg with the value
// read from Vault.  It is a no-op when no field carries the prefix.
func ResolveSecrets(ctx context.Context, cfg *Config, cli *vault.Client) error {
	fields := []*string{
		&cfg.Store.DSN,
		&cfg.Store.AdminDSN,
		&cfg.Admin.Key,
	}
	for _, f := range fields {
		resolved, err := resolveOne(ctx, *f, cli)
		if err != nil {
			return err
		}
		*f = resolved
	}
	return nil
}

func resolveOne(ctx context.Context, val string, cli *vault.Client) (string, error) {
	if !strings.HasPrefix(val, vaultPrefix) {
		return val, nil
	}
	if cli == nil {
		return "", fmt.Errorf("config: %q requires a vault client", val)
	}

	ref := strings.TrimPrefix(val, vaultPrefix)
	path, key, ok := strings.Cut(ref, "#")
	if !ok || path == "" || key == "" {
		return "", fmt.Errorf("config: malformed vault reference %q, want vault:<mount>/<path>#<key>", val)
	}
	return cli.GetKV(ctx, path, key, secretTTL)
}
