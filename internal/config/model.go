// internal/config/model.go
//
// Typed configuration model for the summit site.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   - optional `conf/.env`                     – dotenv values,
//   - `conf/global.yaml`                       – primary static file,
//   - `SUMMIT_`-prefixed environment overrides – highest precedence.
//
// Any value whose string begins with the prefix `vault:` is resolved
// through the Vault client after unmarshalling, so consumers only ever
// see plain strings.
//
// Notes
// -----
//   - Struct tags use `koanf:"…"`, not `yaml:"…"`; Koanf ignores `yaml`
//     tags unless configured otherwise.
//   - The `Paths` block is filled at runtime; YAML must not try to set it.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Store section
//

// Store holds the two Postgres DSNs.  Public read endpoints use `DSN`
// (restricted role); admin endpoints and the notification listener use
// `AdminDSN` (elevated role).  Either may be a `vault:` reference.
//
// Both fall back to local development defaults when absent, with a loud
// warning, so a fresh checkout runs against a local database without any
// configuration at all.
type Store struct {
	DSN      string `koanf:"dsn"`
	AdminDSN string `koanf:"admin_dsn"`
}

//
// Admin section
//

// Admin configures the editor surface.  `Key` gates /admin/api; it is an
// access gate against casual misuse, not a substitute for putting the
// admin host behind real authentication.
type Admin struct {
	Key string `koanf:"key" validate:"required"`
}

//
// Log section
//

// Log holds logging tunables.
type Log struct {
	Level string `koanf:"level"` // debug|info|warn|error; empty means info
	Tee   bool   `koanf:"tee"`   // also write colorized output to stdout
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.  The loader
// discovers `Root` (repo root or SUMMIT_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // SUMMIT_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP  HTTP  `koanf:"http"`
	Store Store `koanf:"store"`
	Admin Admin `koanf:"admin"`
	Log   Log   `koanf:"log"`
	Paths Paths `koanf:"-"` // not loaded from config files
}
