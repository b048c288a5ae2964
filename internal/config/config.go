// Package config loads the TOML configuration recognized by the grammar
// compiler's detector and compile service.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pellham/nlgram/internal/gerr"
)

// DefaultSymsLimit is the recommended per-path symbol budget.
const DefaultSymsLimit = 14

// DetectorConfig holds the options recognized by the ambiguity detector.
type DetectorConfig struct {
	// SymsLimit is the per-path symbol budget; larger is more exhaustive
	// and slower. Must be >= 1.
	SymsLimit int `toml:"syms_limit"`

	// FindAll selects between one witness per rule pair (false) and every
	// distinct witness (true).
	FindAll bool `toml:"find_all"`

	// UseTestRules replaces the authored grammar with the built-in
	// ambiguity fixtures for self-test mode.
	UseTestRules bool `toml:"use_test_rules"`

	// NoOutput suppresses witness printing (benchmark mode).
	NoOutput bool `toml:"no_output"`
}

// ServiceConfig holds settings for the compile-as-a-service HTTP server
// (cmd/gramsvc, server/).
type ServiceConfig struct {
	ListenAddr string `toml:"listen_addr"`
	JWTSecret  string `toml:"jwt_secret"`
	SQLiteDSN  string `toml:"sqlite_dsn"`
}

// Config is the full on-disk configuration document.
type Config struct {
	Detector DetectorConfig `toml:"detector"`
	Service  ServiceConfig  `toml:"service"`
}

// Default returns a Config with the recommended detector defaults and no
// service configuration.
func Default() Config {
	return Config{
		Detector: DetectorConfig{
			SymsLimit: DefaultSymsLimit,
			FindAll:   false,
		},
	}
}

// Load reads and validates a TOML configuration file. Missing fields
// fall back to Default's values; an unrecognized or malformed file is a
// fatal configuration error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, gerr.Wrap(gerr.BadConfig, err, "could not load config %q", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, gerr.New(gerr.BadConfig, "unrecognized keys in config %q: %v", path, undecoded)
	}
	if err := cfg.Detector.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the detector configuration is usable.
func (c DetectorConfig) Validate() error {
	if c.SymsLimit < 1 {
		return gerr.New(gerr.BadConfig, "symsLimit must be >= 1, got %d", c.SymsLimit)
	}
	return nil
}
