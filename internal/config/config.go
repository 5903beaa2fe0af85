// Package config provides configuration types, loading and validation for
// HydraZone.
//
// Configuration is read from an optional YAML file over built-in defaults,
// then environment overrides are applied and the result is validated.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jroosing/hydrazone/internal/dns"
	"github.com/jroosing/hydrazone/internal/zone"
)

// EnvConfigPath names the environment variable consulted by ResolveConfigPath.
const EnvConfigPath = "HYDRAZONE_CONFIG"

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:            "INFO",
			StructuredFormat: "json",
		},
		API: APIConfig{
			Enabled: true,
			Host:    "0.0.0.0",
			Port:    8080,
		},
		Database: DatabaseConfig{
			Path: "hydrazone.db",
		},
		Parser: ParserConfig{
			DefaultTTLRaw:   "1h",
			DefaultClassRaw: "IN",
			MaxLineLength:   4096,
			MaxBatchSize:    1000,
		},
	}
}

// ResolveConfigPath returns the config file path from the flag value, or
// from HYDRAZONE_CONFIG when the flag is blank.
func ResolveConfigPath(flagValue string) string {
	if p := strings.TrimSpace(flagValue); p != "" {
		return p
	}
	return strings.TrimSpace(os.Getenv(EnvConfigPath))
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	if v := os.Getenv("HYDRAZONE_API_HOST"); v != "" {
		cfg.API.Host = v
	}
	if v := os.Getenv("HYDRAZONE_API_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HYDRAZONE_API_PORT: %w", err)
		}
		cfg.API.Port = port
	}
	if v := os.Getenv("HYDRAZONE_API_KEY"); v != "" {
		cfg.API.APIKey = v
	}
	cfg.API.Enabled = envBool(os.Getenv("HYDRAZONE_API_ENABLED"), cfg.API.Enabled)
	if v, ok := os.LookupEnv("HYDRAZONE_DB_PATH"); ok {
		cfg.Database.Path = v
	}
	if v := os.Getenv("HYDRAZONE_ORIGIN"); v != "" {
		cfg.Parser.Origin = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// envBool interprets common truthy and falsy spellings, returning def for
// anything else.
func envBool(raw string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize API
	if cfg.API.Host == "" {
		cfg.API.Host = "0.0.0.0"
	}
	if cfg.API.Enabled {
		if cfg.API.Port <= 0 || cfg.API.Port > 65535 {
			return errors.New("api.port must be 1..65535")
		}
	}

	// Parser defaults
	ttl, err := parseTTL(cfg.Parser.DefaultTTLRaw)
	if err != nil {
		return err
	}
	cfg.Parser.DefaultTTL = ttl

	if cfg.Parser.DefaultClassRaw == "" {
		cfg.Parser.DefaultClassRaw = "IN"
	}
	class, ok := dns.ParseClass(strings.ToUpper(cfg.Parser.DefaultClassRaw))
	if !ok {
		return fmt.Errorf("parser.default_class: %w: %q", dns.ErrUnknownClass, cfg.Parser.DefaultClassRaw)
	}
	cfg.Parser.DefaultClass = class

	if cfg.Parser.MaxLineLength <= 0 {
		cfg.Parser.MaxLineLength = 4096
	}
	if cfg.Parser.MaxBatchSize <= 0 {
		cfg.Parser.MaxBatchSize = 1000
	}

	return nil
}

// parseTTL accepts a Go duration ("1h30m") or plain seconds ("3600").
func parseTTL(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Hour, nil
	}
	if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parser.default_ttl: %w", err)
	}
	if d < 0 || d%time.Second != 0 || d > time.Duration(^uint32(0))*time.Second {
		return 0, fmt.Errorf("parser.default_ttl must be whole seconds in 0..2^32-1, got %s", raw)
	}
	return d, nil
}

// Fallback returns the values applied to fields a row leaves out when it is
// converted to a resource record.
func (p ParserConfig) Fallback(name string) zone.Fallback {
	return zone.Fallback{
		Origin: p.Origin,
		Name:   name,
		TTL:    p.DefaultTTL,
		Class:  p.DefaultClass,
	}
}
