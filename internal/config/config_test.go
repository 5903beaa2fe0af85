package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jroosing/hydrazone/internal/dns"
)

func TestResolveConfigPath(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		envValue string
		want     string
	}{
		{"flag takes precedence", "/path/from/flag", "/path/from/env", "/path/from/flag"},
		{"env when no flag", "", "/path/from/env", "/path/from/env"},
		{"empty when neither", "", "", ""},
		{"whitespace flag", "  ", "/path/from/env", "/path/from/env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigPath, tt.envValue)
			got := ResolveConfigPath(tt.flag)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.API.Host)
	}
	if cfg.API.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.API.Port)
	}
	if !cfg.API.Enabled {
		t.Error("expected API enabled")
	}
	if cfg.Database.Path != "hydrazone.db" {
		t.Errorf("unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Parser.DefaultTTL != time.Hour {
		t.Errorf("expected default TTL 1h, got %s", cfg.Parser.DefaultTTL)
	}
	if cfg.Parser.DefaultClass != dns.ClassIN {
		t.Errorf("expected default class IN, got %s", cfg.Parser.DefaultClass)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("expected log level INFO, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	content := `
api:
  host: "127.0.0.1"
  port: 9090
  api_key: "secret"
  reuse_port: true

database:
  path: "checks.db"

parser:
  origin: "example.com."
  default_ttl: "300"
  default_class: "ch"
  max_line_length: 512

logging:
  level: "debug"
  structured: true
  structured_format: "text"
`
	path := filepath.Join(t.TempDir(), "hydrazone.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Host != "127.0.0.1" || cfg.API.Port != 9090 {
		t.Errorf("unexpected api address %s:%d", cfg.API.Host, cfg.API.Port)
	}
	if cfg.API.APIKey != "secret" || !cfg.API.ReusePort {
		t.Errorf("unexpected api settings: %+v", cfg.API)
	}
	if cfg.Database.Path != "checks.db" {
		t.Errorf("expected checks.db, got %s", cfg.Database.Path)
	}
	if cfg.Parser.Origin != "example.com." {
		t.Errorf("expected origin example.com., got %s", cfg.Parser.Origin)
	}
	if cfg.Parser.DefaultTTL != 300*time.Second {
		t.Errorf("expected TTL 300s, got %s", cfg.Parser.DefaultTTL)
	}
	if cfg.Parser.DefaultClass != dns.ClassCH {
		t.Errorf("expected class CH, got %s", cfg.Parser.DefaultClass)
	}
	if cfg.Parser.MaxLineLength != 512 {
		t.Errorf("expected max line length 512, got %d", cfg.Parser.MaxLineLength)
	}
	if cfg.Parser.MaxBatchSize != 1000 {
		t.Errorf("expected default batch size 1000, got %d", cfg.Parser.MaxBatchSize)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected log level DEBUG, got %s", cfg.Logging.Level)
	}
	if !cfg.Logging.Structured || cfg.Logging.StructuredFormat != "text" {
		t.Errorf("unexpected logging settings: %+v", cfg.Logging)
	}
}

func TestLoadInvalidPath(t *testing.T) {
	_, err := Load("/nonexistent/path/to/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("api:\n  port: [invalid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidateInvalidPort(t *testing.T) {
	cfg := Default()
	cfg.API.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid port")
	}

	cfg.API.Enabled = false
	if err := cfg.Validate(); err != nil {
		t.Errorf("port should not matter with the API disabled: %v", err)
	}
}

func TestValidateDefaultClass(t *testing.T) {
	cfg := Default()
	cfg.Parser.DefaultClassRaw = "XX"
	err := cfg.Validate()
	if !errors.Is(err, dns.ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass, got %v", err)
	}
}

func TestParseTTL(t *testing.T) {
	tests := []struct {
		raw     string
		want    time.Duration
		wantErr bool
	}{
		{"", time.Hour, false},
		{"0", 0, false},
		{"86400", 24 * time.Hour, false},
		{"1h30m", 90 * time.Minute, false},
		{"1.5s", 0, true},
		{"-5s", 0, true},
		{"1d", 0, true},
		{"2000000h", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseTTL(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTTL(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseTTL(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HYDRAZONE_API_HOST", "192.168.1.1")
	t.Setenv("HYDRAZONE_API_PORT", "8053")
	t.Setenv("HYDRAZONE_API_KEY", "k")
	t.Setenv("HYDRAZONE_API_ENABLED", "no")
	t.Setenv("HYDRAZONE_DB_PATH", "")
	t.Setenv("HYDRAZONE_ORIGIN", "example.org.")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Host != "192.168.1.1" {
		t.Errorf("expected host 192.168.1.1, got %s", cfg.API.Host)
	}
	if cfg.API.Port != 8053 {
		t.Errorf("expected port 8053, got %d", cfg.API.Port)
	}
	if cfg.API.APIKey != "k" {
		t.Errorf("expected api key override")
	}
	if cfg.API.Enabled {
		t.Error("expected API disabled")
	}
	if cfg.Database.Path != "" {
		t.Errorf("expected journal disabled, got path %q", cfg.Database.Path)
	}
	if cfg.Parser.Origin != "example.org." {
		t.Errorf("expected origin example.org., got %s", cfg.Parser.Origin)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("expected log level DEBUG, got %s", cfg.Logging.Level)
	}
}

func TestEnvBadPort(t *testing.T) {
	t.Setenv("HYDRAZONE_API_PORT", "http")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"yes", false, true},
		{"y", false, true},
		{"on", false, true},
		{"TRUE", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"n", true, false},
		{"off", true, false},
		{"FALSE", true, false},
		{"invalid", true, true},
		{"invalid", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := envBool(tt.raw, tt.def)
			if got != tt.want {
				t.Errorf("envBool(%q, %v) = %v, want %v", tt.raw, tt.def, got, tt.want)
			}
		})
	}
}

func TestParserFallback(t *testing.T) {
	cfg := Default()
	cfg.Parser.Origin = "example.com."
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	fb := cfg.Parser.Fallback("www")
	if fb.Origin != "example.com." || fb.Name != "www" || fb.TTL != time.Hour || fb.Class != dns.ClassIN {
		t.Errorf("unexpected fallback: %+v", fb)
	}
}
