package config

import (
	"time"

	"github.com/jroosing/hydrazone/internal/dns"
)

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `json:"level"             yaml:"level"`
	Structured       bool              `json:"structured"        yaml:"structured"`
	StructuredFormat string            `json:"structured_format" yaml:"structured_format"`
	IncludePID       bool              `json:"include_pid"       yaml:"include_pid"`
	ExtraFields      map[string]string `json:"extra_fields,omitempty" yaml:"extra_fields,omitempty"`
}

// APIConfig contains HTTP API settings.
//
// Note: APIKey is treated as a secret and is redacted by the config endpoint.
type APIConfig struct {
	Enabled   bool   `json:"enabled"           yaml:"enabled"`
	Host      string `json:"host"              yaml:"host"`
	Port      int    `json:"port"              yaml:"port"`
	APIKey    string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	ReusePort bool   `json:"reuse_port"        yaml:"reuse_port"`
}

// DatabaseConfig locates the check journal. An empty path disables it.
type DatabaseConfig struct {
	Path string `json:"path" yaml:"path"`
}

// ParserConfig holds the values used when turning parsed rows into
// resource records, and the input limits of the API.
type ParserConfig struct {
	// Origin qualifies relative names, e.g. "example.com.".
	Origin string `json:"origin" yaml:"origin"`

	DefaultTTL    time.Duration `json:"-"           yaml:"-"`
	DefaultTTLRaw string        `json:"default_ttl" yaml:"default_ttl"` // e.g. "1h"

	DefaultClass    dns.RecordClass `json:"-"             yaml:"-"`
	DefaultClassRaw string          `json:"default_class" yaml:"default_class"`

	// MaxLineLength caps a single row submitted over the API, in bytes.
	MaxLineLength int `json:"max_line_length" yaml:"max_line_length"`
	// MaxBatchSize caps the number of rows in one batch request.
	MaxBatchSize int `json:"max_batch_size" yaml:"max_batch_size"`
}

// Config is the root configuration structure.
type Config struct {
	Logging  LoggingConfig  `json:"logging"  yaml:"logging"`
	API      APIConfig      `json:"api"      yaml:"api"`
	Database DatabaseConfig `json:"database" yaml:"database"`
	Parser   ParserConfig   `json:"parser"   yaml:"parser"`
}
