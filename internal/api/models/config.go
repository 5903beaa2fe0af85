package models

import "github.com/jroosing/hydrazone/internal/config"

// APIConfigResponse is a redacted version of APIConfig (no api_key exposed).
type APIConfigResponse struct {
	Enabled      bool   `json:"enabled"`
	Host         string `json:"host"`
	Port         int    `json:"port"`
	ReusePort    bool   `json:"reuse_port"`
	AuthRequired bool   `json:"auth_required"`
}

// ParserConfigResponse shows the effective parser settings.
type ParserConfigResponse struct {
	Origin        string `json:"origin"`
	DefaultTTL    uint32 `json:"default_ttl"`
	DefaultClass  string `json:"default_class"`
	MaxLineLength int    `json:"max_line_length"`
	MaxBatchSize  int    `json:"max_batch_size"`
}

// ConfigResponse is the API response for GET /config.
type ConfigResponse struct {
	Logging  config.LoggingConfig  `json:"logging"`
	API      APIConfigResponse     `json:"api"`
	Database config.DatabaseConfig `json:"database"`
	Parser   ParserConfigResponse  `json:"parser"`
}
