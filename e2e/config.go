package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_CHUNK_SIZE controls how the scenario payloads are split.
	ChunkSize int `envconfig:"E2E_CHUNK_SIZE" default:"64"`
	// E2E_MAX_FILE_SIZE_BYTES is the policy ceiling the engine is started with.
	MaxFileSizeBytes int64 `envconfig:"E2E_MAX_FILE_SIZE_BYTES" default:"1048576"`
	// E2E_SESSION_TIMEOUT_MS makes abandoned-session scenarios fast.
	SessionTimeoutMs int `envconfig:"E2E_SESSION_TIMEOUT_MS" default:"200"`
	SweepIntervalMs  int `envconfig:"E2E_SWEEP_INTERVAL_MS" default:"50"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
