package main

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,required=true"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	UploadRootDir  string `env:"UPLOAD_ROOT_DIR,required=true"`

	MaxFileSizeBytes    int64  `env:"MAX_FILE_SIZE_BYTES,required=true"`
	AllowedContentTypes string `env:"ALLOWED_CONTENT_TYPES,required=true"`

	SessionTimeout time.Duration `env:"SESSION_TIMEOUT,default=1h"`
	SweepInterval  time.Duration `env:"SWEEP_INTERVAL,default=1h"`
	MetricInterval time.Duration `env:"METRIC_INTERVAL,default=30s"`

	IngestBufferSize int `env:"INGEST_BUFFER_SIZE,default=256"`
	// DebugPort 0 disables the debug HTTP server.
	DebugPort int `env:"DEBUG_PORT,default=0"`
}

// ContentTypes splits the comma-separated allow-list, dropping blanks.
func (c Config) ContentTypes() []string {
	parts := strings.Split(c.AllowedContentTypes, ",")
	return lo.FilterMap(parts, func(p string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(p)
		return trimmed, trimmed != ""
	})
}
