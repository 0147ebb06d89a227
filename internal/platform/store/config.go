package store

import "time"

// Config aggregates per backend configuration
type Config struct {
	// AppName is reported to the servers as application name / client info
	AppName string
	// Version is reported alongside AppName
	Version string

	PG PGConfig
	CH CHConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	ConnectRetries int           // 0 means 10
	PingTimeout    time.Duration // 0 means 3s
}

// CHConfig configures clickhouse connectivity
type CHConfig struct {
	Enabled     bool
	URL         string
	DialTimeout time.Duration
}
