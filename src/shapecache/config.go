package shapecache

import "github.com/seuros/gopher-shapes/src/logging"

// Config holds configuration options for a Cache
type Config struct {
	// Logger receives registration and removal events. Defaults to a NoOpLogger.
	Logger logging.Logger

	// Observability holds telemetry configuration
	Observability *ObservabilityConfig
}

// DefaultConfig returns a Config with a silent logger and metrics enabled
// against the global meter provider.
func DefaultConfig() *Config {
	return &Config{
		Logger:        &logging.NoOpLogger{},
		Observability: DefaultObservabilityConfig(),
	}
}
