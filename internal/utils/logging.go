package utils

import (
	"go.uber.org/zap"
)

// Logger is the process-wide logger, set up once at startup.
var Logger *zap.Logger

// InitLogger builds the production logger shared by every binary in this
// module. Logging is not optional, so a construction failure panics.
func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	Logger = logger.Named("career-cracker")
}

// GetLogger returns the shared logger, initializing it on first use so leaf
// code never sees a nil logger.
func GetLogger() *zap.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}
