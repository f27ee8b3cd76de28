package service_test

import (
	"os"
	"testing"

	"omr-studio/internal/config"
	"omr-studio/internal/logger"
)

func TestMain(m *testing.M) {
	// Services log through the global logger, so it must exist before
	// any test runs. Development settings keep the output readable.
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "development"}); err != nil {
		panic("Failed to initialize logger for tests: " + err.Error())
	}

	exitVal := m.Run()

	_ = logger.Sync()
	os.Exit(exitVal)
}
