package main

import (
	"github.com/oliverftrep03/La-Penada-Real/internal/config"
	"github.com/oliverftrep03/La-Penada-Real/internal/logger"
)

// initConsoleLogger installs a stdout-only logger, used before the log
// directory is known to be writable and by the memory backend in tests.
func initConsoleLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))
}
