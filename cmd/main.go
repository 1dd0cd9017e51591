package main

import (
	"github.com/VladPetriv/finance_tracker/config"
	"github.com/VladPetriv/finance_tracker/internal/app"
	"github.com/VladPetriv/finance_tracker/pkg/logger"
)

func main() {
	cfg := config.Get()

	logger := logger.New(logger.LoggergerOptions{
		LogLevel:        cfg.Logger.LogLevel,
		LogFile:         cfg.Logger.LogFilename,
		PrettyLogOutput: cfg.Logger.PrettyLogOutput,
		ServiceName:     "finance_tracker",
	})

	app.Run(cfg, logger)
}
