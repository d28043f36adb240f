package main

import (
	"os"

	"wealthtrack/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
