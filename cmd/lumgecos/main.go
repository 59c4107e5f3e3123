package main

import (
	"os"

	"github.com/hnrobert/lumgecos/cmd/lumgecos/cmd"
	"github.com/hnrobert/lumgecos/internal/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.Error("%v", err)
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
