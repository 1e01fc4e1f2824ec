package main

import (
	"Pong/core"
	"Pong/logger"
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := core.ReadProperties("./")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize! %v\n", err)
		return 1
	}

	logger.Log.Init(cfg.Log)
	defer logger.Log.Close()

	return core.Start(cfg)
}
