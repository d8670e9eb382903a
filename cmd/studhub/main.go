package main

import (
	"context"
	"log"

	"studhub/internal/client/cli"
	"studhub/internal/client/config"
	"studhub/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.NewZapLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
