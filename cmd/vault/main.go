package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pumpkin2800/zarqon/internal/buildinfo"
	"github.com/pumpkin2800/zarqon/internal/logging"
	"github.com/pumpkin2800/zarqon/internal/vault/cli"
	"github.com/pumpkin2800/zarqon/internal/vault/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
