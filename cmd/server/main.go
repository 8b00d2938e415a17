package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userconsole/internal/logging"
	"github.com/dmitrijs2005/userconsole/internal/server"
	"github.com/dmitrijs2005/userconsole/internal/server/config"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:], nil)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	logger := logging.NewJSON(cfg.LogLevel, os.Stdout)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "server stopped", logging.Err(err))
		os.Exit(1)
	}

}
