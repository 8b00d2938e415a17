package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userconsole/internal/client/cli"
	"github.com/dmitrijs2005/userconsole/internal/client/config"
	"github.com/dmitrijs2005/userconsole/internal/logging"
)

func main() {

	cfg, err := config.LoadConfig(os.Args[1:], nil)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.New(cfg.LogLevel, os.Stderr)

	app, err := cli.NewHTTPApp(cfg, os.Stdin, os.Stdout, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
