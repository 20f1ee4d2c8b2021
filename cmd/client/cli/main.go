package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/microbank-cli/internal/client/cli"
	"github.com/dmitrijs2005/microbank-cli/internal/client/config"
)

func main() {

	cfg := config.LoadConfig()

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
