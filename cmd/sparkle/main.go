package main

import (
	"context"
	"log"

	"github.com/mkravets/sparkle/internal/cli"
	"github.com/mkravets/sparkle/internal/config"
)

func main() {

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())

}
