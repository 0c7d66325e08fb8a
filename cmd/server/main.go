package main

import (
	"context"
	"log"

	"taskdeck/internal/server"
	"taskdeck/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app := server.NewApp(cfg)

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
