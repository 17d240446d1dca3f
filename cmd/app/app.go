package main

import (
	"os"

	"github.com/DRSN-tech/pokeshop/internal/app"
	config "github.com/DRSN-tech/pokeshop/internal/cfg"
	"github.com/DRSN-tech/pokeshop/pkg/logger"
)

//	@title			Pokeshop storefront API
//	@version		1.0
//	@description	Catalogue search, favourites and shopping bag of a single shopper.
//	@BasePath		/api/v1
func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	log = logger.NewSlogLoggerWithLevel(os.Stderr, logger.ParseLevel(cfg.LogLevel))

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
