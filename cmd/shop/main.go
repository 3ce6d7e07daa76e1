package main

import (
	"log"

	"shop/internal/app/config"
	"shop/internal/pkg"
)

func main() {
	log.Println("App start")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	app := pkg.NewApp(cfg)
	app.RunApp()

	log.Println("App terminated")
}
