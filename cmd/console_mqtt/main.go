package main

import (
	"flag"
	"log"

	"github.com/relabs-tech/inertial_pipeline/internal/app"
	"github.com/relabs-tech/inertial_pipeline/internal/config"
)

func main() {
	configPath := flag.String("config", "./inertial_config.txt", "path to configuration file")
	flag.Parse()

	log.Println("starting inertial-pipeline console (MQTT subscriber)")

	// Load configuration
	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunConsoleMQTT(config.Get()); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
