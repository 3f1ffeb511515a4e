package main

import (
	"flag"
	"log"

	"tasklist-web/internal/config"
	"tasklist-web/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	if err := srv.Start(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
