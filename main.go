package main

import (
	"log"

	"github.com/joho/godotenv"

	"marksheet/internal/config"
	"marksheet/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server, err := ui.NewServer(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Printf("Starting Marksheet Processor on http://localhost:%s", cfg.Server.Port)
	log.Fatal(server.Start())
}
