package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = DefaultConfig()
	}

	if err := EnsureStore(cfg.StorePath, cfg.TemplatePath); err != nil {
		log.Printf("failed to prepare store: %v", err)
	}

	// a failed open leaves repo nil; every operation then reports
	// ErrStoreUnavailable instead of crashing the session
	repo, err := NewRepo(cfg.StorePath)
	if err != nil {
		log.Printf("failed to open store: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("failed to close store: %v", err)
		}
	}()

	state := LoadUIState(cfg.StorePath)
	app := NewApp(repo, cfg, state)

	if err := SetupCommands(app).Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
