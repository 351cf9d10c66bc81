package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"envlinks/internal/config"
	"envlinks/logger"
	"envlinks/pkg/cmd"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	if err := logger.InitLogger(cfg.LogMode, cfg.LogLevel); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	envlinksCmd, err := cmd.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := envlinksCmd.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
}
