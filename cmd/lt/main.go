package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"lifetrack/internal/api"
	"lifetrack/internal/auth"
	"lifetrack/internal/chat"
	"lifetrack/internal/cli"
	"lifetrack/internal/config"
	"lifetrack/internal/errors"
	"lifetrack/internal/repository"
)

func main() {
	// A missing .env file is fine; environment variables still apply.
	_ = godotenv.Load()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := config.CreateStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ledgerRepo := repository.NewLedgerRepository(store)
	taskRepo := repository.NewTaskRepository(store)

	apiInstance, err := api.New(ledgerRepo, taskRepo)
	if err != nil {
		// Corrupt or unreadable state starts the session empty rather than
		// refusing to run.
		fmt.Fprintf(os.Stderr, "Warning: %s\n", errors.GetUserMessage(err))
	}

	gate := auth.NewGate(store, cfg.Auth.PIN)
	assistant := chat.New(cfg.Chat.ReplyDelay)

	app := cli.NewApp(apiInstance, gate, assistant, cfg)
	if err := app.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
