package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Slaterfr/Discord-Echo/internal/agent"
	"github.com/Slaterfr/Discord-Echo/internal/bot"
	"github.com/Slaterfr/Discord-Echo/internal/config"
	"github.com/Slaterfr/Discord-Echo/internal/llm"
	"github.com/Slaterfr/Discord-Echo/internal/logger"
	"github.com/Slaterfr/Discord-Echo/internal/lore"
	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	model, err := llm.New(llm.Config{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Fatal("failed to create llm", "error", err)
	}

	store, err := lore.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open lore database", "error", err)
	}
	defer store.Close()

	logger.Info("lore database ready", "path", cfg.DBPath)

	echo := agent.New(model, store, cfg.PersonaPath)

	b, err := bot.New(bot.Config{
		Provider:     cfg.Bot.Provider,
		Token:        cfg.Bot.Token,
		Curators:     cfg.Curators,
		ContextLimit: cfg.ContextLimit,
	}, echo, store)
	if err != nil {
		logger.Fatal("failed to create bot", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		cancel()
	}()

	logger.Info("starting bot", "provider", cfg.Bot.Provider, "llm", cfg.LLM.Provider)

	if err := b.Start(ctx); err != nil && err != context.Canceled {
		logger.Fatal("bot stopped", "error", err)
	}
}
