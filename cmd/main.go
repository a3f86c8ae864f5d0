package main

import (
	"context"
	"log"

	"github.com/linguapersonal/linguabot.git/internal/bot"
	"github.com/linguapersonal/linguabot.git/internal/client"
	"github.com/linguapersonal/linguabot.git/internal/config"
	"github.com/linguapersonal/linguabot.git/internal/service"
	"github.com/linguapersonal/linguabot.git/internal/storage/cache"
	"github.com/linguapersonal/linguabot.git/internal/storage/tokenstore"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)

	db, err := tokenstore.Open(cfg.Store.Path)
	if err != nil {
		logger.Fatal("failed to open token store", zap.Error(err))
	}
	defer db.Close()

	tokens := tokenstore.NewStore(db)

	ctx := context.Background()
	clients, err := client.InitClients(ctx, cfg.API.BaseURL, cfg.App.Timeout, cfg.API.TTSEnabled)
	if err != nil {
		logger.Fatal("failed to init clients", zap.Error(err))
	}

	if err := clients.LinguaAPI.Health(ctx); err != nil {
		logger.Warn("lesson API is unreachable", zap.String("base_url", cfg.API.BaseURL), zap.Error(err))
	}

	services := service.InitServices(clients.LinguaAPI, tokens, cfg.API.TargetLang, cfg.API.NativeLang, logger)
	cache := cache.NewCache()

	var speech bot.SpeechSI
	if clients.SpeechAPI != nil {
		speech = clients.SpeechAPI
		defer clients.SpeechAPI.Close()
	}

	handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, cache, speech)
	if err != nil {
		logger.Fatal(err.Error())
		return
	}

	handler.Start()
}
