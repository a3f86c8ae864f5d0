package config

import (
	"fmt"
	"os"
	"time"

	"github.com/linguapersonal/linguabot.git/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig   `mapstructure:"app" validate:"required"`
	API      APIConfig   `mapstructure:"api" validate:"required"`
	Store    StoreConfig `mapstructure:"store" validate:"required"`
	BotToken string      `mapstructure:"bot_token" validate:"required"`
	Env      string      `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type APIConfig struct {
	BaseURL    string `mapstructure:"base_url" validate:"required,url"`
	TargetLang string `mapstructure:"target_lang" validate:"required"`
	NativeLang string `mapstructure:"native_lang" validate:"required"`
	TTSEnabled bool   `mapstructure:"tts_enabled"`
}

type StoreConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("bot_token", "BOT_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind BOT_TOKEN: %w", err)
	}
	if err := v.BindEnv("api.base_url", "API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind API_BASE_URL: %w", err)
	}
	if err := v.BindEnv("api.target_lang", "API_TARGET_LANG"); err != nil {
		return nil, fmt.Errorf("failed to bind API_TARGET_LANG: %w", err)
	}
	if err := v.BindEnv("api.native_lang", "API_NATIVE_LANG"); err != nil {
		return nil, fmt.Errorf("failed to bind API_NATIVE_LANG: %w", err)
	}
	if err := v.BindEnv("api.tts_enabled", "API_TTS_ENABLED"); err != nil {
		return nil, fmt.Errorf("failed to bind API_TTS_ENABLED: %w", err)
	}
	if err := v.BindEnv("store.path", "STORE_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind STORE_PATH: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
