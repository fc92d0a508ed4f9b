package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App AppConfig
	API APIConfig
}

type AppConfig struct {
	Name    string
	Debug   bool
	LogPath string
}

type APIConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "flickdeck")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("API_BASE_URL", "http://localhost:8000")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)

	// A missing .env is fine; defaults and environment variables apply.
	if err := viper.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL:        viper.GetString("API_BASE_URL"),
			TimeoutSeconds: viper.GetInt("API_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}
