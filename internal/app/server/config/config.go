package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config - конфигурация заглушечного сервера для локальной разработки.
type Config struct {
	Env        string
	RunAddress string
	APIToken   string
	MaxUpload  int64
}

func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("app_env", EnvLocal)
	viper.SetDefault("run_address", ":8000")
	viper.SetDefault("max_upload_size", 10485760)

	config := Config{
		Env:        viper.GetString("app_env"),
		RunAddress: viper.GetString("run_address"),
		APIToken:   viper.GetString("api_token"),
		MaxUpload:  viper.GetInt64("max_upload_size"),
	}

	return &config
}
