package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultAPIURL       = "http://localhost:8000"
	defaultTimeoutMS    = 30000
	defaultAppName      = "DocUI"
	defaultMaxFileSize  = 10485760 // 10 MiB
	defaultAllowedTypes = "pdf,doc,docx,txt"
	defaultConfigDir    = ".docui"
)

type Config struct {
	Env              string
	APIURL           string
	APITimeout       time.Duration
	AppName          string
	MaxFileSize      int64
	AllowedFileTypes []string
	EnableAnalytics  bool
	EnableDebugMode  bool
	ConfigDir        string
	TokenPath        string
	DownloadDir      string
}

// MustLoad загружает конфигурацию клиента из окружения.
// Все значения читаются один раз при старте, без динамической перезагрузки.
func MustLoad() *Config {
	// Загружаем .env файл если существует
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("Ошибка загрузки .env файла: %v\n", err)
		}
	}

	viper.AutomaticEnv()

	// Устанавливаем значения по умолчанию
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("API_URL", defaultAPIURL)
	viper.SetDefault("API_TIMEOUT_MS", defaultTimeoutMS)
	viper.SetDefault("APP_NAME", defaultAppName)
	viper.SetDefault("MAX_FILE_SIZE", defaultMaxFileSize)
	viper.SetDefault("ALLOWED_FILE_TYPES", defaultAllowedTypes)
	viper.SetDefault("ENABLE_ANALYTICS", false)
	viper.SetDefault("ENABLE_DEBUG_MODE", false)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("DOWNLOAD_DIR", ".")

	// Директория конфигурации живет в домашней директории пользователя
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("Ошибка создания директории конфигурации: %v\n", err)
	}

	config := &Config{
		Env:              viper.GetString("APP_ENV"),
		APIURL:           strings.TrimRight(viper.GetString("API_URL"), "/"),
		APITimeout:       time.Duration(viper.GetInt("API_TIMEOUT_MS")) * time.Millisecond,
		AppName:          viper.GetString("APP_NAME"),
		MaxFileSize:      viper.GetInt64("MAX_FILE_SIZE"),
		AllowedFileTypes: splitTypes(viper.GetString("ALLOWED_FILE_TYPES")),
		EnableAnalytics:  viper.GetBool("ENABLE_ANALYTICS"),
		EnableDebugMode:  viper.GetBool("ENABLE_DEBUG_MODE"),
		ConfigDir:        configDir,
		TokenPath:        filepath.Join(configDir, "token"),
		DownloadDir:      viper.GetString("DOWNLOAD_DIR"),
	}

	// Валидация конфигурации
	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("Ошибка конфигурации: %v", err))
	}

	return config
}

func (c *Config) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url не может быть пустым")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout_ms должен быть положительным")
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size должен быть положительным")
	}
	if len(c.AllowedFileTypes) == 0 {
		return fmt.Errorf("allowed_file_types не может быть пустым")
	}
	return nil
}

// TypeAllowed проверяет, входит ли расширение файла в список разрешенных.
func (c *Config) TypeAllowed(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, t := range c.AllowedFileTypes {
		if t == ext {
			return true
		}
	}
	return false
}

// IsProd проверяет, prod ли окружение
func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == EnvLocal || c.Env == ""
}

func splitTypes(s string) []string {
	parts := strings.Split(s, ",")
	types := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			types = append(types, p)
		}
	}
	return types
}
