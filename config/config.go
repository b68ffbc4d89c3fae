package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Catalog configuration. Document paths are resolved against the base URL.
	CatalogBaseURL    string `mapstructure:"CATALOG_BASE_URL"`
	ExcursionDataPath string `mapstructure:"EXCURSION_DATA_PATH"`
	ArticleDataPath   string `mapstructure:"ARTICLE_DATA_PATH"`

	// Cart configuration.
	CartBackend      string `mapstructure:"CART_BACKEND"` // "redis", "mongo" or "memory"
	CartSortOnInsert bool   `mapstructure:"CART_SORT_ON_INSERT"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCartDB   int    `mapstructure:"REDIS_CART_DB"`

	// MongoDB configuration (only used when CART_BACKEND is "mongo").
	DatabaseURL string `mapstructure:"DATABASE_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CATALOG_BASE_URL", "http://localhost:3000")
	viper.SetDefault("EXCURSION_DATA_PATH", "/data/jsonData/excursion.json")
	viper.SetDefault("ARTICLE_DATA_PATH", "/data/jsonData/article.json")
	viper.SetDefault("CART_BACKEND", "redis")
	viper.SetDefault("CART_SORT_ON_INSERT", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CART_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
