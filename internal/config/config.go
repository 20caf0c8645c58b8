// Package config loads server configuration from the environment, with an
// optional .env file for local development
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App AppConfig
	Ref RefConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	Threads            int
}

// RefConfig points at an optional reference corpus loaded at startup for
// the reference-dependent codon metrics
type RefConfig struct {
	FastaPath      string
	ExpressionPath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "seqfeat.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			Threads:            getEnvAsInt("THREADS", 0),
		},
		Ref: RefConfig{
			FastaPath:      getEnv("REFERENCE_FASTA", ""),
			ExpressionPath: getEnv("REFERENCE_EXPRESSION", ""),
		},
	}
}

func (c *Config) IsProd() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
