// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the binaries need to start.
type Config struct {
	HTTPAddr         string
	DatabaseURL      string
	BenchmarkBaseURL string
	BenchmarkAPIKey  string
	LLMProvider      string
	LLMModel         string
	BreakpointsFile  string
	LogLevel         string
}

// Load reads configuration from FINSIGHT_* environment variables. A
// .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_addr", ":8080")
	v.SetDefault("llm_provider", "")
	v.SetDefault("llm_model", "")
	v.SetDefault("log_level", "info")

	cfg := Config{
		HTTPAddr:         v.GetString("http_addr"),
		DatabaseURL:      v.GetString("database_url"),
		BenchmarkBaseURL: v.GetString("benchmark_base_url"),
		BenchmarkAPIKey:  v.GetString("benchmark_api_key"),
		LLMProvider:      v.GetString("llm_provider"),
		LLMModel:         v.GetString("llm_model"),
		BreakpointsFile:  v.GetString("breakpoints_file"),
		LogLevel:         v.GetString("log_level"),
	}
	if cfg.HTTPAddr == "" {
		return Config{}, fmt.Errorf("http addr is empty")
	}
	return cfg, nil
}
