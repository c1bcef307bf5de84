// Package config handles loading and validating the service configuration.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port            string   `mapstructure:"port"`
	Env             string   `mapstructure:"env"`
	CORSAllowOrigin []string `mapstructure:"cors_allow_origins"`
	DatabaseURL     string   `mapstructure:"database_url"`
	LLMAPIKey       string   `mapstructure:"llm_api_key"`
	LLMModel        string   `mapstructure:"llm_model"`
	LLMLiteModel    string   `mapstructure:"llm_lite_model"`
}

// Load reads configuration from environment variables and an optional
// config.yaml, with sensible defaults. Env vars win over the file.
func Load() Config {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("cors_allow_origins", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("database_url", "")
	v.SetDefault("llm_api_key", "")
	v.SetDefault("llm_model", "gpt-4o-mini")
	v.SetDefault("llm_lite_model", "gpt-4o-mini")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // config file is optional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := Config{
		Port:            v.GetString("port"),
		Env:             normalizeEnv(v.GetString("env")),
		CORSAllowOrigin: splitAndTrim(v.GetString("cors_allow_origins")),
		DatabaseURL:     v.GetString("database_url"),
		LLMAPIKey:       v.GetString("llm_api_key"),
		LLMModel:        v.GetString("llm_model"),
		LLMLiteModel:    v.GetString("llm_lite_model"),
	}
	if cfg.LLMLiteModel == "" {
		cfg.LLMLiteModel = cfg.LLMModel
	}
	return cfg
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return "production"
	case "test":
		return "test"
	default:
		return "dev"
	}
}
