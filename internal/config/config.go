// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the gateway needs at startup.
type Config struct {
	Port           string
	AllowedOrigins []string

	// AWS wiring. Static credentials are optional; when absent the SDK's
	// default chain (instance role, env, shared config) is used.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string

	// Backend selection.
	UseLambdaProxy    bool
	BedrockLambdaName string
	AgentID           string
	AgentAliasID      string

	// Chat history persistence and vectorization. Both optional.
	DatabaseURL        string
	SaveChatLambdaName string

	// Local-development LLM fallback.
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads environment variables and returns a validated Config. At
// least one chat backend must be configured.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getenv("PORT", "8080"),
		AWSRegion:          getenv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSSessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		UseLambdaProxy:     os.Getenv("USE_LAMBDA_PROXY") == "true",
		BedrockLambdaName:  os.Getenv("BEDROCK_LAMBDA_NAME"),
		AgentID:            os.Getenv("BEDROCK_AGENT_ID"),
		AgentAliasID:       os.Getenv("BEDROCK_AGENT_ALIAS_ID"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SaveChatLambdaName: os.Getenv("SAVE_CHAT_LAMBDA_NAME"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getenv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if cfg.UseLambdaProxy && cfg.BedrockLambdaName == "" {
		return nil, fmt.Errorf("USE_LAMBDA_PROXY is set but BEDROCK_LAMBDA_NAME is empty")
	}
	if !cfg.UseLambdaProxy && cfg.AgentID == "" && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("no chat backend configured: set BEDROCK_LAMBDA_NAME, BEDROCK_AGENT_ID or GEMINI_API_KEY")
	}
	if cfg.AgentID != "" && cfg.AgentAliasID == "" {
		return nil, fmt.Errorf("BEDROCK_AGENT_ID is set but BEDROCK_AGENT_ALIAS_ID is empty")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
