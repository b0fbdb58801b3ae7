package main

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/seekyhq/agent-chat-gateway/internal/agent"
	"github.com/seekyhq/agent-chat-gateway/internal/config"
	"github.com/seekyhq/agent-chat-gateway/internal/database"
	"github.com/seekyhq/agent-chat-gateway/internal/handlers"
	"github.com/seekyhq/agent-chat-gateway/internal/services"
)

func main() {
	// .env is a local-development convenience; deployed environments
	// inject real variables.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	ctx := context.Background()

	// Upstream agent backend: Lambda proxy, direct Bedrock agent, or the
	// plain-LLM fallback for local development.
	client, err := buildAgentClient(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize agent backend: ", err)
	}

	// Chat history is optional; the gateway runs without a database.
	var historyService *services.HistoryService
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("⚠️  Chat history disabled: %v", err)
		} else {
			var forwarder services.Forwarder
			if cfg.SaveChatLambdaName != "" {
				awsCfg, err := loadAWSConfig(ctx, cfg)
				if err != nil {
					log.Fatal("Failed to load AWS config: ", err)
				}
				forwarder = agent.NewLambdaForwarder(awsCfg, cfg.SaveChatLambdaName)
			}
			historyService = services.NewHistoryService(db, forwarder)
			log.Println("✅ Chat history persistence enabled")
		}
	}

	chatService := services.NewChatService(client, historyService)
	chatHandler := handlers.NewChatHandler(chatService, historyService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.POST("/chat", chatHandler.HandleChat)
		api.POST("/save-chat", chatHandler.SaveChat)
		api.GET("/history/:sessionId", chatHandler.GetHistory)
	}
	r.GET("/health", handlers.HealthCheck)

	log.Printf("🚀 Agent chat gateway starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}

func buildAgentClient(ctx context.Context, cfg *config.Config) (agent.Client, error) {
	switch {
	case cfg.UseLambdaProxy:
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("Using Lambda proxy backend (%s)", cfg.BedrockLambdaName)
		return agent.NewLambdaProxy(awsCfg, cfg.BedrockLambdaName), nil

	case cfg.AgentID != "":
		awsCfg, err := loadAWSConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Printf("Using direct Bedrock agent backend (%s/%s)", cfg.AgentID, cfg.AgentAliasID)
		return agent.NewBedrockAgent(awsCfg, cfg.AgentID, cfg.AgentAliasID), nil

	default:
		log.Printf("Using LLM fallback backend (%s)", cfg.GeminiModel)
		return agent.NewLLMBackend(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}

// loadAWSConfig prefers static credentials from the environment and
// falls back to the SDK's default chain (instance role, shared config).
func loadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				cfg.AWSSessionToken,
			)))
	}
	return awsconfig.LoadDefaultConfig(ctx, opts...)
}
