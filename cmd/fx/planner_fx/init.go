package planner_fx

import (
	"log"
	"os"
	"strings"
	"tripscout/internal/services"
	"tripscout/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvidePromptService,
	ProvidePlannerService)

// CompletionConfig holds configuration for the model client
type CompletionConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideCompletionClient creates a completion client based on environment variables
func ProvideCompletionClient() (utils.CompletionClientInterface, error) {
	config := getCompletionConfig()

	log.Printf("Initializing %s completion client with model: %s", config.Provider, config.Model)

	return utils.NewCompletionClient(config.Provider, config.APIKey, config.Model)
}

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func ProvidePlannerService(
	prompts services.PromptServiceInterface,
	client utils.CompletionClientInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(prompts, client)
}

// getCompletionConfig reads configuration from environment variables
func getCompletionConfig() CompletionConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return CompletionConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
