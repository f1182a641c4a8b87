package config

const (
	envOpenAIKey       = "OPENAI_API_KEY"
	envOpenAIModel     = "OPENAI_MODEL"
	envOpenAIMaxTokens = "OPENAI_MAX_TOKENS"

	defaultOpenAIModel     = "gpt-4.1"
	defaultOpenAIMaxTokens = 900
)

// OpenAIConfig controls the LLM chat collaborator.
type OpenAIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
}

func loadOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:    envOrDefault(envOpenAIKey, ""),
		Model:     envOrDefault(envOpenAIModel, defaultOpenAIModel),
		MaxTokens: intEnvOrDefault(envOpenAIMaxTokens, defaultOpenAIMaxTokens),
	}
}
