package config

const (
	envLLMBaseURL = "LLM_BASE_URL"
	envLLMAPIKey  = "LLM_API_KEY"
	envLLMModel   = "LLM_MODEL"

	defaultLLMBaseURL = "https://api.studio.nebius.com/v1"
	defaultLLMModel   = "meta-llama/Meta-Llama-3.1-70B-Instruct"
)

// LLMConfig controls the chat-completions endpoint used for name resolution.
// An empty APIKey disables the LLM path; the resolver falls back to fuzzy matching.
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Enabled reports whether the LLM resolver should be attempted.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadLLM() LLMConfig {
	return LLMConfig{
		BaseURL: envOrDefault(envLLMBaseURL, defaultLLMBaseURL),
		APIKey:  envOrDefault(envLLMAPIKey, ""),
		Model:   envOrDefault(envLLMModel, defaultLLMModel),
	}
}
