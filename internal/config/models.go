package config

// ResolverConfig represents the orchestration policy values
type ResolverConfig struct {
	DefaultLimit        int
	MinCachedRecruiters int
	MinCachedEmployees  int
}

// ClearbitConfig represents the configuration for the company-info provider
type ClearbitConfig struct {
	APIKey  string
	BaseURL string
}

// PDLConfig represents the configuration for the people-search provider
type PDLConfig struct {
	APIKey           string
	BaseURL          string
	TargetRecruiters int
	TargetEmployees  int
}

// PredictorConfig represents the email-pattern predictor selection
type PredictorConfig struct {
	Provider string
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// GetResolver returns the resolver configuration
func (c *Config) GetResolver() ResolverConfig {
	return ResolverConfig{
		DefaultLimit:        c.GetInt("resolver.default_limit"),
		MinCachedRecruiters: c.GetInt("resolver.min_cached_recruiters"),
		MinCachedEmployees:  c.GetInt("resolver.min_cached_employees"),
	}
}

// GetClearbit returns the Clearbit configuration
func (c *Config) GetClearbit() ClearbitConfig {
	return ClearbitConfig{
		APIKey:  c.GetString("clearbit.api_key"),
		BaseURL: c.GetString("clearbit.base_url"),
	}
}

// GetPDL returns the People Data Labs configuration
func (c *Config) GetPDL() PDLConfig {
	return PDLConfig{
		APIKey:           c.GetString("pdl.api_key"),
		BaseURL:          c.GetString("pdl.base_url"),
		TargetRecruiters: c.GetInt("pdl.target_recruiters"),
		TargetEmployees:  c.GetInt("pdl.target_employees"),
	}
}

// GetPredictor returns the predictor configuration
func (c *Config) GetPredictor() PredictorConfig {
	return PredictorConfig{
		Provider: c.GetString("predictor.provider"),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
	}
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
	}
}
