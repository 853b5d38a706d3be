// pkg/config/llm.go
package config

import "time"

type LLMConfig struct {
	// APIKey may be empty; the gateway then serves the fallback echo
	APIKey  string
	Model   string
	Timeout time.Duration
}

type EmbeddingConfig struct {
	Model      string
	Dimensions int
	Timeout    time.Duration
}

func loadLLMConfig() LLMConfig {
	return LLMConfig{
		APIKey:  getEnv("OPENAI_API_KEY", ""),
		Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
		Timeout: getEnvDuration("LLM_TIMEOUT", 30*time.Second),
	}
}

func loadEmbeddingConfig() EmbeddingConfig {
	return EmbeddingConfig{
		Model:      getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		Dimensions: getEnvInt("EMBEDDING_DIMENSIONS", 0),
		Timeout:    getEnvDuration("EMBEDDING_TIMEOUT", 15*time.Second),
	}
}
