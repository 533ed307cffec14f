package config

import (
	"os"
	"sync"
)

type OpenAIConfig struct {
	Provider   string // "openai" or "azure"
	APIKey     string
	Endpoint   string
	Model      string
	APIVersion string
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		openAIConfig = &OpenAIConfig{
			Provider:   getEnv("OPENAI_PROVIDER", "openai"),
			APIKey:     os.Getenv("OPENAI_API_KEY"),
			Endpoint:   getEnv("OPENAI_ENDPOINT", "https://api.openai.com/v1"),
			Model:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIVersion: getEnv("OPENAI_API_VERSION", "2024-06-01"),
		}
	})
	return openAIConfig
}
