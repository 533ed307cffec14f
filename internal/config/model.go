package config

import (
	"log"
	"os"
	"sync"
	"time"
)

const (
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderOpenAI     = "openai"
)

type ModelConfig struct {
	Provider       string
	Timeout        time.Duration
	TargetLanguage string
}

var (
	modelConfig *ModelConfig
	modelOnce   sync.Once
)

func LoadModelConfig() *ModelConfig {
	modelOnce.Do(func() {
		timeout := 90 * time.Second
		if raw := os.Getenv("MODEL_TIMEOUT"); raw != "" {
			d, err := time.ParseDuration(raw)
			if err != nil {
				log.Printf("Warning: invalid MODEL_TIMEOUT %q, using %s", raw, timeout)
			} else {
				timeout = d
			}
		}
		modelConfig = &ModelConfig{
			Provider:       getEnv("MODEL_PROVIDER", ProviderGemini),
			Timeout:        timeout,
			TargetLanguage: getEnv("TRANSLATION_LANGUAGE", "Mandarin"),
		}
	})
	return modelConfig
}
