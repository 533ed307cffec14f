package service

import (
	"context"

	"google.golang.org/genai"
)

// GenerateRequest is one "generate structured content" call.
// Schema may be nil, in which case only a JSON reply is requested.
type GenerateRequest struct {
	Prompt            string
	SystemInstruction string
	Schema            *genai.Schema
}

// StructuredGenerator is a model backend that returns the raw reply text.
// Implementations return *ConfigError before any network call when unconfigured
// and *APIError on remote failure. They never retry.
type StructuredGenerator interface {
	GenerateStructured(ctx context.Context, req GenerateRequest) (string, error)
	Name() string
}

// Embedder produces embeddings for the similarity index.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}
