package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type GeminiService struct {
	cfg     config.GeminiConfig
	baseURL string
	log     *zap.Logger

	once      sync.Once
	client    *genai.Client
	clientErr error
}

type GeminiOption func(*GeminiService)

// WithGeminiBaseURL points the client at another endpoint, used by tests.
func WithGeminiBaseURL(url string) GeminiOption {
	return func(s *GeminiService) {
		s.baseURL = url
	}
}

// NewGeminiService never fails; a missing key surfaces as *ConfigError on each call.
func NewGeminiService(cfg config.GeminiConfig, log *zap.Logger, opts ...GeminiOption) *GeminiService {
	s := &GeminiService{cfg: cfg, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GeminiService) Name() string {
	return config.ProviderGemini
}

func (s *GeminiService) getClient(ctx context.Context) (*genai.Client, error) {
	if s.cfg.APIKey == "" {
		return nil, &ConfigError{Message: "GEMINI_API_KEY (or API_KEY) environment variable not set"}
	}
	s.once.Do(func() {
		cc := &genai.ClientConfig{
			APIKey:  s.cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		}
		if s.baseURL != "" {
			cc.HTTPOptions = genai.HTTPOptions{BaseURL: s.baseURL}
		}
		s.client, s.clientErr = genai.NewClient(ctx, cc)
	})
	if s.clientErr != nil {
		return nil, &ConfigError{Message: fmt.Sprintf("cannot create Gemini client: %v", s.clientErr)}
	}
	return s.client, nil
}

func (s *GeminiService) GenerateStructured(ctx context.Context, req GenerateRequest) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	genConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if strings.TrimSpace(req.SystemInstruction) != "" {
		genConfig.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}

	s.log.Debug("gemini generate", zap.String("model", s.cfg.Model), zap.Int("prompt_chars", len(req.Prompt)))
	result, err := client.Models.GenerateContent(ctx, s.cfg.Model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		s.log.Error("gemini generate failed", zap.Error(err))
		return "", &APIError{Provider: s.Name(), Message: err.Error(), Err: err}
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", &APIError{Provider: s.Name(), Message: err.Error(), Err: err}
	}
	return strings.TrimSpace(result.Text()), nil
}

func (s *GeminiService) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	trimmedText := strings.TrimSpace(text)
	if trimmedText == "" {
		return nil, fmt.Errorf("text for embedding: %w", ErrEmptyInput)
	}
	if len(trimmedText) > 10000 {
		s.log.Warn("embedding text truncated", zap.Int("length", len(trimmedText)))
		trimmedText = truncateUTF8(trimmedText, 10000)
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, err
	}

	content := []*genai.Content{genai.NewContentFromText(trimmedText, genai.RoleUser)}
	result, err := client.Models.EmbedContent(ctx, s.cfg.EmbeddingModel, content, nil)
	if err != nil {
		return nil, &APIError{Provider: s.Name(), Message: err.Error(), Err: err}
	}
	return validateEmbeddingResponse(result)
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}

func validateEmbeddingResponse(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil {
		return nil, fmt.Errorf("response is nil")
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embeddings := resp.Embeddings[0].Values

	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}

	for i, val := range embeddings {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, val)
		}
	}

	return embeddings, nil
}
