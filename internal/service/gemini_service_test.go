package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap/zaptest"
	"google.golang.org/genai"
)

func TestGeminiGenerateStructured(t *testing.T) {
	var path, body string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		body = string(b)
		resp, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": `[{"category":"Legal","items":["CR14"],"notes":""}]`}},
				},
			}},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(resp)
	}))
	defer ts.Close()

	svc := NewGeminiService(config.GeminiConfig{APIKey: "test-key", Model: "gemini-2.5-flash"}, zaptest.NewLogger(t), WithGeminiBaseURL(ts.URL))
	text, err := svc.GenerateStructured(context.Background(), GenerateRequest{
		Prompt:            prompt.ChecklistRequest("Private Corporation"),
		SystemInstruction: prompt.ChecklistInstruction,
		Schema:            prompt.ChecklistSchema(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"category":"Legal","items":["CR14"],"notes":""}]`, text)

	assert.True(t, strings.HasSuffix(path, "models/gemini-2.5-flash:generateContent"), path)
	assert.Equal(t, "application/json", gjson.Get(body, "generationConfig.responseMimeType").String())
	assert.True(t, gjson.Get(body, "generationConfig.responseSchema").Exists())
	assert.True(t, gjson.Get(body, "systemInstruction").Exists())
}

func TestGeminiAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	}))
	defer ts.Close()

	svc := NewGeminiService(config.GeminiConfig{APIKey: "bad", Model: "gemini-2.5-flash"}, zaptest.NewLogger(t), WithGeminiBaseURL(ts.URL))
	_, err := svc.GenerateStructured(context.Background(), GenerateRequest{Prompt: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "API key not valid")
}

func TestValidateGenerateResponse(t *testing.T) {
	assert.Error(t, validateGenerateResponse(nil))
	assert.Error(t, validateGenerateResponse(&genai.GenerateContentResponse{}))
	assert.Error(t, validateGenerateResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
	assert.NoError(t, validateGenerateResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText("{}", genai.RoleModel)}},
	}))
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "short", truncateUTF8("short", 10))

	text := strings.Repeat("a", 9999) + "太阳能"
	got := truncateUTF8(text, 10000)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("a", 9999), got)

	got = truncateUTF8(strings.Repeat("能", 5000), 10000)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), 10000)
	assert.Equal(t, 9999, len(got))
}
