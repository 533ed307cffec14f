package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fadilmartias/bid-analyzer/internal/config"
	"github.com/fadilmartias/bid-analyzer/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap/zaptest"
)

func newOpenRouterStub(t *testing.T, status int, body string) (*httptest.Server, *atomic.Int32, *[]byte) {
	t.Helper()
	var hits atomic.Int32
	var lastBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		var raw json.RawMessage
		_ = json.NewDecoder(r.Body).Decode(&raw)
		lastBody = raw
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts, &hits, &lastBody
}

func chatCompletion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"id": "gen-1",
		"choices": []map[string]any{
			{"index": 0, "message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestOpenRouterGenerateStructured(t *testing.T) {
	ts, hits, body := newOpenRouterStub(t, http.StatusOK, chatCompletion(validAnalysisJSON))
	svc := NewOpenRouterService(config.OpenRouterConfig{APIKey: "test-key", Model: "openai/gpt-4o-mini", BaseURL: ts.URL}, zaptest.NewLogger(t))

	text, err := svc.GenerateStructured(context.Background(), GenerateRequest{
		Prompt:            "bid text",
		SystemInstruction: prompt.BidAnalysisInstruction,
		Schema:            prompt.BidAnalysisSchema(),
	})
	require.NoError(t, err)
	assert.JSONEq(t, validAnalysisJSON, text)
	assert.EqualValues(t, 1, hits.Load())

	sent := string(*body)
	assert.Equal(t, "openai/gpt-4o-mini", gjson.Get(sent, "model").String())
	assert.Equal(t, "system", gjson.Get(sent, "messages.0.role").String())
	assert.Equal(t, "bid text", gjson.Get(sent, "messages.1.content").String())
	assert.Equal(t, "json_schema", gjson.Get(sent, "response_format.type").String())
	assert.Equal(t, "object", gjson.Get(sent, "response_format.json_schema.schema.type").String())
}

func TestOpenRouterWithoutSchemaUsesJSONMode(t *testing.T) {
	ts, _, body := newOpenRouterStub(t, http.StatusOK, chatCompletion(`{"a":"b"}`))
	svc := NewOpenRouterService(config.OpenRouterConfig{APIKey: "test-key", BaseURL: ts.URL}, zaptest.NewLogger(t))

	_, err := svc.GenerateStructured(context.Background(), GenerateRequest{Prompt: "translate"})
	require.NoError(t, err)
	sent := string(*body)
	assert.Equal(t, "json_object", gjson.Get(sent, "response_format.type").String())
	assert.Equal(t, "user", gjson.Get(sent, "messages.0.role").String())
}

func TestOpenRouterErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{name: "http error", status: http.StatusTooManyRequests, body: `{"error":{"message":"Rate limit exceeded"}}`, wantMsg: "Rate limit exceeded"},
		{name: "upstream error with 200", status: http.StatusOK, body: `{"error":{"message":"Provider returned error"}}`, wantMsg: "Provider returned error"},
		{name: "no choices", status: http.StatusOK, body: `{"choices":[]}`, wantMsg: "no choices"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, hits, _ := newOpenRouterStub(t, tt.status, tt.body)
			svc := NewOpenRouterService(config.OpenRouterConfig{APIKey: "test-key", BaseURL: ts.URL}, zaptest.NewLogger(t))

			_, err := svc.GenerateStructured(context.Background(), GenerateRequest{Prompt: "x"})
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Contains(t, apiErr.Message, tt.wantMsg)
			assert.EqualValues(t, 1, hits.Load())
		})
	}
}

func TestGatewayOverOpenRouterTruncatedReply(t *testing.T) {
	ts, _, _ := newOpenRouterStub(t, http.StatusOK, chatCompletion(`{"summary": {"projectName": "Solar`))
	svc := NewOpenRouterService(config.OpenRouterConfig{APIKey: "test-key", BaseURL: ts.URL}, zaptest.NewLogger(t))
	gw := NewModelGateway(svc, zaptest.NewLogger(t))

	_, err := gw.AnalyzeBid(context.Background(), "bid")
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
}
