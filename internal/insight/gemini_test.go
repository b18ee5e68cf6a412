package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeminiClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewGeminiClient("test-key", "test-model")
	c.baseURL = srv.URL
	return c
}

func TestGeminiGenerate(t *testing.T) {
	var gotReq geminiRequest
	c := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/test-model:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "What felt true today?"}}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	text, err := c.Generate(context.Background(), "ask me something", &GenOptions{Temperature: 0.85, TopP: 0.9})
	require.NoError(t, err)
	assert.Equal(t, "What felt true today?", text)

	require.Len(t, gotReq.Contents, 1)
	require.Len(t, gotReq.Contents[0].Parts, 1)
	assert.Equal(t, "ask me something", gotReq.Contents[0].Parts[0].Text)
	require.NotNil(t, gotReq.GenerationConfig)
	assert.InDelta(t, 0.85, gotReq.GenerationConfig.Temperature, 1e-9)
	assert.InDelta(t, 0.9, gotReq.GenerationConfig.TopP, 1e-9)
}

func TestGeminiGenerateOmitsConfigWhenNil(t *testing.T) {
	c := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.NotContains(t, raw, "generationConfig")
		w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := c.Generate(context.Background(), "p", nil)
	require.NoError(t, err)
	assert.Empty(t, text, "no candidates yields empty text, not an error")
}

func TestGeminiGenerateAPIError(t *testing.T) {
	c := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := c.Generate(context.Background(), "p", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Contains(t, err.Error(), "RESOURCE_EXHAUSTED")
}

func TestGeminiGenerateOpaqueError(t *testing.T) {
	c := testGeminiClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream toast"))
	})

	_, err := c.Generate(context.Background(), "p", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestGeminiGenerateRequiresKey(t *testing.T) {
	c := NewGeminiClient("", "test-model")
	_, err := c.Generate(context.Background(), "p", nil)
	assert.Error(t, err)
}
