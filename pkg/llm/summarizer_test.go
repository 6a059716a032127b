package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedrank/pkg/config"
)

func chatServer(t *testing.T, content string, check func(r *http.Request, body []byte)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		if check != nil {
			check(r, body)
		}
		resp := openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: content}}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)
	return server
}

func testLLMConfig(url string) config.LLMConfig {
	return config.LLMConfig{
		Endpoint:    url + "/v1",
		APIKey:      "test-key",
		Model:       "gpt-4o-mini",
		Temperature: 0.3,
		MaxTokens:   500,
	}
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Run("plain response with surrounding text", func(t *testing.T) {
		server := chatServer(t, `Here is the summary:
{
  "summary": "  Go 1.22 adds range-over-func iterators.  ",
  "keyFacts": ["Iterators land in Go 1.22.", " ", "Compilation is faster."],
  "tags": ["golang", " programming "]
}`, func(_ *http.Request, body []byte) {
			var req openai.ChatCompletionRequest
			assert.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, "gpt-4o-mini", req.Model)
			require.Len(t, req.Messages, 2)
			assert.Equal(t, defaultSystemPrompt, req.Messages[0].Content)
			assert.Contains(t, req.Messages[1].Content, "Title: Go 1.22 Released")
			assert.Contains(t, req.Messages[1].Content, "Content: New iterators")
			assert.Contains(t, req.Messages[1].Content, "Respond with a JSON object")
			assert.Nil(t, req.ResponseFormat)
		})

		s := NewSummarizer(testLLMConfig(server.URL))
		res, err := s.Summarize(context.Background(), "Go 1.22 Released", "New iterators")
		require.NoError(t, err)
		assert.Equal(t, "Go 1.22 adds range-over-func iterators.", res.Summary)
		assert.Equal(t, []string{"Iterators land in Go 1.22.", "Compilation is faster."}, res.KeyFacts)
		assert.Equal(t, []string{"golang", "programming"}, res.Tags)
	})

	t.Run("structured output request", func(t *testing.T) {
		server := chatServer(t, `{"summary":"s","keyFacts":["f"],"tags":[]}`, func(_ *http.Request, body []byte) {
			assert.Contains(t, string(body), `"type":"json_schema"`)
			assert.Contains(t, string(body), `"name":"article_summary"`)
			assert.Contains(t, string(body), `"keyFacts"`)
			assert.NotContains(t, string(body), "Respond with a JSON object")
		})
		cfg := testLLMConfig(server.URL)
		cfg.UseJSONSchema = true
		cfg.SystemPrompt = "custom prompt"

		s := NewSummarizer(cfg)
		assert.Equal(t, "custom prompt", s.systemMsg)
		res, err := s.Summarize(context.Background(), "title", "")
		require.NoError(t, err)
		assert.Equal(t, "s", res.Summary)
		assert.Empty(t, res.Tags)
	})

	t.Run("schema violations are invalid responses", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{name: "no json", content: "I cannot summarize this"},
			{name: "broken json", content: `{"summary": "x", "keyFacts": [}`},
			{name: "missing summary", content: `{"keyFacts":["a"],"tags":["b"]}`},
			{name: "missing key facts", content: `{"summary":"x","tags":["b"]}`},
			{name: "missing tags", content: `{"summary":"x","keyFacts":["a"]}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				server := chatServer(t, tt.content, nil)
				s := NewSummarizer(testLLMConfig(server.URL))
				_, err := s.Summarize(context.Background(), "title", "content")
				require.ErrorIs(t, err, ErrInvalidResponse)
			})
		}
	})

	t.Run("empty key facts accepted", func(t *testing.T) {
		for _, content := range []string{
			`{"summary":"x","keyFacts":[],"tags":["b"]}`,
			`{"summary":"x","keyFacts":["  "],"tags":["b"]}`,
		} {
			server := chatServer(t, content, nil)
			s := NewSummarizer(testLLMConfig(server.URL))
			res, err := s.Summarize(context.Background(), "title", "content")
			require.NoError(t, err, content)
			assert.Empty(t, res.KeyFacts)
			assert.Equal(t, "x", res.EmbeddingInput())
		}
	})

	t.Run("empty input", func(t *testing.T) {
		s := NewSummarizer(testLLMConfig("http://127.0.0.1:1"))
		_, err := s.Summarize(context.Background(), " ", "")
		require.Error(t, err)
	})

	t.Run("no choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
		}))
		defer server.Close()
		_, err := NewSummarizer(testLLMConfig(server.URL)).Summarize(context.Background(), "t", "c")
		require.ErrorIs(t, err, ErrInvalidResponse)
	})

	t.Run("long content truncated", func(t *testing.T) {
		server := chatServer(t, `{"summary":"s","keyFacts":["f"],"tags":["t"]}`, func(_ *http.Request, body []byte) {
			assert.Less(t, len(body), maxPromptContent+3000)
		})
		_, err := NewSummarizer(testLLMConfig(server.URL)).Summarize(context.Background(), "t", strings.Repeat("a", maxPromptContent*2))
		require.NoError(t, err)
	})
}

func TestSummarizer_CircuitBreaker(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
	}))
	defer server.Close()

	cfg := testLLMConfig(server.URL)
	cfg.Breaker = config.BreakerConfig{MaxFailures: 2, OpenTimeout: time.Minute}
	s := NewSummarizer(cfg)

	for range 2 {
		_, err := s.Summarize(context.Background(), "t", "c")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidResponse)
	}
	_, err := s.Summarize(context.Background(), "t", "c")
	require.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(2), hits.Load())
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "ab...", truncateRunes("abc", 2))
	assert.Equal(t, "пр...", truncateRunes("привет", 2))
}
