package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "test-config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
feeds:
  urls:
    - https://example.com/feed1.xml
    - https://example.com/feed2.xml
llm:
  endpoint: https://api.openai.com/v1
  api_key: secret
  model: gpt-4o-mini
ingestion:
  batch_size: 4
  max_retries: 5
  retry_delay: 250ms
ranking:
  weights:
    similarity: 0.5
    recency: 0.5
profile:
  event_weights:
    scroll: 0.1
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, []string{"https://example.com/feed1.xml", "https://example.com/feed2.xml"}, cfg.Feeds.URLs)
		assert.Equal(t, 4, cfg.Ingestion.BatchSize)
		assert.Equal(t, 5, cfg.Ingestion.MaxRetries)
		assert.Equal(t, 250*time.Millisecond, cfg.Ingestion.RetryDelay)
		assert.Equal(t, RankingWeights{Similarity: 0.5, Recency: 0.5}, cfg.Ranking.Weights)

		// configured weight overrides default, others keep defaults
		assert.InDelta(t, 0.1, cfg.Profile.EventWeights["scroll"], 1e-9)
		assert.InDelta(t, -0.8, cfg.Profile.EventWeights["dislike"], 1e-9)

		// embedding inherits llm endpoint and key
		assert.Equal(t, "https://api.openai.com/v1", cfg.Embedding.Endpoint)
		assert.Equal(t, "secret", cfg.Embedding.APIKey)
	})

	t.Run("defaults", func(t *testing.T) {
		configPath := writeConfig(t, `
llm:
  endpoint: http://localhost:11434/v1
  model: llama3
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "feedrank.db", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Ingestion.BatchSize)
		assert.Equal(t, 3, cfg.Ingestion.MaxRetries)
		assert.Equal(t, time.Second, cfg.Ingestion.RetryDelay)
		assert.Equal(t, 5, cfg.Profile.LowSignalThreshold)
		assert.Equal(t, 100, cfg.Profile.MaxEngagements)
		require.NotNil(t, cfg.Profile.BlendRatio)
		assert.InDelta(t, 0.5, *cfg.Profile.BlendRatio, 1e-9)
		assert.InDelta(t, 30, cfg.Profile.TemporalDecayDays, 1e-9)
		assert.Equal(t, DefaultProfileWeights(), cfg.Profile.EventWeights)
		assert.Equal(t, DefaultPopularityWeights(), cfg.Popularity.EventWeights)
		assert.Equal(t, 48*time.Hour, cfg.Popularity.TrendingWindow)
		assert.Equal(t, 20, cfg.Ranking.DefaultLimit)
		assert.Equal(t, RankingWeights{Similarity: 0.4, Recency: 0.25, Popularity: 0.2, Exploration: 0.15}, cfg.Ranking.Weights)
		assert.Equal(t, 3, cfg.Ranking.CandidateMultiplier)
		assert.Equal(t, time.Hour, cfg.Ranking.ProfileFreshness)
		assert.Equal(t, 1536, cfg.Embedding.Dimensions)
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("FEEDRANK_TEST_KEY", "from-env")
		configPath := writeConfig(t, `
llm:
  endpoint: http://localhost:11434/v1
  model: llama3
  api_key: ${FEEDRANK_TEST_KEY}
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.LLM.APIKey)
	})

	t.Run("zero blend ratio kept", func(t *testing.T) {
		configPath := writeConfig(t, `
llm:
  endpoint: http://localhost:11434/v1
  model: llama3
profile:
  blend_ratio: 0
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg.Profile.BlendRatio)
		assert.Zero(t, *cfg.Profile.BlendRatio)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		configPath := writeConfig(t, `
invalid yaml content
  with bad indentation
    and no structure
`)
		cfg, err := Load(configPath)
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "missing endpoint", content: "llm:\n  model: llama3\n", errMsg: "Endpoint"},
		{name: "missing model", content: "llm:\n  endpoint: http://localhost/v1\n", errMsg: "Model"},
		{name: "bad feed url", content: "llm:\n  endpoint: http://localhost/v1\n  model: m\nfeeds:\n  urls: [\"not a url\"]\n", errMsg: "URLs"},
		{name: "temperature out of range", content: "llm:\n  endpoint: http://localhost/v1\n  model: m\n  temperature: 3\n", errMsg: "Temperature"},
		{name: "blend ratio out of range", content: "llm:\n  endpoint: http://localhost/v1\n  model: m\nprofile:\n  blend_ratio: 1.5\n", errMsg: "BlendRatio"},
		{name: "unknown event weight", content: "llm:\n  endpoint: http://localhost/v1\n  model: m\npopularity:\n  event_weights:\n    share: 4\n", errMsg: `unknown event type "share"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "validate config")
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"ingestion"`)
	assert.Contains(t, string(data), `"blend_ratio"`)
	assert.Contains(t, string(data), "Share of the engagement term in the blended profile")
}
