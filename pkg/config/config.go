package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Feeds      FeedsConfig      `yaml:"feeds" json:"feeds" jsonschema:"description=Feed sources and content extraction"`
	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for article summarization"`
	Embedding  EmbeddingConfig  `yaml:"embedding" json:"embedding" jsonschema:"description=Embedding provider configuration"`
	Ingestion  IngestionConfig  `yaml:"ingestion" json:"ingestion" jsonschema:"description=Ingestion pipeline configuration"`
	Profile    ProfileConfig    `yaml:"profile" json:"profile" jsonschema:"description=User profile builder configuration"`
	Popularity PopularityConfig `yaml:"popularity" json:"popularity" jsonschema:"description=Popularity aggregation configuration"`
	Ranking    RankingConfig    `yaml:"ranking" json:"ranking" jsonschema:"description=Feed ranking configuration"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" validate:"required" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" validate:"gte=1s" jsonschema:"default=30s,description=HTTP server timeout"`
	BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for RSS feeds and external links"`
}

// DatabaseConfig holds database settings
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn" json:"dsn" validate:"required" jsonschema:"default=feedrank.db,description=Database connection string"`
	MaxOpenConns    int           `yaml:"max_open_conns" json:"max_open_conns" validate:"gte=1" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int           `yaml:"max_idle_conns" json:"max_idle_conns" validate:"gte=0" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=1h,description=Connection maximum lifetime"`
}

// FeedsConfig holds feed source settings
type FeedsConfig struct {
	URLs           []string      `yaml:"urls" json:"urls" validate:"dive,url" jsonschema:"description=RSS/Atom feed URLs to ingest"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Timeout for a single feed or page request"`
	MaxConcurrent  int           `yaml:"max_concurrent" json:"max_concurrent" validate:"gte=1" jsonschema:"default=4,description=Maximum concurrent feed fetches and extractions"`
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Feedrank/1.0,description=User agent for HTTP requests"`
	ExtractContent bool          `yaml:"extract_content" json:"extract_content" jsonschema:"default=true,description=Extract full text for items without a body"`
	MinTextLength  int           `yaml:"min_text_length" json:"min_text_length" validate:"gte=0" jsonschema:"default=200,description=Body length below which full text is extracted"`
}

// BreakerConfig holds circuit breaker settings for a provider
type BreakerConfig struct {
	MaxFailures uint32        `yaml:"max_failures" json:"max_failures" jsonschema:"default=5,description=Consecutive failures before the breaker opens"`
	OpenTimeout time.Duration `yaml:"open_timeout" json:"open_timeout" jsonschema:"default=30s,description=How long the breaker stays open"`
}

// LLMConfig holds LLM configuration for article summarization
type LLMConfig struct {
	Endpoint          string        `yaml:"endpoint" json:"endpoint" validate:"required,url" jsonschema:"required,description=OpenAI-compatible API endpoint"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model             string        `yaml:"model" json:"model" validate:"required" jsonschema:"required,description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature       float64       `yaml:"temperature" json:"temperature" validate:"gte=0,lte=2" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens         int           `yaml:"max_tokens" json:"max_tokens" validate:"gte=1" jsonschema:"default=1024,description=Maximum tokens in response"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	SystemPrompt      string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt for the LLM (optional)"`
	UseJSONSchema     bool          `yaml:"use_json_schema" json:"use_json_schema" jsonschema:"default=true,description=Request structured output with a JSON schema (not all models support this)"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second" validate:"gte=0" jsonschema:"default=5,description=Client-side rate limit for provider calls"`
	Breaker           BreakerConfig `yaml:"breaker" json:"breaker" jsonschema:"description=Circuit breaker settings"`
}

// EmbeddingConfig holds embedding provider settings
type EmbeddingConfig struct {
	Endpoint          string        `yaml:"endpoint" json:"endpoint" validate:"omitempty,url" jsonschema:"description=OpenAI-compatible API endpoint (defaults to llm.endpoint)"`
	APIKey            string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (defaults to llm.api_key)"`
	Model             string        `yaml:"model" json:"model" jsonschema:"default=text-embedding-3-small,description=Embedding model name"`
	Dimensions        int           `yaml:"dimensions" json:"dimensions" validate:"gte=1" jsonschema:"default=1536,description=Embedding dimension shared by all stored vectors"`
	BatchSize         int           `yaml:"batch_size" json:"batch_size" validate:"gte=1" jsonschema:"default=64,description=Maximum inputs per batch request"`
	Timeout           time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second" validate:"gte=0" jsonschema:"default=10,description=Client-side rate limit for provider calls"`
	Breaker           BreakerConfig `yaml:"breaker" json:"breaker" jsonschema:"description=Circuit breaker settings"`
}

// IngestionConfig holds ingestion pipeline settings
type IngestionConfig struct {
	BatchSize  int           `yaml:"batch_size" json:"batch_size" validate:"gte=1" jsonschema:"default=10,description=Number of concurrent ingestion workers"`
	MaxRetries int           `yaml:"max_retries" json:"max_retries" validate:"gte=1" jsonschema:"default=3,description=Attempts per provider call"`
	RetryDelay time.Duration `yaml:"retry_delay" json:"retry_delay" jsonschema:"default=1s,description=Base delay multiplied by the attempt number"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=1h,description=Scheduled ingestion interval"`
	RunTimeout time.Duration `yaml:"run_timeout" json:"run_timeout" jsonschema:"default=30m,description=Wall-clock budget of a single ingestion run"`
}

// DefaultBlendRatio is the engagement share of a blended profile when blend_ratio is not set
const DefaultBlendRatio = 0.5

// ProfileConfig holds user profile builder settings
type ProfileConfig struct {
	EventWeights       map[string]float64 `yaml:"event_weights" json:"event_weights" jsonschema:"description=Per event type weight in the engagement term"`
	TemporalDecayDays  float64            `yaml:"temporal_decay_days" json:"temporal_decay_days" validate:"gt=0" jsonschema:"default=30,description=Exponential decay constant for engagement age"`
	LowSignalThreshold int                `yaml:"low_signal_threshold" json:"low_signal_threshold" validate:"gte=1" jsonschema:"default=5,description=Low-signal events required before recomputation"`
	MaxEngagements     int                `yaml:"max_engagements" json:"max_engagements" validate:"gte=1" jsonschema:"default=100,description=Most recent events used for the engagement term"`
	BlendRatio         *float64           `yaml:"blend_ratio" json:"blend_ratio" validate:"omitempty,gte=0,lte=1" jsonschema:"default=0.5,description=Share of the engagement term in the blended profile"`
	UpdateQueue        int                `yaml:"update_queue" json:"update_queue" validate:"gte=1" jsonschema:"default=100,description=Capacity of the profile update queue"`
}

// PopularityConfig holds popularity aggregation settings
type PopularityConfig struct {
	EventWeights   map[string]float64 `yaml:"event_weights" json:"event_weights" jsonschema:"description=Per event type weight in the trending score"`
	TrendingWindow time.Duration      `yaml:"trending_window" json:"trending_window" jsonschema:"default=48h,description=Window for trending article computation"`
	TrendingLimit  int                `yaml:"trending_limit" json:"trending_limit" validate:"gte=1" jsonschema:"default=100,description=Maximum trending article ids"`
}

// RankingWeights holds final score weights
type RankingWeights struct {
	Similarity  float64 `yaml:"similarity" json:"similarity" validate:"gte=0" jsonschema:"default=0.4"`
	Recency     float64 `yaml:"recency" json:"recency" validate:"gte=0" jsonschema:"default=0.25"`
	Popularity  float64 `yaml:"popularity" json:"popularity" validate:"gte=0" jsonschema:"default=0.2"`
	Exploration float64 `yaml:"exploration" json:"exploration" validate:"gte=0" jsonschema:"default=0.15"`
}

// RankingConfig holds feed ranking settings
type RankingConfig struct {
	DefaultLimit            int            `yaml:"default_limit" json:"default_limit" validate:"gte=1" jsonschema:"default=20,description=Default feed size"`
	DefaultMinSimilarity    float64        `yaml:"default_min_similarity" json:"default_min_similarity" validate:"gte=-1,lte=1" jsonschema:"default=0,description=Default similarity floor"`
	Weights                 RankingWeights `yaml:"weights" json:"weights" jsonschema:"description=Final score weights"`
	RecencyDecayDays        float64        `yaml:"recency_decay_days" json:"recency_decay_days" validate:"gt=0" jsonschema:"default=7,description=Exponential decay constant for article age"`
	ExplorationBoost        float64        `yaml:"exploration_boost" json:"exploration_boost" validate:"gte=0" jsonschema:"default=0.3,description=Weight of the unseen tag ratio"`
	RandomExplorationFactor float64        `yaml:"random_exploration_factor" json:"random_exploration_factor" validate:"gte=0" jsonschema:"default=0.1,description=Scale of the random exploration term"`
	CandidateMultiplier     int            `yaml:"candidate_multiplier" json:"candidate_multiplier" validate:"gte=1" jsonschema:"default=3,description=Candidates retrieved per requested article"`
	ProfileFreshness        time.Duration  `yaml:"profile_freshness" json:"profile_freshness" jsonschema:"default=1h,description=Profile age below which it is used as the query embedding"`
}

// DefaultProfileWeights returns engagement weights used for profile computation
func DefaultProfileWeights() map[string]float64 {
	return map[string]float64{"like": 1.0, "dislike": -0.8, "expand_summary": 0.6, "open": 0.5, "scroll": 0.3}
}

// DefaultPopularityWeights returns engagement weights used for trending scores
func DefaultPopularityWeights() map[string]float64 {
	return map[string]float64{"open": 1, "expand_summary": 2, "like": 3, "dislike": -1, "scroll": 0.5}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.SetDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// SetDefaults fills zero values with defaults
func (c *Config) SetDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "feedrank.db"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = time.Hour
	}

	// feeds
	if c.Feeds.Timeout == 0 {
		c.Feeds.Timeout = 30 * time.Second
	}
	if c.Feeds.MaxConcurrent == 0 {
		c.Feeds.MaxConcurrent = 4
	}
	if c.Feeds.UserAgent == "" {
		c.Feeds.UserAgent = "Feedrank/1.0"
	}
	if c.Feeds.MinTextLength == 0 {
		c.Feeds.MinTextLength = 200
	}

	// llm
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1024
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.RequestsPerSecond == 0 {
		c.LLM.RequestsPerSecond = 5
	}
	setBreakerDefaults(&c.LLM.Breaker)

	// embedding, endpoint and key fall back to llm
	if c.Embedding.Endpoint == "" {
		c.Embedding.Endpoint = c.LLM.Endpoint
	}
	if c.Embedding.APIKey == "" {
		c.Embedding.APIKey = c.LLM.APIKey
	}
	if c.Embedding.Model == "" {
		c.Embedding.Model = "text-embedding-3-small"
	}
	if c.Embedding.Dimensions == 0 {
		c.Embedding.Dimensions = 1536
	}
	if c.Embedding.BatchSize == 0 {
		c.Embedding.BatchSize = 64
	}
	if c.Embedding.Timeout == 0 {
		c.Embedding.Timeout = 30 * time.Second
	}
	if c.Embedding.RequestsPerSecond == 0 {
		c.Embedding.RequestsPerSecond = 10
	}
	setBreakerDefaults(&c.Embedding.Breaker)

	// ingestion
	if c.Ingestion.BatchSize == 0 {
		c.Ingestion.BatchSize = 10
	}
	if c.Ingestion.MaxRetries == 0 {
		c.Ingestion.MaxRetries = 3
	}
	if c.Ingestion.RetryDelay == 0 {
		c.Ingestion.RetryDelay = time.Second
	}
	if c.Ingestion.Interval == 0 {
		c.Ingestion.Interval = time.Hour
	}
	if c.Ingestion.RunTimeout == 0 {
		c.Ingestion.RunTimeout = 30 * time.Minute
	}

	// profile
	c.Profile.EventWeights = mergeWeights(DefaultProfileWeights(), c.Profile.EventWeights)
	if c.Profile.TemporalDecayDays == 0 {
		c.Profile.TemporalDecayDays = 30
	}
	if c.Profile.LowSignalThreshold == 0 {
		c.Profile.LowSignalThreshold = 5
	}
	if c.Profile.MaxEngagements == 0 {
		c.Profile.MaxEngagements = 100
	}
	if c.Profile.BlendRatio == nil {
		ratio := DefaultBlendRatio
		c.Profile.BlendRatio = &ratio
	}
	if c.Profile.UpdateQueue == 0 {
		c.Profile.UpdateQueue = 100
	}

	// popularity
	c.Popularity.EventWeights = mergeWeights(DefaultPopularityWeights(), c.Popularity.EventWeights)
	if c.Popularity.TrendingWindow == 0 {
		c.Popularity.TrendingWindow = 48 * time.Hour
	}
	if c.Popularity.TrendingLimit == 0 {
		c.Popularity.TrendingLimit = 100
	}

	// ranking
	if c.Ranking.DefaultLimit == 0 {
		c.Ranking.DefaultLimit = 20
	}
	if c.Ranking.Weights == (RankingWeights{}) {
		c.Ranking.Weights = RankingWeights{Similarity: 0.4, Recency: 0.25, Popularity: 0.2, Exploration: 0.15}
	}
	if c.Ranking.RecencyDecayDays == 0 {
		c.Ranking.RecencyDecayDays = 7
	}
	if c.Ranking.ExplorationBoost == 0 {
		c.Ranking.ExplorationBoost = 0.3
	}
	if c.Ranking.RandomExplorationFactor == 0 {
		c.Ranking.RandomExplorationFactor = 0.1
	}
	if c.Ranking.CandidateMultiplier == 0 {
		c.Ranking.CandidateMultiplier = 3
	}
	if c.Ranking.ProfileFreshness == 0 {
		c.Ranking.ProfileFreshness = time.Hour
	}
}

func setBreakerDefaults(b *BreakerConfig) {
	if b.MaxFailures == 0 {
		b.MaxFailures = 5
	}
	if b.OpenTimeout == 0 {
		b.OpenTimeout = 30 * time.Second
	}
}

// mergeWeights returns defaults overridden by configured values
func mergeWeights(defaults, configured map[string]float64) map[string]float64 {
	for k, v := range configured {
		defaults[k] = v
	}
	return defaults
}

var knownEvents = map[string]bool{"open": true, "expand_summary": true, "like": true, "dislike": true, "scroll": true}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return err
	}

	for name, weights := range map[string]map[string]float64{"profile": cfg.Profile.EventWeights, "popularity": cfg.Popularity.EventWeights} {
		for ev := range weights {
			if !knownEvents[ev] {
				return fmt.Errorf("%s.event_weights: unknown event type %q", name, ev)
			}
		}
	}

	if cfg.Ingestion.RunTimeout < cfg.Ingestion.RetryDelay {
		return fmt.Errorf("ingestion.run_timeout must be longer than ingestion.retry_delay")
	}
	return nil
}
