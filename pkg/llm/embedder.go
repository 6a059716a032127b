package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/vector"
)

// Embedder converts text into fixed-dimension vectors with an OpenAI-compatible embeddings API
type Embedder struct {
	client *openai.Client
	config config.EmbeddingConfig
	guard  *callGuard[openai.EmbeddingResponse]
}

// NewEmbedder creates a new embedding provider client
func NewEmbedder(cfg config.EmbeddingConfig) *Embedder {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 64
	}
	return &Embedder{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
		guard:  newCallGuard[openai.EmbeddingResponse]("embedding", cfg.RequestsPerSecond, cfg.Breaker),
	}
}

// Embed returns the embedding of a single text
func (e *Embedder) Embed(ctx context.Context, text string) ([]float64, error) {
	res, err := e.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return res[0], nil
}

// EmbedBatch returns embeddings in input order, requests are split by the configured batch size
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return [][]float64{}, nil
	}
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			return nil, fmt.Errorf("empty text at position %d", i)
		}
	}

	res := make([][]float64, 0, len(texts))
	for start := 0; start < len(texts); start += e.config.BatchSize {
		end := min(start+e.config.BatchSize, len(texts))
		vectors, err := e.embedChunk(ctx, texts[start:end])
		if err != nil {
			return nil, err
		}
		res = append(res, vectors...)
	}
	return res, nil
}

func (e *Embedder) embedChunk(ctx context.Context, texts []string) ([][]float64, error) {
	req := openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.config.Model),
	}
	// only text-embedding-3 and later accept a dimensions parameter
	if e.config.Dimensions > 0 && strings.HasPrefix(e.config.Model, "text-embedding-3") {
		req.Dimensions = e.config.Dimensions
	}

	resp, err := e.guard.do(ctx, func() (openai.EmbeddingResponse, error) {
		return e.client.CreateEmbeddings(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d: %w", len(texts), len(resp.Data), ErrInvalidResponse)
	}

	res := make([][]float64, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) || res[d.Index] != nil {
			return nil, fmt.Errorf("unexpected embedding index %d: %w", d.Index, ErrInvalidResponse)
		}
		if e.config.Dimensions > 0 && len(d.Embedding) != e.config.Dimensions {
			return nil, fmt.Errorf("embedding dimension %d, expected %d: %w", len(d.Embedding), e.config.Dimensions, ErrInvalidResponse)
		}
		res[d.Index] = vector.FromFloat32(d.Embedding)
	}
	return res, nil
}
