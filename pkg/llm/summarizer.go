package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/sashabaranov/go-openai"

	"github.com/umputun/feedrank/pkg/config"
	"github.com/umputun/feedrank/pkg/domain"
)

// ErrInvalidResponse is returned when the provider response is missing or fails schema validation
var ErrInvalidResponse = errors.New("invalid provider response")

const maxPromptContent = 6000

// Summarizer uses LLM to summarize articles into a summary, key facts and tags
type Summarizer struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
	schema    *jsonschema.Schema
	validate  *validator.Validate
	guard     *callGuard[openai.ChatCompletionResponse]
}

// NewSummarizer creates a new LLM summarizer
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Summarizer{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
		schema:    summarySchema(),
		validate:  validator.New(),
		guard:     newCallGuard[openai.ChatCompletionResponse]("summarization", cfg.RequestsPerSecond, cfg.Breaker),
	}
}

// default system prompt for article summarization
const defaultSystemPrompt = `You are an editor who condenses news articles for a personalized reader.
For each article return a JSON object with:
- summary: 2-4 sentences that capture the main story and why it matters. Write directly about the subject matter, never use phrases like "The article discusses" or "The author explains". Write in the same language as the article.
- keyFacts: 3-5 short, self-contained factual statements taken from the article (numbers, names, dates, outcomes).
- tags: 2-5 short topic labels (one to three words each, e.g. "machine learning", "climate", "golang"). Prefer broad, reusable topics over article-specific phrases.

Respond with the JSON object only.`

// summarySchema returns the response schema sent with structured output requests
func summarySchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true, ExpandedStruct: true}
	schema := r.Reflect(&domain.Summary{})
	schema.Version = ""
	schema.ID = ""
	return schema
}

// Summarize produces a summary, key facts and tags for an article.
// Responses failing schema validation return an error wrapping ErrInvalidResponse.
func (s *Summarizer) Summarize(ctx context.Context, title, content string) (*domain.Summary, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("nothing to summarize")
	}

	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: s.buildPrompt(title, content)},
		},
	}

	// add structured output format if enabled
	if s.config.UseJSONSchema {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "article_summary",
				Schema: s.schema,
				Strict: true,
			},
		}
	}

	resp, err := s.guard.do(ctx, func() (openai.ChatCompletionResponse, error) {
		return s.client.CreateChatCompletion(ctx, req)
	})
	if err != nil {
		return nil, fmt.Errorf("summarization request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from llm: %w", ErrInvalidResponse)
	}

	return s.parseResponse(resp.Choices[0].Message.Content)
}

// buildPrompt creates the user prompt for a single article
func (s *Summarizer) buildPrompt(title, content string) string {
	var sb strings.Builder
	sb.WriteString("Summarize this article.\n\n")
	sb.WriteString(fmt.Sprintf("Title: %s\n", strings.TrimSpace(title)))
	if content = strings.TrimSpace(content); content != "" {
		sb.WriteString(fmt.Sprintf("Content: %s\n", truncateRunes(content, maxPromptContent)))
	}
	if !s.config.UseJSONSchema {
		sb.WriteString("\nRespond with a JSON object with fields summary (string), keyFacts (array of strings) and tags (array of strings).")
	}
	return sb.String()
}

// parseResponse extracts, normalizes and validates the summary object
func (s *Summarizer) parseResponse(content string) (*domain.Summary, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || start >= end {
		return nil, fmt.Errorf("no json object found in response: %w", ErrInvalidResponse)
	}

	var summary domain.Summary
	if err := json.Unmarshal([]byte(content[start:end+1]), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse json response: %v: %w", err, ErrInvalidResponse)
	}

	summary.Summary = strings.TrimSpace(summary.Summary)
	summary.KeyFacts = trimAll(summary.KeyFacts)
	summary.Tags = trimAll(summary.Tags)

	if err := s.validate.Struct(summary); err != nil {
		return nil, fmt.Errorf("summary validation failed: %v: %w", err, ErrInvalidResponse)
	}
	return &summary, nil
}

// trimAll trims strings and drops empty ones, nil stays nil
func trimAll(values []string) []string {
	if values == nil {
		return nil
	}
	res := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res = append(res, v)
		}
	}
	return res
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
