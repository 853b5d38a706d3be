package chat

import (
	"context"
	"strings"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/ai/embedding"
	"github.com/nextalk-ai/nextalk/pkg/ai/llm"
	"github.com/nextalk-ai/nextalk/pkg/logx"
)

const (
	fallbackEchoPrefix = "LLM fallback echo: "
	fallbackEchoLimit  = 500

	fallbackEmbeddingDims = 128
)

// LLMGateway shields the turn flow from provider failures. Generate never
// returns an error: when no client is configured or the provider call fails,
// it serves a deterministic echo of the prompt instead.
type LLMGateway struct {
	client  *llm.Client
	model   string
	timeout time.Duration
}

// NewLLMGateway creates a gateway. A nil client means no provider is
// configured and every call serves the fallback echo.
func NewLLMGateway(client *llm.Client, model string, timeout time.Duration) *LLMGateway {
	return &LLMGateway{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// Reconfigure swaps the underlying client at runtime, useful for tests
func (g *LLMGateway) Reconfigure(client *llm.Client) {
	g.client = client
}

// Generate produces the assistant reply for the prompt
func (g *LLMGateway) Generate(ctx context.Context, prompt string) string {
	if g.client == nil {
		return fallbackEcho(prompt)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	opts := []llm.Option{}
	if g.model != "" {
		opts = append(opts, llm.WithModel(g.model))
	}

	resp, err := g.client.Chat(ctx, []llm.Message{llm.NewUserMessage(prompt)}, opts...)
	if err != nil {
		logx.WithFields(logx.Fields{"error": err.Error()}).
			Warnf("llm call failed, serving fallback echo")
		return fallbackEcho(prompt)
	}

	return strings.TrimSpace(resp.Message.Content)
}

// fallbackEcho echoes the head of the prompt with newlines flattened
func fallbackEcho(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > fallbackEchoLimit {
		runes = runes[:fallbackEchoLimit]
	}
	truncated := strings.ReplaceAll(string(runes), "\n", " ")
	return fallbackEchoPrefix + truncated
}

// EmbeddingGateway mirrors LLMGateway for embeddings. Embed never returns an
// error: without a provider it derives a stable vector from the text itself
// so similarity flows stay testable.
type EmbeddingGateway struct {
	client     *embedding.Client
	model      string
	dimensions int
	timeout    time.Duration
}

// NewEmbeddingGateway creates a gateway. A nil client means every call
// serves the deterministic fallback vector.
func NewEmbeddingGateway(client *embedding.Client, model string, dimensions int, timeout time.Duration) *EmbeddingGateway {
	return &EmbeddingGateway{
		client:     client,
		model:      model,
		dimensions: dimensions,
		timeout:    timeout,
	}
}

// Embed produces a vector for the text
func (g *EmbeddingGateway) Embed(ctx context.Context, text string) []float32 {
	if g.client == nil {
		return fallbackEmbedding(text)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	opts := []embedding.Option{}
	if g.model != "" {
		opts = append(opts, embedding.WithModel(g.model))
	}
	if g.dimensions > 0 {
		opts = append(opts, embedding.WithDimensions(g.dimensions))
	}

	emb, err := g.client.EmbedQuery(ctx, text, opts...)
	if err != nil {
		logx.WithFields(logx.Fields{"error": err.Error()}).
			Warnf("embedding call failed, serving fallback vector")
		return fallbackEmbedding(text)
	}

	return emb.Vector
}

// fallbackEmbedding derives a fixed-length vector from the character codes
// of the text, zero-padded
func fallbackEmbedding(text string) []float32 {
	vec := make([]float32, 0, fallbackEmbeddingDims)
	for _, r := range text {
		if len(vec) == fallbackEmbeddingDims {
			break
		}
		vec = append(vec, float32(r%97)/97.0)
	}
	for len(vec) < fallbackEmbeddingDims {
		vec = append(vec, 0)
	}
	return vec
}
