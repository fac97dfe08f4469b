package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/agenthands/cardsmith/internal/cache"
	"github.com/agenthands/cardsmith/internal/llm"
)

// LLMClassifier asks a language model to pick the card type and extract its
// parameters.
type LLMClassifier struct {
	LLM          llm.Client
	SystemPrompt string
	Temperature  float32
	MaxTokens    int

	// Cache and Limiter are optional.
	Cache    cache.Cache
	CacheTTL time.Duration
	Limiter  *rate.Limiter

	Logger *zap.Logger
}

func NewLLMClassifier(client llm.Client, logger *zap.Logger) *LLMClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LLMClassifier{
		LLM:          client,
		SystemPrompt: DefaultSystemPrompt,
		Temperature:  0.3,
		Logger:       logger,
	}
}

func (c *LLMClassifier) Classify(ctx context.Context, in Input) (Result, error) {
	key := cache.Key("classify", in.Query, in.Context, in.CurrentDate)
	if res, ok := c.cached(key); ok {
		c.Logger.Debug("classifier cache hit", zap.String("query", in.Query))
		return res, nil
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return Result{}, fmt.Errorf("classifier rate limit: %w", err)
		}
	}

	reply, err := c.LLM.Complete(ctx, llm.Request{
		System:      c.SystemPrompt,
		Prompt:      UserPrompt(in),
		Temperature: c.Temperature,
		MaxTokens:   c.MaxTokens,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to classify query: %w", err)
	}
	c.Logger.Debug("classifier reply", zap.String("content", reply))

	res, err := ParseResult(reply)
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse classification: %w", err)
	}

	c.store(key, res)
	return res, nil
}

func (c *LLMClassifier) cached(key string) (Result, bool) {
	if c.Cache == nil {
		return Result{}, false
	}
	raw, ok := c.Cache.Get(key)
	if !ok {
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal(raw, &res); err != nil {
		return Result{}, false
	}
	return res, true
}

func (c *LLMClassifier) store(key string, res Result) {
	if c.Cache == nil || c.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		c.Logger.Warn("failed to encode classification for cache", zap.Error(err))
		return
	}
	c.Cache.Set(key, raw, c.CacheTTL)
}
