package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/agenthands/cardsmith/internal/cache"
	"github.com/agenthands/cardsmith/internal/classifier"
	"github.com/agenthands/cardsmith/internal/config"
	"github.com/agenthands/cardsmith/internal/core"
	"github.com/agenthands/cardsmith/internal/core/card"
	"github.com/agenthands/cardsmith/internal/llm"
)

// UserLocationHeader carries the caller's coarse location, e.g. an airport code.
const UserLocationHeader = "X-Brain-User-Location"

type Server struct {
	Selector *core.Selector
	Logger   *zap.Logger
	// MaxBodyBytes caps the /initial request body; zero disables the cap.
	MaxBodyBytes int64
}

func NewServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	c, err := newClassifier(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	sel := core.NewSelector(c, logger)
	sel.Timeout = cfg.Classifier.Timeout()

	return &Server{
		Selector:     sel,
		Logger:       logger,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
	}, nil
}

func newClassifier(ctx context.Context, cfg *config.Config, logger *zap.Logger) (classifier.Classifier, error) {
	client, err := llm.NewClient(ctx, cfg.LLM)
	if errors.Is(err, llm.ErrNoProvider) {
		logger.Warn("no LLM provider configured, using keyword classifier")
		return classifier.NewKeywordClassifier(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	c := classifier.NewLLMClassifier(client, logger.Named("classifier"))
	c.Temperature = cfg.LLM.Temperature
	c.MaxTokens = cfg.LLM.MaxTokens
	if cfg.Classifier.SystemPrompt != "" {
		c.SystemPrompt = cfg.Classifier.SystemPrompt
	}
	if ttl := cfg.Classifier.CacheTTL(); ttl > 0 {
		c.Cache = cache.NewMemoryCache(ttl, 2*ttl)
		c.CacheTTL = ttl
	}
	if rps := cfg.Classifier.RequestsPerSecond; rps > 0 {
		burst := cfg.Classifier.Burst
		if burst <= 0 {
			burst = 1
		}
		c.Limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}

	logger.Info("LLM classifier ready",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))
	return c, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(
		ginzap.Ginzap(s.Logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(s.Logger, true),
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", UserLocationHeader},
			MaxAge:          12 * time.Hour,
		}),
	)

	r.GET("/", s.Root)
	r.GET("/health", s.Health)
	r.POST("/initial", s.Initial)

	return r
}

type InitialRequest struct {
	Query         string `json:"query" binding:"required"`
	ScreenContent string `json:"screen_content"`
}

type InitialResponse struct {
	Query    string          `json:"query"`
	CardList []card.Resolved `json:"card_list"`
}

func (s *Server) Initial(c *gin.Context) {
	if s.MaxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.MaxBodyBytes)
	}

	var req InitialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	cards, err := s.Selector.Select(c.Request.Context(), req.Query, req.ScreenContent, c.GetHeader(UserLocationHeader))
	if errors.Is(err, core.ErrEmptyQuery) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		s.Logger.Error("failed to select card", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, InitialResponse{Query: req.Query, CardList: cards})
}

func (s *Server) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Initial API is running"})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
