package core

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agenthands/cardsmith/internal/classifier"
	"github.com/agenthands/cardsmith/internal/core/card"
	"github.com/agenthands/cardsmith/internal/core/screen"
)

var ErrEmptyQuery = errors.New("query is empty")

// Selector runs a request end to end: screen summary, classification and
// parameter resolution.
type Selector struct {
	Screen     *screen.Processor
	Classifier classifier.Classifier
	Resolver   *card.Resolver
	// Timeout bounds the classifier call; zero means no bound beyond ctx.
	Timeout time.Duration
	Logger  *zap.Logger
}

func NewSelector(c classifier.Classifier, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{
		Screen:     screen.NewProcessor(logger.Named("screen")),
		Classifier: c,
		Resolver:   card.NewResolver(logger.Named("card")),
		Logger:     logger,
	}
}

// Select returns the single most suitable card for the query. Classifier
// failures never surface; they degrade to an Info card.
func (s *Selector) Select(ctx context.Context, query, screenContent, userLocation string) ([]card.Resolved, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	in := classifier.Input{
		Query:       query,
		CurrentDate: currentDate(s.Resolver.Now()),
	}
	if strings.TrimSpace(screenContent) != "" {
		in.Context = s.Screen.Summarize(screenContent)
	}

	result := s.classify(ctx, in)
	cardType := card.ParseType(result.CardType)

	resolved := s.Resolver.Resolve(cardType, card.Params(result.Parameters), card.Input{
		Query:         query,
		ScreenContent: screenContent,
		UserLocation:  userLocation,
	})

	s.Logger.Info("card selected",
		zap.String("card_id", resolved.CardID),
		zap.String("card_name", resolved.CardName),
		zap.String("classifier_type", result.CardType),
		zap.String("reasoning", result.Reasoning))

	return []card.Resolved{resolved}, nil
}

func (s *Selector) classify(ctx context.Context, in classifier.Input) (res classifier.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("classifier panicked, using fallback", zap.Any("panic", r))
			res = classifier.Fallback(in.Query)
		}
	}()

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	res, err := s.Classifier.Classify(ctx, in)
	if err != nil {
		s.Logger.Warn("classification failed, using fallback", zap.Error(err))
		return classifier.Fallback(in.Query)
	}
	return res
}

func currentDate(now time.Time) string {
	return now.Format("2006-01-02") + " (" + now.Weekday().String() + ")"
}
