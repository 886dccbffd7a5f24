// Package service ties the rating engine to the season-keyed result
// store. It is the entry point surrounding applications call; the engine
// underneath stays a pure function of (population, config).
package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/courtmetrics/vibe-engine/internal/store"
	"github.com/courtmetrics/vibe-engine/internal/vibe"
	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// Service memoizes completed rating runs per season.
type Service struct {
	engine *vibe.Engine
	store  *store.ResultStore
	logger *logrus.Logger
}

// New creates a rating service around an engine and a result store.
func New(engine *vibe.Engine, resultStore *store.ResultStore, logger *logrus.Logger) *Service {
	return &Service{
		engine: engine,
		store:  resultStore,
		logger: logger,
	}
}

// RateSeason returns the rated population for a season, recomputing only
// when the store has no live entry. The population is the caller's
// responsibility and must be the complete season input (the league
// rescale is only meaningful over a stable population).
func (s *Service) RateSeason(ctx context.Context, season string, population []types.PlayerStatLine) ([]types.VibeResult, error) {
	if cached, ok := s.store.Get(season); ok {
		s.logger.WithFields(logrus.Fields{
			"season":  season,
			"players": len(cached),
		}).Debug("Serving season ratings from store")
		return cached, nil
	}

	results, err := s.engine.Rate(ctx, population)
	if err != nil {
		return nil, err
	}

	s.store.Put(season, results)
	return results, nil
}

// Invalidate drops a season's memoized results so the next RateSeason
// recomputes.
func (s *Service) Invalidate(season string) {
	s.store.Invalidate(season)
	s.logger.WithField("season", season).Info("Season ratings invalidated")
}
