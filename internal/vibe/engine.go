package vibe

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// Engine runs the three-pass VIBE batch over one season's population:
// reference distributions first, per-player scoring fanned out across
// workers, then the league rescale. It holds no state between runs.
type Engine struct {
	minMinutes float64
	workers    int
	logger     *logrus.Logger
}

// NewEngine creates an engine. Non-positive minMinutes falls back to the
// default qualification threshold, non-positive workers to GOMAXPROCS.
func NewEngine(minMinutes float64, workers int, logger *logrus.Logger) *Engine {
	if minMinutes <= 0 {
		minMinutes = DefaultMinMinutes
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		minMinutes: minMinutes,
		workers:    workers,
		logger:     logger,
	}
}

// Rate scores the whole population. The output has one result per input
// player, in input order. Cancellation of ctx is the only error path; the
// computation itself is total over zero-defaulted inputs.
func (e *Engine) Rate(ctx context.Context, population []types.PlayerStatLine) ([]types.VibeResult, error) {
	start := time.Now()
	runID := uuid.New().String()

	log := e.logger.WithFields(logrus.Fields{
		"run_id":      runID,
		"players":     len(population),
		"min_minutes": e.minMinutes,
	})
	log.Info("Starting VIBE rating run")

	if len(population) == 0 {
		return []types.VibeResult{}, nil
	}

	// Pass 1: the reference distributions need the full population before
	// any player can be scored.
	ref := BuildReferenceSet(population, e.minMinutes)
	log.WithField("position_groups", len(ref.Defense)).Debug("Reference distributions built")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Pass 2: per-player scoring is independent once the reference set
	// exists. Results are written by index so ordering stays input
	// ordering regardless of worker scheduling.
	results := make([]types.VibeResult, len(population))
	indexes := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = Score(population[i], ref)
			}
		}()
	}

feed:
	for i := range population {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Pass 3: rescale the scored population onto the display scale.
	NormalizeLeague(results)

	log.WithFields(logrus.Fields{
		"execution_time": time.Since(start),
		"workers":        e.workers,
	}).Info("VIBE rating run completed")

	return results, nil
}
