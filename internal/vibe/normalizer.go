package vibe

import (
	"math"

	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// Display scale for the final score.
const (
	displayMean   = 100.0
	displaySpread = 15.0
)

// Spreads below this are accumulated rounding noise from identical
// composites, not real deviation.
const minSpread = 1e-9

// NormalizeLeague rescales a full population of shrunk composites onto the
// display scale (mean 100, spread 15), writing the final VIBE on each
// result rounded to one decimal. The rescale is only meaningful over the
// complete population for a season; an empty slice is returned unchanged.
func NormalizeLeague(results []types.VibeResult) []types.VibeResult {
	if len(results) == 0 {
		return results
	}

	shrunk := make([]float64, len(results))
	for i, r := range results {
		shrunk[i] = r.ShrunkVIBE
	}

	mean := meanOf(shrunk)
	std := stdOf(shrunk, mean)
	if std < minSpread {
		std = 1.0
	}

	for i := range results {
		v := displayMean + displaySpread*(results[i].ShrunkVIBE-mean)/std
		results[i].VIBE = math.Round(v*10) / 10
	}

	return results
}
