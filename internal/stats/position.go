package stats

import (
	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// Classification thresholds, evaluated rebounds first.
const (
	bigReboundsPerGame  = 7.0
	guardAssistsPerGame = 4.0
)

// Classify assigns a player to a position group from a rebound/assist
// heuristic: heavy rebounders are BIGs, heavy distributors are GUARDs,
// everyone else is a WING. Total and deterministic.
func Classify(line types.PlayerStatLine) types.PositionGroup {
	games := line.GamesPlayed
	if games < 1 {
		games = 1
	}

	rebPerGame := (line.OffRebounds + line.DefRebounds) / float64(games)
	astPerGame := line.Assists / float64(games)

	switch {
	case rebPerGame >= bigReboundsPerGame:
		return types.PositionBig
	case astPerGame >= guardAssistsPerGame:
		return types.PositionGuard
	default:
		return types.PositionWing
	}
}
