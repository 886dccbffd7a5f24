package vibe

import (
	"github.com/courtmetrics/vibe-engine/internal/stats"
	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// BoxScore is the quick, league-stats-free VIBE estimate: raw offensive
// and defensive box-score value per 100 possessions, blended 60/40. It is
// the fallback when no reference population exists (single-player lookups,
// partial seasons) and is not comparable to the rescaled VIBE.
func BoxScore(line types.PlayerStatLine) float64 {
	if line.Minutes <= 0 {
		return 0.0
	}

	poss := stats.Possessions(line.Minutes)
	if poss <= 0 {
		return 0.0
	}

	fgMissed := line.FGAttempted - line.FGMade
	ftMissed := line.FTAttempted - line.FTMade

	offRaw := line.Points +
		0.7*line.Assists +
		0.8*line.OffRebounds -
		0.7*fgMissed -
		0.4*ftMissed -
		line.Turnovers

	defRaw := 1.0*line.DefRebounds +
		1.5*line.Steals +
		1.3*line.Blocks -
		0.5*line.Fouls

	offense := 100 * offRaw / poss
	defense := 100 * defRaw / poss

	return skillOffenseShare*offense + skillDefenseShare*defense
}
