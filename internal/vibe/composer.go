package vibe

import (
	"github.com/courtmetrics/vibe-engine/internal/stats"
	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// OVIBE component weights.
const (
	weightTrueShooting = 1.8
	weightPoints       = 1.2
	weightAssists      = 1.3
	weightOffRebounds  = 0.8
	weightTurnovers    = 1.4
)

// DVIBE component weights, applied against the player's own position
// group.
const (
	weightSteals      = 1.3
	weightBlocks      = 1.1
	weightDefRebounds = 0.5
	weightFouls       = 1.0
)

// Blend weights and the shrinkage half-point.
const (
	skillOffenseShare = 0.6
	skillDefenseShare = 0.4
	blendSkillShare   = 0.65
	blendImpactShare  = 0.35
	shrinkageMinutes  = 600.0
)

// Score computes the full pre-rescale VIBE breakdown for one player
// against a season's reference set. It never fails: missing stats are
// zeros, and a position group without its own defensive distributions
// contributes nothing to DVIBE.
func Score(line types.PlayerStatLine, ref ReferenceSet) types.VibeResult {
	rates := stats.Per100(line)
	position := stats.Classify(line)

	ovibe := weightTrueShooting*ref.TrueShooting.Z(rates.TrueShooting) +
		weightPoints*ref.Points.Z(rates.Points) +
		weightAssists*ref.Assists.Z(rates.Assists) +
		weightOffRebounds*ref.OffRebounds.Z(rates.OffRebounds) -
		weightTurnovers*ref.Turnovers.Z(rates.Turnovers)

	dvibe := 0.0
	if def, ok := ref.Defense[position]; ok {
		dvibe = weightSteals*def.Steals.Z(rates.Steals) +
			weightBlocks*def.Blocks.Z(rates.Blocks) +
			weightDefRebounds*def.DefRebounds.Z(rates.DefRebounds) -
			weightFouls*def.Fouls.Z(rates.Fouls)
	}

	impact := ref.PlusMinus.Z(rates.PlusMinus)

	skill := skillOffenseShare*ovibe + skillDefenseShare*dvibe
	raw := blendSkillShare*skill + blendImpactShare*impact

	// Low-minute players regress toward zero deviation from average;
	// exactly shrinkageMinutes minutes is the half-shrinkage point.
	shrink := line.Minutes / (line.Minutes + shrinkageMinutes)
	if line.Minutes <= 0 {
		shrink = 0
	}

	return types.VibeResult{
		PlayerID:     line.PlayerID,
		Name:         line.Name,
		Team:         line.Team,
		GamesPlayed:  line.GamesPlayed,
		Position:     position,
		OVIBE:        ovibe,
		DVIBE:        dvibe,
		Impact:       impact,
		Skill:        skill,
		RawVIBE:      raw,
		ShrunkVIBE:   raw * shrink,
		Minutes:      line.Minutes,
		ShrinkFactor: shrink,
	}
}
