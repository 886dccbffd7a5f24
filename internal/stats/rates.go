package stats

import (
	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// A team-possession-equivalent denominator: 48 minutes times the 5
// players on court for them.
const possessionMinutes = 240.0

// Free throw attempts convert to shooting possessions at the standard
// 0.44 rate.
const ftaPossessionWeight = 0.44

// RateLine holds a player's per-100-possession rates plus true shooting
// percentage.
type RateLine struct {
	Points       float64 `json:"pts_100"`
	Assists      float64 `json:"ast_100"`
	OffRebounds  float64 `json:"orb_100"`
	DefRebounds  float64 `json:"drb_100"`
	Steals       float64 `json:"stl_100"`
	Blocks       float64 `json:"blk_100"`
	Turnovers    float64 `json:"tov_100"`
	Fouls        float64 `json:"pf_100"`
	PlusMinus    float64 `json:"pm_100"`
	TrueShooting float64 `json:"ts_pct"`
}

// Possessions estimates the possessions a player was on court for. Zero or
// negative minutes clamp to a single possession so every downstream rate
// stays finite.
func Possessions(minutes float64) float64 {
	if minutes <= 0 {
		return 1
	}
	return minutes * 100 / possessionMinutes
}

// Per100 converts a season stat line into per-100-possession rates and
// true shooting. Pure function of its input.
func Per100(line types.PlayerStatLine) RateLine {
	poss := Possessions(line.Minutes)
	if poss <= 0 {
		return RateLine{}
	}

	return RateLine{
		Points:       line.Points * 100 / poss,
		Assists:      line.Assists * 100 / poss,
		OffRebounds:  line.OffRebounds * 100 / poss,
		DefRebounds:  line.DefRebounds * 100 / poss,
		Steals:       line.Steals * 100 / poss,
		Blocks:       line.Blocks * 100 / poss,
		Turnovers:    line.Turnovers * 100 / poss,
		Fouls:        line.Fouls * 100 / poss,
		PlusMinus:    line.PlusMinus * 100 / poss,
		TrueShooting: TrueShooting(line),
	}
}

// TrueShooting computes TS% = PTS / (2 * (FGA + 0.44*FTA)). Players with
// no shooting possessions score 0.0 rather than NaN.
func TrueShooting(line types.PlayerStatLine) float64 {
	tsa := line.FGAttempted + ftaPossessionWeight*line.FTAttempted
	if tsa <= 0 {
		return 0.0
	}
	return line.Points / (2 * tsa)
}
