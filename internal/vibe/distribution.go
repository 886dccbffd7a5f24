package vibe

import (
	"math"

	"github.com/courtmetrics/vibe-engine/internal/stats"
	"github.com/courtmetrics/vibe-engine/pkg/types"
)

const (
	// DefaultMinMinutes is the qualification threshold for the reference
	// population.
	DefaultMinMinutes = 200.0

	// Standard deviations are floored before any division. The tighter
	// position floor damps outlier-driven volatility in small group
	// samples.
	leagueStdFloor   = 1.0
	positionStdFloor = 0.1

	// Position groups need at least this many qualified members to get
	// their own defensive distributions.
	minGroupSize = 3
)

// Distribution is a (mean, standard deviation) pair over a qualifying
// population.
type Distribution struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// Z returns the z-score of a value against the distribution.
func (d Distribution) Z(value float64) float64 {
	return (value - d.Mean) / d.Std
}

// DefenseDistributions holds the position-scoped defensive reference
// stats for one position group.
type DefenseDistributions struct {
	DefRebounds Distribution `json:"drb_100"`
	Steals      Distribution `json:"stl_100"`
	Blocks      Distribution `json:"blk_100"`
	Fouls       Distribution `json:"pf_100"`
}

// ReferenceSet carries everything a z-score needs for one season: the
// league-wide offensive and impact distributions, plus defensive
// distributions per position group. Groups with too few qualifiers are
// simply absent from Defense.
type ReferenceSet struct {
	TrueShooting Distribution `json:"ts_pct"`
	Points       Distribution `json:"pts_100"`
	Assists      Distribution `json:"ast_100"`
	OffRebounds  Distribution `json:"orb_100"`
	Turnovers    Distribution `json:"tov_100"`
	PlusMinus    Distribution `json:"pm_100"`

	Defense map[types.PositionGroup]DefenseDistributions `json:"defense"`
}

// BuildReferenceSet computes the reference distributions for a season
// population. Players with fewer than minMinutes total minutes are excluded;
// if nobody qualifies the whole population is used so the set is never
// empty.
func BuildReferenceSet(population []types.PlayerStatLine, minMinutes float64) ReferenceSet {
	qualified := make([]types.PlayerStatLine, 0, len(population))
	for _, line := range population {
		if line.Minutes >= minMinutes {
			qualified = append(qualified, line)
		}
	}
	if len(qualified) == 0 {
		qualified = population
	}

	rates := make([]stats.RateLine, len(qualified))
	for i, line := range qualified {
		rates[i] = stats.Per100(line)
	}

	ref := ReferenceSet{
		TrueShooting: leagueDistribution(rates, func(r stats.RateLine) float64 { return r.TrueShooting }),
		Points:       leagueDistribution(rates, func(r stats.RateLine) float64 { return r.Points }),
		Assists:      leagueDistribution(rates, func(r stats.RateLine) float64 { return r.Assists }),
		OffRebounds:  leagueDistribution(rates, func(r stats.RateLine) float64 { return r.OffRebounds }),
		Turnovers:    leagueDistribution(rates, func(r stats.RateLine) float64 { return r.Turnovers }),
		PlusMinus:    leagueDistribution(rates, func(r stats.RateLine) float64 { return r.PlusMinus }),
		Defense:      make(map[types.PositionGroup]DefenseDistributions),
	}

	// Partition qualifiers by position group for the defensive pass.
	groups := make(map[types.PositionGroup][]stats.RateLine)
	for i, line := range qualified {
		pos := stats.Classify(line)
		groups[pos] = append(groups[pos], rates[i])
	}

	for pos, members := range groups {
		if len(members) < minGroupSize {
			continue
		}
		ref.Defense[pos] = DefenseDistributions{
			DefRebounds: positionDistribution(members, func(r stats.RateLine) float64 { return r.DefRebounds }),
			Steals:      positionDistribution(members, func(r stats.RateLine) float64 { return r.Steals }),
			Blocks:      positionDistribution(members, func(r stats.RateLine) float64 { return r.Blocks }),
			Fouls:       positionDistribution(members, func(r stats.RateLine) float64 { return r.Fouls }),
		}
	}

	return ref
}

func leagueDistribution(rates []stats.RateLine, pick func(stats.RateLine) float64) Distribution {
	return newDistribution(rates, pick, leagueStdFloor)
}

func positionDistribution(rates []stats.RateLine, pick func(stats.RateLine) float64) Distribution {
	return newDistribution(rates, pick, positionStdFloor)
}

func newDistribution(rates []stats.RateLine, pick func(stats.RateLine) float64, stdFloor float64) Distribution {
	values := make([]float64, len(rates))
	for i, r := range rates {
		values[i] = pick(r)
	}

	mean := meanOf(values)
	std := stdOf(values, mean)
	if std < stdFloor {
		std = stdFloor
	}

	return Distribution{Mean: mean, Std: std}
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdOf is the population standard deviation (N divisor).
func stdOf(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	variance := 0.0
	for _, v := range values {
		diff := v - mean
		variance += diff * diff
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
