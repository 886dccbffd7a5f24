package types

// PositionGroup buckets players into broad defensive roles. It is derived
// from a stat line, never stored as identity.
type PositionGroup string

const (
	PositionGuard PositionGroup = "GUARD"
	PositionWing  PositionGroup = "WING"
	PositionBig   PositionGroup = "BIG"
)

// PlayerStatLine is one season-aggregate box-score record for a single
// player. It is caller-owned input: the engine only reads it, and missing
// fields are simply zero.
type PlayerStatLine struct {
	PlayerID    int     `json:"player_id"`
	Name        string  `json:"name,omitempty"`
	Team        string  `json:"team,omitempty"`
	GamesPlayed int     `json:"games_played"`
	Minutes     float64 `json:"minutes"`
	Points      float64 `json:"points"`
	Assists     float64 `json:"assists"`
	OffRebounds float64 `json:"offensive_rebounds"`
	DefRebounds float64 `json:"defensive_rebounds"`
	FGMade      float64 `json:"field_goals_made"`
	FGAttempted float64 `json:"field_goals_attempted"`
	FTMade      float64 `json:"free_throws_made"`
	FTAttempted float64 `json:"free_throws_attempted"`
	Turnovers   float64 `json:"turnovers"`
	Steals      float64 `json:"steals"`
	Blocks      float64 `json:"blocks"`
	Fouls       float64 `json:"personal_fouls"`
	PlusMinus   float64 `json:"plus_minus"`
}

// VibeResult is the per-player output of one rating run. VIBE is unset
// until the league rescale pass has run over the whole population.
type VibeResult struct {
	PlayerID     int           `json:"player_id"`
	Name         string        `json:"name,omitempty"`
	Team         string        `json:"team,omitempty"`
	GamesPlayed  int           `json:"games_played"`
	Position     PositionGroup `json:"position_group"`
	OVIBE        float64       `json:"ovibe"`
	DVIBE        float64       `json:"dvibe"`
	Impact       float64       `json:"impact"`
	Skill        float64       `json:"skill"`
	RawVIBE      float64       `json:"vibe_raw"`
	ShrunkVIBE   float64       `json:"vibe_shrunk"`
	Minutes      float64       `json:"minutes"`
	ShrinkFactor float64       `json:"shrink_factor"`
	VIBE         float64       `json:"vibe"`
}
