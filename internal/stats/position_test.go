package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtmetrics/vibe-engine/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line types.PlayerStatLine
		want types.PositionGroup
	}{
		{
			name: "heavy rebounder is a big",
			line: types.PlayerStatLine{GamesPlayed: 70, OffRebounds: 210, DefRebounds: 350, Assists: 100},
			want: types.PositionBig,
		},
		{
			name: "heavy distributor is a guard",
			line: types.PlayerStatLine{GamesPlayed: 70, OffRebounds: 35, DefRebounds: 175, Assists: 560},
			want: types.PositionGuard,
		},
		{
			name: "neither threshold is a wing",
			line: types.PlayerStatLine{GamesPlayed: 70, OffRebounds: 70, DefRebounds: 210, Assists: 140},
			want: types.PositionWing,
		},
		{
			name: "rebound check outranks assist check",
			line: types.PlayerStatLine{GamesPlayed: 10, OffRebounds: 30, DefRebounds: 50, Assists: 50},
			want: types.PositionBig,
		},
		{
			name: "zero games floors to one game",
			line: types.PlayerStatLine{GamesPlayed: 0, OffRebounds: 4, DefRebounds: 4, Assists: 2},
			want: types.PositionBig,
		},
		{
			name: "empty line is a wing",
			line: types.PlayerStatLine{},
			want: types.PositionWing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.line))
		})
	}
}
