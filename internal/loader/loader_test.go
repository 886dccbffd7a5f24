package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_FlatArray(t *testing.T) {
	data := []byte(`[
		{"player_id": 201939, "name": "Stephen Curry", "team": "GSW", "games_played": 74, "minutes": 2412, "points": 1956, "assists": 380},
		{"player_id": 203999, "minutes": 1800}
	]`)

	lines, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 201939, lines[0].PlayerID)
	assert.Equal(t, "Stephen Curry", lines[0].Name)
	assert.Equal(t, 1956.0, lines[0].Points)

	// Absent fields default to zero.
	assert.Equal(t, 0.0, lines[1].Points)
	assert.Equal(t, 0, lines[1].GamesPlayed)
}

func TestDecode_ResultSets(t *testing.T) {
	data := []byte(`{
		"resultSets": [{
			"name": "LeagueDashPlayerStats",
			"headers": ["PLAYER_ID", "PLAYER_NAME", "TEAM_ABBREVIATION", "GP", "MIN", "PTS", "AST", "OREB", "DREB", "FGM", "FGA", "FTM", "FTA", "TOV", "STL", "BLK", "PF", "PLUS_MINUS"],
			"rowSet": [
				[1628369, "Jayson Tatum", "BOS", 74, 2732, 1972, 361, 66, 537, 661, 1442, 431, 521, 189, 74, 43, 158, 512],
				[1629029, "Luka Doncic", "DAL", 70, 2624, null, "2370", 57, 569, 804, 1652, 556, 715, 280, 99, 38, 151, 303]
			]
		}]
	}`)

	lines, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 1628369, lines[0].PlayerID)
	assert.Equal(t, "Jayson Tatum", lines[0].Name)
	assert.Equal(t, "BOS", lines[0].Team)
	assert.Equal(t, 74, lines[0].GamesPlayed)
	assert.Equal(t, 2732.0, lines[0].Minutes)
	assert.Equal(t, 512.0, lines[0].PlusMinus)

	// Nulls come through as zero, quoted numbers are coerced.
	assert.Equal(t, 0.0, lines[1].Points)
	assert.Equal(t, 2370.0, lines[1].Assists)
}

func TestDecode_ResultSets_MissingColumnsDefaultToZero(t *testing.T) {
	data := []byte(`{
		"resultSets": [{
			"headers": ["PLAYER_ID", "MIN"],
			"rowSet": [[99, 123.5]]
		}]
	}`)

	lines, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 99, lines[0].PlayerID)
	assert.Equal(t, 123.5, lines[0].Minutes)
	assert.Equal(t, 0.0, lines[0].Points)
}

func TestDecode_Rejections(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty input", ``},
		{"no result sets", `{"resultSets": []}`},
		{"no player id column", `{"resultSets": [{"headers": ["MIN"], "rowSet": [[100]]}]}`},
		{"non-numeric cell", `{"resultSets": [{"headers": ["PLAYER_ID", "MIN"], "rowSet": [[1, {"bad": true}]]}]}`},
		{"zero player id", `[{"minutes": 100}]`},
		{"duplicate player id", `[{"player_id": 7}, {"player_id": 7}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "players.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"player_id": 12, "minutes": 2000}]`), 0o644))

	lines, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 12, lines[0].PlayerID)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
