package vibe

import (
	"sort"

	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// Leaderboard filters a rated population down to players with at least
// minGames appearances and orders it by final VIBE descending, breaking
// ties by player id so repeated runs render identically. The input slice
// is not modified.
func Leaderboard(results []types.VibeResult, minGames int) []types.VibeResult {
	board := make([]types.VibeResult, 0, len(results))
	for _, r := range results {
		if r.GamesPlayed >= minGames {
			board = append(board, r)
		}
	}

	sort.SliceStable(board, func(i, j int) bool {
		if board[i].VIBE != board[j].VIBE {
			return board[i].VIBE > board[j].VIBE
		}
		return board[i].PlayerID < board[j].PlayerID
	})

	return board
}
