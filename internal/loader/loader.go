// Package loader is the input boundary of the engine: it decodes stat
// populations from local files and validates them once, so the core never
// has to defend against malformed records.
package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/courtmetrics/vibe-engine/pkg/types"
)

// resultSetsPayload mirrors the stats provider's table-shaped response:
// named result sets of column headers plus untyped row arrays.
type resultSetsPayload struct {
	ResultSets []resultSet `json:"resultSets"`
}

type resultSet struct {
	Name    string              `json:"name"`
	Headers []string            `json:"headers"`
	RowSet  [][]json.RawMessage `json:"rowSet"`
}

// LoadFile reads one season's player population from a JSON file. Two
// shapes are accepted: a flat array of stat-line objects, or a provider
// dump with resultSets headers and rowSet arrays.
func LoadFile(path string) ([]types.PlayerStatLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return Decode(data)
}

// Decode parses a population from raw JSON, detecting the shape from the
// leading token.
func Decode(data []byte) ([]types.PlayerStatLine, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var lines []types.PlayerStatLine
		if err := json.Unmarshal(trimmed, &lines); err != nil {
			return nil, fmt.Errorf("failed to decode stat lines: %w", err)
		}
		return validate(lines)
	}

	var payload resultSetsPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode provider payload: %w", err)
	}
	return decodeResultSets(payload)
}

func decodeResultSets(payload resultSetsPayload) ([]types.PlayerStatLine, error) {
	if len(payload.ResultSets) == 0 {
		return nil, fmt.Errorf("provider payload has no result sets")
	}

	set := payload.ResultSets[0]
	index := make(map[string]int, len(set.Headers))
	for i, h := range set.Headers {
		index[h] = i
	}
	if _, ok := index["PLAYER_ID"]; !ok {
		return nil, fmt.Errorf("result set %q has no PLAYER_ID column", set.Name)
	}

	lines := make([]types.PlayerStatLine, 0, len(set.RowSet))
	for rowNum, row := range set.RowSet {
		line, err := decodeRow(index, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		lines = append(lines, line)
	}
	return validate(lines)
}

func decodeRow(index map[string]int, row []json.RawMessage) (types.PlayerStatLine, error) {
	num := func(column string) (float64, error) {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return 0, nil
		}
		return numericCell(column, row[i])
	}
	str := func(column string) string {
		i, ok := index[column]
		if !ok || i >= len(row) {
			return ""
		}
		var s string
		if err := json.Unmarshal(row[i], &s); err != nil {
			return ""
		}
		return s
	}

	var line types.PlayerStatLine
	var err error

	columns := []struct {
		name string
		dst  *float64
	}{
		{"MIN", &line.Minutes},
		{"PTS", &line.Points},
		{"AST", &line.Assists},
		{"OREB", &line.OffRebounds},
		{"DREB", &line.DefRebounds},
		{"FGM", &line.FGMade},
		{"FGA", &line.FGAttempted},
		{"FTM", &line.FTMade},
		{"FTA", &line.FTAttempted},
		{"TOV", &line.Turnovers},
		{"STL", &line.Steals},
		{"BLK", &line.Blocks},
		{"PF", &line.Fouls},
		{"PLUS_MINUS", &line.PlusMinus},
	}
	for _, c := range columns {
		if *c.dst, err = num(c.name); err != nil {
			return line, err
		}
	}

	id, err := num("PLAYER_ID")
	if err != nil {
		return line, err
	}
	line.PlayerID = int(id)

	gp, err := num("GP")
	if err != nil {
		return line, err
	}
	line.GamesPlayed = int(gp)

	line.Name = str("PLAYER_NAME")
	line.Team = str("TEAM_ABBREVIATION")

	return line, nil
}

// numericCell coerces a raw cell to float64. Nulls and absent cells are 0;
// anything non-numeric is a contract violation and rejected here rather
// than deeper in the pipeline.
func numericCell(column string, raw json.RawMessage) (float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, nil
	}

	var f float64
	if err := json.Unmarshal(trimmed, &f); err == nil {
		return f, nil
	}

	// Some provider dumps quote their numbers.
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		var quoted float64
		if _, err := fmt.Sscanf(s, "%g", &quoted); err == nil {
			return quoted, nil
		}
	}

	return 0, fmt.Errorf("column %s is not numeric: %s", column, trimmed)
}

func validate(lines []types.PlayerStatLine) ([]types.PlayerStatLine, error) {
	seen := make(map[int]struct{}, len(lines))
	for i, line := range lines {
		if line.PlayerID == 0 {
			return nil, fmt.Errorf("record %d has no player id", i)
		}
		if _, dup := seen[line.PlayerID]; dup {
			return nil, fmt.Errorf("duplicate player id %d", line.PlayerID)
		}
		seen[line.PlayerID] = struct{}{}
	}
	return lines, nil
}
