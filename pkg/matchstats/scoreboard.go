package matchstats

import (
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

type ScoreboardEntry struct {
	Player  string  `json:"player"`
	Kills   int     `json:"kills"`
	Deaths  int     `json:"deaths"`
	Assists int     `json:"assists"`
	KD      float64 `json:"kd"`
}

// Scoreboard holds the killfeed entries in document order.
type Scoreboard []ScoreboardEntry

type scoreboardRecord struct {
	Kills   *int     `json:"kills" validate:"required,gte=0"`
	Deaths  *int     `json:"deaths" validate:"required,gte=0"`
	Assists *int     `json:"assists" validate:"required,gte=0"`
	KD      *float64 `json:"kd" validate:"required,gte=0"`
}

// DecodeScoreboard reads a killfeed document: a JSON object keyed by player
// name whose values carry kills, deaths, assists and kd.
func DecodeScoreboard(r io.Reader) (Scoreboard, error) {
	var scoreboard Scoreboard
	positions := make(map[string]int)

	err := decodeObject(r, func(player string, iter *jsoniter.Iterator) error {
		var record scoreboardRecord
		if err := readRecord(iter, player, &record); err != nil {
			return err
		}

		entry := ScoreboardEntry{
			Player:  player,
			Kills:   *record.Kills,
			Deaths:  *record.Deaths,
			Assists: *record.Assists,
			KD:      *record.KD,
		}
		if i, ok := positions[player]; ok {
			scoreboard[i] = entry
			return nil
		}
		positions[player] = len(scoreboard)
		scoreboard = append(scoreboard, entry)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", KillfeedDataset)
	}
	return scoreboard, nil
}

// Row projects the entry into the scoreboard columns: name, kills, deaths,
// assists and the kd ratio with two decimals.
func (e ScoreboardEntry) Row() Row {
	return Row{
		e.Player,
		strconv.Itoa(e.Kills),
		strconv.Itoa(e.Deaths),
		strconv.Itoa(e.Assists),
		FormatRatio(e.KD),
	}
}
