package matchstats

// Container ids of the two tables on the page.
const (
	ScoreboardContainer    = "scoreboard"
	UtilityDamageContainer = "utilityDamage"
)

var (
	scoreboardHeaders    = []string{"Username", "Kills", "Deaths", "Assists", "KD Ratio"}
	utilityDamageHeaders = []string{"Player", "HE Damage", "Molotov Damage", "Utility Damage"}
)

// Row is one rendered table row, one string per cell.
type Row []string

type Table struct {
	ContainerID string   `json:"-"`
	Headers     []string `json:"headers"`
	Rows        []Row    `json:"rows"`
}

// NewScoreboardTable renders one row per entry. A nil scoreboard yields the
// empty table shown when the killfeed could not be loaded.
func NewScoreboardTable(scoreboard Scoreboard) Table {
	rows := make([]Row, 0, len(scoreboard))
	for _, entry := range scoreboard {
		rows = append(rows, entry.Row())
	}
	return Table{
		ContainerID: ScoreboardContainer,
		Headers:     scoreboardHeaders,
		Rows:        rows,
	}
}

func NewUtilityDamageTable(damage UtilityDamage) Table {
	rows := make([]Row, 0, len(damage))
	for _, entry := range damage {
		rows = append(rows, entry.Row())
	}
	return Table{
		ContainerID: UtilityDamageContainer,
		Headers:     utilityDamageHeaders,
		Rows:        rows,
	}
}
