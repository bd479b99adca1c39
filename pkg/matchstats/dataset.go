package matchstats

// Dataset names one of the two documents exported by the demo parser.
type Dataset string

const (
	KillfeedDataset      Dataset = "killfeed_data.json"
	UtilityDamageDataset Dataset = "utility_damage_data.json"
)

func Datasets() []Dataset {
	return []Dataset{KillfeedDataset, UtilityDamageDataset}
}

// ParseDataset maps a document file name back to its Dataset.
func ParseDataset(name string) (Dataset, bool) {
	for _, d := range Datasets() {
		if string(d) == name {
			return d, true
		}
	}
	return "", false
}

func (d Dataset) FileName() string {
	return string(d)
}
