package matchstats

import (
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// UtilityEntry is the grenade damage dealt by one player. UtilityDamage is
// the HE and molotov damage combined, as exported upstream.
type UtilityEntry struct {
	Player        string  `json:"player"`
	HEDamage      float64 `json:"he_damage"`
	MolotovDamage float64 `json:"molotov_damage"`
	UtilityDamage float64 `json:"utility_damage"`
}

type UtilityDamage []UtilityEntry

type utilityRecord struct {
	HEDamage      *float64 `json:"he_damage" validate:"required,gte=0"`
	MolotovDamage *float64 `json:"molotov_damage" validate:"required,gte=0"`
	UtilityDamage *float64 `json:"utility_damage" validate:"required,gte=0"`
}

func DecodeUtilityDamage(r io.Reader) (UtilityDamage, error) {
	var damage UtilityDamage
	positions := make(map[string]int)

	err := decodeObject(r, func(player string, iter *jsoniter.Iterator) error {
		var record utilityRecord
		if err := readRecord(iter, player, &record); err != nil {
			return err
		}

		entry := UtilityEntry{
			Player:        player,
			HEDamage:      *record.HEDamage,
			MolotovDamage: *record.MolotovDamage,
			UtilityDamage: *record.UtilityDamage,
		}
		if i, ok := positions[player]; ok {
			damage[i] = entry
			return nil
		}
		positions[player] = len(damage)
		damage = append(damage, entry)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode %s", UtilityDamageDataset)
	}
	return damage, nil
}

// Row renders every damage value the way it appears in the document, without
// rounding.
func (e UtilityEntry) Row() Row {
	return Row{
		e.Player,
		FormatNumber(e.HEDamage),
		FormatNumber(e.MolotovDamage),
		FormatNumber(e.UtilityDamage),
	}
}
