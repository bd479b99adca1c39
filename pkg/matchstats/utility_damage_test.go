package matchstats

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestDecodeUtilityDamage_SingleEntry(t *testing.T) {
	doc := `{"bob": {"he_damage":40,"molotov_damage":0,"utility_damage":40}}`

	damage, err := DecodeUtilityDamage(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(damage) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(damage))
	}

	want := Row{"bob", "40", "0", "40"}
	if got := damage[0].Row(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected row %v, got %v", want, got)
	}
}

func TestDecodeUtilityDamage_ValuesAreNotRounded(t *testing.T) {
	doc := `{
    "ropz": {"he_damage": 12.5, "molotov_damage": 33.333, "utility_damage": 45.833},
    "broky": {"he_damage": 98, "molotov_damage": 7, "utility_damage": 105}
}`

	damage, err := DecodeUtilityDamage(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Row{
		{"ropz", "12.5", "33.333", "45.833"},
		{"broky", "98", "7", "105"},
	}
	for i, entry := range damage {
		if got := entry.Row(); !reflect.DeepEqual(got, want[i]) {
			t.Errorf("row %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestDecodeUtilityDamage_EmptyObject(t *testing.T) {
	damage, err := DecodeUtilityDamage(strings.NewReader(` {} `))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(damage) != 0 {
		t.Errorf("expected no entries, got %d", len(damage))
	}
}

func TestDecodeUtilityDamage_MissingField(t *testing.T) {
	doc := `{"bob": {"he_damage": 40, "utility_damage": 40}}`

	_, err := DecodeUtilityDamage(strings.NewReader(doc))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if !strings.Contains(err.Error(), `"bob"`) {
		t.Errorf("expected error to name the player, got %v", err)
	}
}
