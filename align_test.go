package align

import (
	"reflect"
	"testing"
)

func TestRepair_AddsMissingSurePairs(t *testing.T) {
	reference := []LabeledAlignment{
		{
			Sure:     []Pair{{1, 1}, {2, 2}},
			Possible: []Pair{{1, 1}, {3, 3}},
		},
	}

	repaired := Repair(reference)

	want := []Pair{{1, 1}, {3, 3}, {2, 2}}
	if !reflect.DeepEqual(repaired[0].Possible, want) {
		t.Errorf("Possible = %v, want %v", repaired[0].Possible, want)
	}
}

func TestRepair_EmptyPossible(t *testing.T) {
	reference := []LabeledAlignment{
		{Sure: []Pair{{1, 1}}, Possible: nil},
	}

	repaired := Repair(reference)

	want := []Pair{{1, 1}}
	if !reflect.DeepEqual(repaired[0].Possible, want) {
		t.Errorf("Possible = %v, want %v", repaired[0].Possible, want)
	}
}

func TestRepair_SubsetProperty(t *testing.T) {
	reference := []LabeledAlignment{
		{Sure: []Pair{{1, 2}, {4, 4}}, Possible: []Pair{{2, 2}}},
		{Sure: []Pair{{1, 1}}, Possible: []Pair{{1, 1}, {2, 3}}},
		{Sure: nil, Possible: nil},
	}

	for i, sent := range Repair(reference) {
		possible := make(map[Pair]bool, len(sent.Possible))
		for _, p := range sent.Possible {
			possible[p] = true
		}
		for _, p := range sent.Sure {
			if !possible[p] {
				t.Errorf("sentence %d: sure pair %v missing from possible %v", i, p, sent.Possible)
			}
		}
	}
}

func TestRepair_DoesNotMutateInput(t *testing.T) {
	possible := []Pair{{2, 2}}
	reference := []LabeledAlignment{
		{Sure: []Pair{{1, 1}}, Possible: possible},
	}

	_ = Repair(reference)

	if len(reference[0].Possible) != 1 || reference[0].Possible[0] != (Pair{2, 2}) {
		t.Errorf("input Possible mutated: %v", reference[0].Possible)
	}
	if len(possible) != 1 {
		t.Errorf("backing slice mutated: %v", possible)
	}
}

func TestRepair_Idempotent(t *testing.T) {
	reference := []LabeledAlignment{
		{Sure: []Pair{{1, 1}, {2, 2}}, Possible: []Pair{{2, 2}}},
	}

	once := Repair(reference)
	twice := Repair(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Repair not idempotent: %v vs %v", once, twice)
	}
}
