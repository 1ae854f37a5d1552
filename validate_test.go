package lexirumah

import (
	"slices"
	"strings"
	"testing"
)

func TestValidateAlignments(t *testing.T) {
	rows := []AlignedForm{
		{CogID: 1, Alignment: "t a n", Fallback: "t a n -"},
		{CogID: 1, Alignment: "t a n a", Fallback: "t a n a"},
		{CogID: 2, Alignment: "m a t", Fallback: "x"},
		{CogID: 2, Alignment: "m - t", Fallback: "y"},
		{CogID: 3, Alignment: "l i m a"},
		{CogID: 3, Alignment: ""},
		{CogID: 0, Alignment: "p a"},
		{CogID: 4, Alignment: ""},
	}
	v := ValidateAlignments(rows)

	want := []string{"t a n -", "t a n a", "m a t", "m - t", Gap, Gap, "p a", ""}
	if !slices.Equal(v.Alignments, want) {
		t.Errorf("Alignments = %q, want %q", v.Alignments, want)
	}
	if !slices.Equal(v.Replaced, []int{1, 3}) {
		t.Errorf("Replaced = %v, want [1 3]", v.Replaced)
	}
}

func TestValidateAlignmentsUniformLength(t *testing.T) {
	rows := []AlignedForm{
		{CogID: 5, Alignment: "a b c"},
		{CogID: 6, Alignment: "a b"},
		{CogID: 5, Alignment: "a - c d"},
		{CogID: 6, Alignment: "- b"},
		{CogID: 5, Alignment: "a b"},
	}
	v := ValidateAlignments(rows)

	lengths := make(map[int]map[int]bool)
	for i, r := range rows {
		if v.Alignments[i] == Gap {
			continue
		}
		if lengths[r.CogID] == nil {
			lengths[r.CogID] = make(map[int]bool)
		}
		lengths[r.CogID][len(strings.Fields(v.Alignments[i]))] = true
	}
	for cogID, set := range lengths {
		if len(set) > 1 {
			t.Errorf("class %d still has lengths %v", cogID, set)
		}
	}
	if !slices.Equal(v.Replaced, []int{5}) {
		t.Errorf("Replaced = %v, want [5]", v.Replaced)
	}
}
