package lexirumah

import (
	"slices"
	"strings"
)

// AlignedForm is a form of the refined alignment table.
type AlignedForm struct {
	// CogID is the compact cognate ID; forms with CogID <= 0 belong to no
	// class and are left alone.
	CogID int
	// Alignment is the refined alignment, empty if absent.
	Alignment string
	// Fallback replaces Alignment when the class is inconsistent.
	Fallback string
}

// Validation is the result of ValidateAlignments.
type Validation struct {
	// Alignments holds the final alignment of each input row.
	Alignments []string
	// Replaced lists the classes whose alignments were replaced, ascending.
	Replaced []int
}

// ValidateAlignments checks that the alignments of every cognate class have
// the same number of tokens. An absent alignment counts as a length of its
// own. In a class with more than one length, every alignment is replaced by
// the row's fallback, or Gap if it has none.
func ValidateAlignments(rows []AlignedForm) *Validation {
	const unknown = -1

	lengths := make(map[int]map[int]struct{})
	for _, r := range rows {
		if r.CogID <= 0 {
			continue
		}
		n := unknown
		if r.Alignment != "" {
			n = len(strings.Fields(r.Alignment))
		}
		if lengths[r.CogID] == nil {
			lengths[r.CogID] = make(map[int]struct{})
		}
		lengths[r.CogID][n] = struct{}{}
	}

	v := &Validation{Alignments: make([]string, len(rows))}
	for cogID, set := range lengths {
		if len(set) > 1 {
			v.Replaced = append(v.Replaced, cogID)
		}
	}
	slices.Sort(v.Replaced)

	for i, r := range rows {
		v.Alignments[i] = r.Alignment
		if r.CogID <= 0 || len(lengths[r.CogID]) <= 1 {
			continue
		}
		if r.Fallback != "" {
			v.Alignments[i] = r.Fallback
		} else {
			v.Alignments[i] = Gap
		}
	}
	return v
}
