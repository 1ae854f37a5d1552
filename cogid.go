package lexirumah

// CognateKey is what AssignCompactIDs groups forms by.
type CognateKey struct {
	LongID LongCognateID
	// ConceptID only separates classes when assigning within meanings.
	ConceptID string
}

// AssignCompactIDs numbers the distinct keys of rows 1..K in order of first
// appearance and returns the number of each row. Unless withinMeaning is
// set, ConceptID is ignored and a class spanning several concepts keeps a
// single number.
func AssignCompactIDs(rows []CognateKey, withinMeaning bool) []int {
	ids := make([]int, len(rows))
	seen := make(map[CognateKey]int)
	for i, k := range rows {
		if !withinMeaning {
			k.ConceptID = ""
		}
		id, ok := seen[k]
		if !ok {
			id = len(seen) + 1
			seen[k] = id
		}
		ids[i] = id
	}
	return ids
}
