package pipeline

import (
	"context"
	"fmt"
	"strconv"

	lexirumah "github.com/Anaphory/lexirumah-data"
	"github.com/Anaphory/lexirumah-data/internal/table"
)

// absentPart stands for a missing region, family or lect in a display label.
const absentPart = "X"

// displayDoculect renders "<region> – <family> <lect>", abbreviating the
// family through families.
func displayDoculect(region, family, lect string, families map[string]string) string {
	if short, ok := families[family]; ok {
		family = short
	}
	return fmt.Sprintf("%s – %s %s", orAbsent(region), orAbsent(family), orAbsent(lect))
}

func orAbsent(s string) string {
	if s == "" {
		return absentPart
	}
	return s
}

// merge replaces LONG_COGID by compact integer COGIDs and gives every form
// its display doculect.
func (p *Pipeline) merge(_ context.Context, opts Options) (int, error) {
	path := p.path(p.cfg.Artifacts.Resolved)
	t, err := table.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := t.Require(ColLongCogID, ColConceptID, ColDoculect); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	keys := make([]lexirumah.CognateKey, t.Len())
	for row := range keys {
		id, err := lexirumah.ParseLongCognateID(t.Get(row, ColLongCogID))
		if err != nil {
			return 0, fmt.Errorf("%s: row %d: %w", path, row+1, err)
		}
		keys[row] = lexirumah.CognateKey{LongID: id, ConceptID: t.Get(row, ColConceptID)}
		t.Set(row, ColDoculect, displayDoculect(
			t.Get(row, ColRegion), t.Get(row, ColFamily), t.Get(row, ColDoculect), p.cfg.Families))
	}

	ids := lexirumah.AssignCompactIDs(keys, opts.WithinMeaning)
	t.AddColumn(ColCogID)
	classes := 0
	for row, id := range ids {
		t.Set(row, ColCogID, strconv.Itoa(id))
		classes = max(classes, id)
	}

	p.log.Info("assigned cognate ids",
		"forms", t.Len(),
		"classes", classes,
		"within_meaning", opts.WithinMeaning,
	)
	if err := table.WriteFile(p.path(p.cfg.Artifacts.Merged), t); err != nil {
		return 0, err
	}
	return t.Len(), nil
}
