package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	lexirumah "github.com/Anaphory/lexirumah-data"
	"github.com/Anaphory/lexirumah-data/internal/table"
)

// validate replaces the alignments of every cognate class whose members
// disagree in length.
func (p *Pipeline) validate(_ context.Context, _ Options) (int, error) {
	path := p.path(p.cfg.Artifacts.Aligned)
	t, err := table.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if err := t.Require(ColCogID, ColAlignment); err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	rows := make([]lexirumah.AlignedForm, t.Len())
	for row := range rows {
		var cogID int
		if s := t.Get(row, ColCogID); s != "" {
			cogID, err = strconv.Atoi(s)
			if err != nil {
				return 0, fmt.Errorf("%s: row %d: invalid %s %q", path, row+1, ColCogID, s)
			}
		}
		rows[row] = lexirumah.AlignedForm{
			CogID:     cogID,
			Alignment: t.Get(row, ColAlignment),
			Fallback:  t.Get(row, ColAutoAlignment),
		}
	}

	v := lexirumah.ValidateAlignments(rows)
	for row, a := range v.Alignments {
		t.Set(row, ColAlignment, a)
	}
	p.metrics.ReplacedAlignmentGroups.Add(float64(len(v.Replaced)))
	for _, id := range v.Replaced {
		p.log.Info("alignment lengths disagree, using fallback", slog.Int("cogid", id))
	}

	p.log.Info("validated alignments",
		slog.Int("forms", t.Len()),
		slog.Int("replaced_groups", len(v.Replaced)),
	)
	if err := table.WriteFile(p.path(p.cfg.Artifacts.Final), t); err != nil {
		return 0, err
	}
	return t.Len(), nil
}
