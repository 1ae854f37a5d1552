package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	lexirumah "github.com/Anaphory/lexirumah-data"
	"github.com/Anaphory/lexirumah-data/internal/table"
)

// readCognateTable reads a cognate table and returns the forms of its rows
// that name both a doculect and a concept ID.
func readCognateTable(path string, required ...string) (*table.Table, []lexirumah.Form, error) {
	t, err := table.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	if err := t.Require(append(required, cognateColumns...)...); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	forms := make([]lexirumah.Form, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		f := lexirumah.Form{
			Row:           row,
			DoculectID:    t.Get(row, ColDoculectID),
			Doculect:      t.Get(row, ColDoculect),
			ConceptID:     t.Get(row, ColConceptID),
			Concept:       t.Get(row, ColConcept),
			Transcription: t.Get(row, ColIPA),
			Label:         t.Get(row, ColCognateSet),
			AutoLabel:     t.Get(row, ColAutoCogID),
		}
		if f.Doculect == "" || f.ConceptID == "" {
			continue
		}
		forms = append(forms, f)
	}
	return t, forms, nil
}

// resolve gives every form of the working coding its LONG_COGID. The
// working coding is the manual one when given, otherwise the automatic one.
func (p *Pipeline) resolve(_ context.Context, opts Options) (int, error) {
	autoTable, auto, err := readCognateTable(p.path(p.cfg.Artifacts.AutoCognates), ColAutoCogID)
	if err != nil {
		return 0, err
	}

	workTable, work := autoTable, auto
	if opts.Coding != "" {
		workTable, work, err = readCognateTable(opts.Coding, ColCognateSet)
		if err != nil {
			return 0, err
		}
	} else if err := autoTable.Require(ColCognateSet); err != nil {
		return 0, fmt.Errorf("%s: %w", p.cfg.Artifacts.AutoCognates, err)
	}

	res := lexirumah.Resolve(work, auto, lexirumah.NewResetSet(opts.Resets...))

	order := make([]int, len(res.Rows))
	for i, r := range res.Rows {
		order[i] = r.Form.Row
	}
	out := workTable.Select(order)
	out.AddColumn(ColLongCogID)
	for i, r := range res.Rows {
		out.Set(i, ColLongCogID, r.LongID.String())
		if r.Reset {
			p.log.Info("grouping form automatically",
				formAttrs(r.Form,
					slog.Bool("automatic_pool", r.Automatic),
					slog.Int("pool_size", r.PoolSize),
				)...,
			)
		}
	}

	for _, n := range res.Notices {
		p.metrics.ResolverNotices.WithLabelValues(n.Kind.String()).Inc()
		p.log.Warn(noticeMessage(n.Kind), formAttrs(n.Form)...)
	}
	p.metrics.CrossMeaningPairs.Set(float64(len(res.CrossMeaning)))
	for _, pair := range res.CrossMeaning {
		p.log.Info("cognate class crosses meanings",
			slog.String("concept_a", pair.A), slog.String("concept_b", pair.B))
	}

	p.log.Info("resolved cognate classes",
		slog.Int("forms", len(res.Rows)),
		slog.Int("dropped", workTable.Len()-len(res.Rows)),
		slog.Int("notices", len(res.Notices)),
		slog.Int("cross_meaning_pairs", len(res.CrossMeaning)),
	)
	if err := table.WriteFile(p.path(p.cfg.Artifacts.Resolved), out); err != nil {
		return 0, err
	}
	return out.Len(), nil
}

func noticeMessage(k lexirumah.NoticeKind) string {
	switch k {
	case lexirumah.NoticeNoAutomaticMatch:
		return "reset form not found in automatic coding, grouping by its own label"
	case lexirumah.NoticeUngrounded:
		return "form has no cognate pool, it represents itself"
	default:
		return "resolution notice"
	}
}

func formAttrs(f lexirumah.Form, extra ...any) []any {
	return append([]any{
		slog.String("doculect_id", f.DoculectID),
		slog.String("concept", f.Concept),
		slog.String("ipa", f.Transcription),
		slog.String("label", f.Label),
	}, extra...)
}
