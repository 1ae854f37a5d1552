package pipeline

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	lexirumah "github.com/Anaphory/lexirumah-data"
	"github.com/Anaphory/lexirumah-data/internal/table"
)

// orthographicSuffix marks doculect IDs of orthographic, not phonetic, lists.
const orthographicSuffix = "-o"

var commentReplacer = strings.NewReplacer("\r\n", "; ", "\n", "; ")

// lingpyColumn maps a raw header to its LingPy name.
func lingpyColumn(c string) string {
	if r, ok := cldfColumns[c]; ok {
		return r
	}
	return strings.ToUpper(c)
}

// prepare turns the raw word list into the unaligned artifact: LingPy
// headers, cleaned transcriptions, tokens, aligned forms and dense cognate
// set numbers.
func (p *Pipeline) prepare(_ context.Context, opts Options) (int, error) {
	raw, err := table.ReadFile(opts.Input)
	if err != nil {
		return 0, err
	}
	if err := raw.Rename(lingpyColumn); err != nil {
		return 0, fmt.Errorf("input %s: %w", opts.Input, err)
	}
	if err := raw.Require(ColDoculectID, ColIPA); err != nil {
		return 0, fmt.Errorf("input %s: %w", opts.Input, err)
	}

	keep := raw.Filter(func(row int) bool {
		if raw.Get(row, ColIPA) == "" {
			return false
		}
		return opts.KeepOrthographic || !strings.HasSuffix(raw.Get(row, ColDoculectID), orthographicSuffix)
	})
	out := raw.Select(keep)
	if !out.Has(ColID) {
		ids := make([]string, len(keep))
		for i, row := range keep {
			ids[i] = strconv.Itoa(row)
		}
		if err := out.PrependColumn(ColID, ids); err != nil {
			return 0, err
		}
	}
	for _, c := range []string{ColTokens, ColAlignment, ColCognateSet} {
		out.AddColumn(c)
	}

	sets := make(map[string]int)
	for row := 0; row < out.Len(); row++ {
		ipa := lexirumah.CleanForm(out.Get(row, ColIPA))
		out.Set(row, ColIPA, ipa)
		out.Set(row, ColTokens, p.seg.Tokens(ipa))
		out.Set(row, ColAlignment, p.seg.SynthesizeAlignment(ipa, out.Get(row, ColAlignment)))

		if label := out.Get(row, ColCognateSet); label != "" {
			n, ok := sets[label]
			if !ok {
				n = len(sets) + 1
				sets[label] = n
			}
			out.Set(row, ColCognateSet, strconv.Itoa(n))
		}
		if out.Has(ColComment) {
			out.Set(row, ColComment, commentReplacer.Replace(out.Get(row, ColComment)))
		}
	}

	p.log.Info("prepared word list",
		"input", opts.Input,
		"rows_read", raw.Len(),
		"rows_kept", out.Len(),
		"cognate_sets", len(sets),
	)
	if err := table.WriteFile(p.path(p.cfg.Artifacts.Unaligned), out); err != nil {
		return 0, err
	}
	return out.Len(), nil
}
