package lexirumah

import (
	"slices"
	"strings"
)

// SynthesizeAlignment returns the alignment to store for form. A blank
// existing alignment is replaced by the tokenization of form. A non-blank
// one is kept verbatim if its segments, ignoring gaps, equal the
// tokenization of form, and regenerated otherwise.
func (s *Segmenter) SynthesizeAlignment(form, existing string) string {
	form = CleanForm(form)
	tokens := s.Tokenize(form)
	if strings.TrimSpace(existing) == "" {
		return strings.Join(tokens, " ")
	}
	existing = CleanAlignment(existing)
	if !slices.Equal(tokens, StripGaps(existing)) {
		return strings.Join(tokens, " ")
	}
	return existing
}
