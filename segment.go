package lexirumah

import (
	"strings"
	"unicode/utf8"
)

// Tokenize splits a transcription into segments. Each segment starts at a
// consonant or vowel; any other symbol is appended to the segment before it.
// Boundary markers become segments of their own, syllable markers are
// dropped and a stress marker tags the next vowel. The last segment is
// always returned, even when empty, so the result is never empty.
func (s *Segmenter) Tokenize(form string) []string {
	if r, size := utf8.DecodeRuneInString(form); s.inv.reconstruction != 0 && size > 0 && r == s.inv.reconstruction {
		form = form[size:]
	}

	var (
		tokens  []string
		segment strings.Builder
		stress  bool
	)
	flush := func() {
		if segment.Len() > 0 {
			tokens = append(tokens, segment.String())
			segment.Reset()
		}
	}

	for _, raw := range form {
		symbol := s.inv.Substitute(raw)
		switch s.inv.Classify(symbol) {
		case ClassStress:
			flush()
			stress = true
		case ClassBoundary:
			flush()
			tokens = append(tokens, string(symbol))
		case ClassSyllable:
			flush()
		case ClassConsonant:
			flush()
			segment.WriteRune(symbol)
		case ClassVowel:
			flush()
			if stress {
				segment.WriteString(s.inv.stressTag)
				stress = false
			}
			segment.WriteRune(symbol)
		default:
			if s.unclassified != nil {
				s.unclassified(form, symbol)
			}
			segment.WriteRune(symbol)
		}
	}
	return append(tokens, segment.String())
}

// Tokens returns the tokenization of form joined by single spaces.
func (s *Segmenter) Tokens(form string) string {
	return strings.Join(s.Tokenize(form), " ")
}
