// Package lexirumah curates multilingual word lists into a cognate-coded,
// aligned comparative dataset: it segments phonetic transcriptions,
// reconciles automatic and manual cognate codings into canonical cognate
// identities, and keeps the alignments of every cognate class consistent.
package lexirumah

// Segmenter splits transcriptions into phonetic segments using an Inventory.
// Tokenize keeps no state between calls.
type Segmenter struct {
	inv *Inventory

	// unclassified, if set, is called for every symbol that is neither a
	// marker, a consonant nor a vowel and was absorbed into a segment.
	unclassified func(form string, symbol rune)
}

// SegmenterOption configures a Segmenter.
type SegmenterOption func(*Segmenter)

// WithUnclassified installs a callback observing unclassified symbols.
// It does not change the segmentation.
func WithUnclassified(fn func(form string, symbol rune)) SegmenterOption {
	return func(s *Segmenter) {
		s.unclassified = fn
	}
}

// NewSegmenter returns a Segmenter over inv.
func NewSegmenter(inv *Inventory, opts ...SegmenterOption) *Segmenter {
	s := &Segmenter{inv: inv}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
