package lexirumah

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:embed data/inventory.yaml
var defaultInventoryYAML []byte

// InventorySpec is the serialized form of an Inventory, as found in
// data/inventory.yaml.
type InventorySpec struct {
	// Consonants and Vowels are the anchor glyphs a segment starts with.
	Consonants []string `yaml:"consonants"`
	Vowels     []string `yaml:"vowels"`
	// Substitutions maps visually ambiguous characters to their canonical glyph.
	Substitutions map[string]string `yaml:"substitutions"`
	// Stress lists stress markers (after substitution). The first one is
	// also the tag prefixed to a stressed vowel.
	Stress []string `yaml:"stress"`
	// Boundaries are morpheme and word boundary markers, emitted as segments.
	Boundaries []string `yaml:"boundaries"`
	// Syllables are syllable boundary markers, dropped from the output.
	Syllables []string `yaml:"syllables"`
	// Reconstruction is the marker stripped from the start of a form.
	Reconstruction string `yaml:"reconstruction"`
}

// SymbolClass is the segmenter's classification of a single symbol.
type SymbolClass int

const (
	ClassOther SymbolClass = iota
	ClassConsonant
	ClassVowel
	ClassStress
	ClassBoundary
	ClassSyllable
)

// Inventory holds the immutable phonetic tables used by the Segmenter.
// It is built once and never modified afterwards.
type Inventory struct {
	// classes maps a canonical symbol to its class; absent means ClassOther.
	classes map[rune]SymbolClass

	// substitutions maps a raw symbol to its canonical replacement.
	substitutions map[rune]rune

	// stressTag is prefixed to the vowel that carries pending stress.
	stressTag string

	// reconstruction is stripped from the start of a form (0 if unset).
	reconstruction rune
}

// DefaultInventory parses the inventory embedded in the binary.
func DefaultInventory() (*Inventory, error) {
	return ParseInventory(defaultInventoryYAML)
}

// LoadInventory reads an inventory YAML file. An empty path selects the
// embedded default.
func LoadInventory(path string) (*Inventory, error) {
	if path == "" {
		return DefaultInventory()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory: %w", err)
	}
	inv, err := ParseInventory(data)
	if err != nil {
		return nil, fmt.Errorf("inventory %s: %w", path, err)
	}
	return inv, nil
}

// ParseInventory decodes and validates an inventory in YAML form.
func ParseInventory(data []byte) (*Inventory, error) {
	var spec InventorySpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}
	return NewInventory(spec)
}

// NewInventory builds an Inventory from spec. Every glyph and marker must be
// exactly one symbol, and no symbol may belong to two classes.
func NewInventory(spec InventorySpec) (*Inventory, error) {
	inv := &Inventory{
		classes:       make(map[rune]SymbolClass),
		substitutions: make(map[rune]rune, len(spec.Substitutions)),
	}

	groups := []struct {
		name    string
		symbols []string
		class   SymbolClass
	}{
		{"stress", spec.Stress, ClassStress},
		{"boundaries", spec.Boundaries, ClassBoundary},
		{"syllables", spec.Syllables, ClassSyllable},
		{"consonants", spec.Consonants, ClassConsonant},
		{"vowels", spec.Vowels, ClassVowel},
	}
	for _, g := range groups {
		for _, s := range g.symbols {
			r, err := singleSymbol(s)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", g.name, err)
			}
			if prev, ok := inv.classes[r]; ok && prev != g.class {
				return nil, fmt.Errorf("%s: symbol %q already classified as %s", g.name, s, prev)
			}
			inv.classes[r] = g.class
		}
	}

	for from, to := range spec.Substitutions {
		f, err := singleSymbol(from)
		if err != nil {
			return nil, fmt.Errorf("substitutions: %w", err)
		}
		t, err := singleSymbol(to)
		if err != nil {
			return nil, fmt.Errorf("substitutions: %w", err)
		}
		inv.substitutions[f] = t
	}

	if len(spec.Stress) > 0 {
		inv.stressTag = spec.Stress[0]
	}
	if spec.Reconstruction != "" {
		r, err := singleSymbol(spec.Reconstruction)
		if err != nil {
			return nil, fmt.Errorf("reconstruction: %w", err)
		}
		inv.reconstruction = r
	}
	return inv, nil
}

// Classify returns the class of an already substituted symbol.
func (inv *Inventory) Classify(r rune) SymbolClass {
	return inv.classes[r]
}

// Substitute maps r through the substitution table.
func (inv *Inventory) Substitute(r rune) rune {
	if s, ok := inv.substitutions[r]; ok {
		return s
	}
	return r
}

// StressTag returns the prefix carried by a stressed vowel segment.
func (inv *Inventory) StressTag() string {
	return inv.stressTag
}

func singleSymbol(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("glyph %q is not a single symbol", s)
	}
	return r, nil
}

func (c SymbolClass) String() string {
	switch c {
	case ClassConsonant:
		return "consonant"
	case ClassVowel:
		return "vowel"
	case ClassStress:
		return "stress"
	case ClassBoundary:
		return "boundary"
	case ClassSyllable:
		return "syllable"
	default:
		return "other"
	}
}
