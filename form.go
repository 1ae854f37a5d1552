package lexirumah

import (
	"fmt"
	"strconv"
	"strings"
)

// Form is one lexical entry of a word list. Absent values are empty strings.
type Form struct {
	// Row is the position of the form in the table it was read from.
	Row int
	// DoculectID identifies the documented language variant.
	DoculectID string
	// Doculect is the human-readable doculect name.
	Doculect string
	// ConceptID and Concept identify the meaning.
	ConceptID string
	Concept   string
	// Transcription is the phonetic form (IPA column).
	Transcription string
	// Label is the cognate-set label (COGNATE_SET); empty means uncoded.
	Label string
	// AutoLabel is the automatic cognate class (AUTO_COGID), only
	// meaningful for rows of the automatic table.
	AutoLabel string
}

// formKey is the identity used to find a form in the automatic table.
type formKey struct {
	doculectID    string
	transcription string
	concept       string
}

func (f Form) key() formKey {
	return formKey{f.DoculectID, f.Transcription, f.Concept}
}

// LongCognateID is the canonical identity of a cognate class: the doculect,
// concept and transcription of its representative form.
type LongCognateID struct {
	DoculectID    string
	Concept       string
	Transcription string
}

// LongCognateIDOf returns the identity a class represented by f carries.
func LongCognateIDOf(f Form) LongCognateID {
	return LongCognateID{
		DoculectID:    f.DoculectID,
		Concept:       f.Concept,
		Transcription: f.Transcription,
	}
}

// String renders the identity as a quoted triple, e.g.
// ("abui1241", "hand", "tana"). ParseLongCognateID reverses it.
func (id LongCognateID) String() string {
	return fmt.Sprintf("(%q, %q, %q)", id.DoculectID, id.Concept, id.Transcription)
}

// ParseLongCognateID parses the output of LongCognateID.String.
func ParseLongCognateID(s string) (LongCognateID, error) {
	rest := strings.TrimSpace(s)
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return LongCognateID{}, fmt.Errorf("long cognate id %q: not a parenthesized triple", s)
	}
	rest = rest[1 : len(rest)-1]

	var parts [3]string
	for i := range parts {
		rest = strings.TrimLeft(rest, " ")
		quoted, err := strconv.QuotedPrefix(rest)
		if err != nil {
			return LongCognateID{}, fmt.Errorf("long cognate id %q: element %d: %w", s, i+1, err)
		}
		parts[i], err = strconv.Unquote(quoted)
		if err != nil {
			return LongCognateID{}, fmt.Errorf("long cognate id %q: element %d: %w", s, i+1, err)
		}
		rest = strings.TrimLeft(rest[len(quoted):], " ")
		if i < len(parts)-1 {
			if !strings.HasPrefix(rest, ",") {
				return LongCognateID{}, fmt.Errorf("long cognate id %q: expected 3 elements", s)
			}
			rest = rest[1:]
		}
	}
	if rest != "" {
		return LongCognateID{}, fmt.Errorf("long cognate id %q: trailing text %q", s, rest)
	}
	return LongCognateID{DoculectID: parts[0], Concept: parts[1], Transcription: parts[2]}, nil
}
