package lexirumah

import "strings"

// Gap marks an alignment position where a form has no segment.
const Gap = "-"

// formReplacer makes a transcription safe to use as a single
// whitespace-free TSV cell: line breaks become ";" and spaces become the
// word boundary "_".
var formReplacer = strings.NewReplacer(
	"\r\n", ";",
	"\n", ";",
	" ", "_",
)

// alignmentReplacer only folds line breaks; spaces separate alignment tokens.
var alignmentReplacer = strings.NewReplacer(
	"\r\n", ";",
	"\n", ";",
)

// CleanForm replaces line breaks in form by ";" and spaces by "_".
func CleanForm(form string) string {
	return formReplacer.Replace(form)
}

// CleanAlignment replaces line breaks in an alignment string by ";".
func CleanAlignment(alignment string) string {
	return alignmentReplacer.Replace(alignment)
}

// StripGaps returns the alignment tokens of alignment without gap symbols.
func StripGaps(alignment string) []string {
	fields := strings.Fields(alignment)
	out := fields[:0]
	for _, f := range fields {
		if f != Gap {
			out = append(out, f)
		}
	}
	return out
}
