package lexirumah

import (
	"cmp"
	"slices"
)

// ResetSet holds operator reset directives. A form matches when its cognate
// label, doculect ID or concept is in the set.
type ResetSet map[string]struct{}

// NewResetSet builds a ResetSet from directive tokens.
func NewResetSet(tokens ...string) ResetSet {
	rs := make(ResetSet, len(tokens))
	for _, t := range tokens {
		rs[t] = struct{}{}
	}
	return rs
}

// Matches reports whether f is named by a directive.
func (rs ResetSet) Matches(f Form) bool {
	for _, v := range []string{f.Label, f.DoculectID, f.Concept} {
		if _, ok := rs[v]; ok && v != "" {
			return true
		}
	}
	return false
}

// NoticeKind classifies a non-fatal resolution ambiguity.
type NoticeKind int

const (
	// NoticeNoAutomaticMatch: a reset form was not found in the automatic
	// table and was grouped by its own label instead.
	NoticeNoAutomaticMatch NoticeKind = iota + 1
	// NoticeUngrounded: the form's pool was empty, so it represents itself.
	NoticeUngrounded
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeNoAutomaticMatch:
		return "no_automatic_match"
	case NoticeUngrounded:
		return "ungrounded"
	default:
		return "unknown"
	}
}

// Notice reports a form whose coding could not be grounded as requested.
type Notice struct {
	Kind NoticeKind
	Form Form
}

// ConceptPair is an unordered pair of concepts joined by one cognate class.
// A <= B always holds.
type ConceptPair struct {
	A, B string
}

func newConceptPair(x, y string) ConceptPair {
	if y < x {
		x, y = y, x
	}
	return ConceptPair{A: x, B: y}
}

// Resolved is a working-table form with its canonical cognate identity.
type Resolved struct {
	Form   Form
	LongID LongCognateID
	// Reset is set if the form was regrouped from the automatic coding.
	Reset bool
	// Automatic is set if the representative pool came from the automatic table.
	Automatic bool
	// PoolSize is the number of forms in the representative pool.
	PoolSize int
}

// Resolution is the result of Resolve.
type Resolution struct {
	// Rows holds every working form, stably sorted by doculect ID.
	Rows []Resolved
	// CrossMeaning lists concept pairs joined by a class, sorted.
	CrossMeaning []ConceptPair
	// Notices lists ambiguities in row order.
	Notices []Notice
}

// labelIndex finds the first form carrying a label, and the pool size.
type labelIndex struct {
	first map[string]int
	size  map[string]int
}

func indexBy(forms []Form, label func(Form) string) labelIndex {
	idx := labelIndex{first: make(map[string]int), size: make(map[string]int)}
	for i, f := range forms {
		l := label(f)
		if l == "" {
			continue
		}
		if _, ok := idx.first[l]; !ok {
			idx.first[l] = i
		}
		idx.size[l]++
	}
	return idx
}

func sortedByDoculect(forms []Form) []Form {
	out := slices.Clone(forms)
	slices.SortStableFunc(out, func(a, b Form) int {
		return cmp.Compare(a.DoculectID, b.DoculectID)
	})
	return out
}

// Resolve assigns a LongCognateID to every form of working. Pass the
// automatic table as working to resolve it against itself.
//
// A form is reset if it is uncoded or named by resets. A reset form takes
// the class of its exact match (doculect ID, transcription, concept) in
// automatic, and the first form of that automatic class represents it. A
// form that is not reset, or a reset form without automatic match, is
// represented by the first working form sharing its label. If that pool is
// empty the form represents itself. "First" refers to the order after a
// stable sort by doculect ID; the inputs are not modified.
func Resolve(working, automatic []Form, resets ResetSet) *Resolution {
	work := sortedByDoculect(working)
	auto := sortedByDoculect(automatic)

	autoMatch := make(map[formKey]int, len(auto))
	for i, f := range auto {
		if _, ok := autoMatch[f.key()]; !ok {
			autoMatch[f.key()] = i
		}
	}
	autoPools := indexBy(auto, func(f Form) string { return f.AutoLabel })
	workPools := indexBy(work, func(f Form) string { return f.Label })

	res := &Resolution{Rows: make([]Resolved, 0, len(work))}
	pairs := make(map[ConceptPair]struct{})

	for _, f := range work {
		r := Resolved{Form: f, Reset: f.Label == "" || resets.Matches(f)}

		var (
			pool  = workPools
			label = f.Label
			from  = work
		)
		if r.Reset {
			if i, ok := autoMatch[f.key()]; ok {
				pool, label, from = autoPools, auto[i].AutoLabel, auto
				r.Automatic = true
			} else {
				res.Notices = append(res.Notices, Notice{Kind: NoticeNoAutomaticMatch, Form: f})
			}
		}

		rep := f
		if i, ok := pool.first[label]; ok && label != "" {
			rep = from[i]
			r.PoolSize = pool.size[label]
		} else {
			res.Notices = append(res.Notices, Notice{Kind: NoticeUngrounded, Form: f})
		}

		if f.Concept != rep.Concept {
			pairs[newConceptPair(f.Concept, rep.Concept)] = struct{}{}
		}
		r.LongID = LongCognateIDOf(rep)
		res.Rows = append(res.Rows, r)
	}

	for p := range pairs {
		res.CrossMeaning = append(res.CrossMeaning, p)
	}
	slices.SortFunc(res.CrossMeaning, func(a, b ConceptPair) int {
		if c := cmp.Compare(a.A, b.A); c != 0 {
			return c
		}
		return cmp.Compare(a.B, b.B)
	})
	return res
}
