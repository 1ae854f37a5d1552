package lexirumah

import (
	"reflect"
	"slices"
	"testing"
)

func form(doculect, concept, ipa, label, auto string) Form {
	return Form{
		DoculectID:    doculect,
		Doculect:      doculect,
		ConceptID:     concept,
		Concept:       concept,
		Transcription: ipa,
		Label:         label,
		AutoLabel:     auto,
	}
}

func longIDs(res *Resolution) []LongCognateID {
	out := make([]LongCognateID, len(res.Rows))
	for i, r := range res.Rows {
		out[i] = r.LongID
	}
	return out
}

func noticeKinds(res *Resolution) []NoticeKind {
	out := make([]NoticeKind, len(res.Notices))
	for i, n := range res.Notices {
		out[i] = n.Kind
	}
	return out
}

func TestResolveUncodedFollowsAutomaticClass(t *testing.T) {
	r1 := form("abui1241", "hand", "tana", "", "7")
	r2 := form("kafo1240", "hand", "tan", "", "7")
	r3 := form("teiw1235", "hand", "tan", "", "7")
	auto := []Form{r3, r1, r2, form("abui1241", "foot", "buk", "", "8")}

	manual := form("kafo1240", "hand", "tan", "", "")
	working := []Form{manual, r1, r2, r3}

	res := Resolve(working, auto, nil)
	want := LongCognateIDOf(r1)
	for i, r := range res.Rows {
		if r.LongID != want {
			t.Errorf("row %d (%s): LongID = %v, want %v", i, r.Form.DoculectID, r.LongID, want)
		}
		if !r.Reset || !r.Automatic {
			t.Errorf("row %d: Reset=%v Automatic=%v, want both", i, r.Reset, r.Automatic)
		}
		if r.PoolSize != 3 {
			t.Errorf("row %d: PoolSize = %d, want 3", i, r.PoolSize)
		}
	}
	if len(res.Notices) != 0 {
		t.Errorf("Notices = %v, want none", res.Notices)
	}
}

func TestResolveManualLabels(t *testing.T) {
	a := form("a", "hand", "tana", "3", "")
	b := form("b", "hand", "tan", "3", "")
	c := form("c", "hand", "lima", "4", "")

	res := Resolve([]Form{c, b, a}, nil, nil)
	got := longIDs(res)
	want := []LongCognateID{LongCognateIDOf(a), LongCognateIDOf(a), LongCognateIDOf(c)}
	if !slices.Equal(got, want) {
		t.Errorf("LongIDs = %v, want %v", got, want)
	}
	for _, r := range res.Rows {
		if r.Reset {
			t.Errorf("%s: unexpectedly reset", r.Form.DoculectID)
		}
	}
}

func TestResolveStableOrder(t *testing.T) {
	first := form("b", "eye", "mata", "1", "")
	second := form("a", "eye", "mat", "1", "")
	third := form("b", "eye", "mara", "1", "")

	res := Resolve([]Form{first, second, third}, nil, nil)
	var order []string
	for _, r := range res.Rows {
		order = append(order, r.Form.Transcription)
		if r.LongID != LongCognateIDOf(second) {
			t.Errorf("%s: LongID = %v, want %v", r.Form.Transcription, r.LongID, LongCognateIDOf(second))
		}
	}
	if want := []string{"mat", "mata", "mara"}; !slices.Equal(order, want) {
		t.Errorf("row order = %q, want %q", order, want)
	}
}

func TestResolveResetDirectives(t *testing.T) {
	autoRep := form("a", "water", "wai", "", "12")
	auto := []Form{autoRep, form("b", "water", "we", "", "12")}

	tests := []struct {
		name   string
		resets ResetSet
		reset  bool
	}{
		{"no directive", nil, false},
		{"label", NewResetSet("5"), true},
		{"doculect", NewResetSet("b"), true},
		{"concept", NewResetSet("water"), true},
		{"other token", NewResetSet("fire"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manualRep := form("a", "water", "wai", "5", "")
			row := form("b", "water", "we", "5", "")
			res := Resolve([]Form{manualRep, row}, auto, tt.resets)

			got := res.Rows[1]
			if got.Reset != tt.reset {
				t.Fatalf("Reset = %v, want %v", got.Reset, tt.reset)
			}
			if got.LongID != LongCognateIDOf(autoRep) {
				t.Errorf("LongID = %v, want %v", got.LongID, LongCognateIDOf(autoRep))
			}
			if got.Automatic != tt.reset {
				t.Errorf("Automatic = %v, want %v", got.Automatic, tt.reset)
			}
		})
	}
}

func TestResolveResetWithoutAutomaticMatch(t *testing.T) {
	y := form("a", "fire", "api", "5", "")
	x := form("b", "fire", "ahi", "5", "")
	res := Resolve([]Form{x, y}, []Form{form("c", "fire", "hai", "", "2")}, NewResetSet("5"))

	if got := longIDs(res); !slices.Equal(got, []LongCognateID{LongCognateIDOf(y), LongCognateIDOf(y)}) {
		t.Errorf("LongIDs = %v, want both %v", got, LongCognateIDOf(y))
	}
	want := []NoticeKind{NoticeNoAutomaticMatch, NoticeNoAutomaticMatch}
	if got := noticeKinds(res); !slices.Equal(got, want) {
		t.Errorf("notices = %v, want %v", got, want)
	}
	for _, r := range res.Rows {
		if r.Automatic {
			t.Errorf("%s: Automatic set without an automatic match", r.Form.Transcription)
		}
	}
}

func TestResolveUngrounded(t *testing.T) {
	lone := form("a", "fire", "api", "", "")
	res := Resolve([]Form{lone}, nil, nil)

	if len(res.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(res.Rows))
	}
	if got := res.Rows[0].LongID; got != LongCognateIDOf(lone) {
		t.Errorf("LongID = %v, want itself %v", got, LongCognateIDOf(lone))
	}
	want := []NoticeKind{NoticeNoAutomaticMatch, NoticeUngrounded}
	if got := noticeKinds(res); !slices.Equal(got, want) {
		t.Errorf("notices = %v, want %v", got, want)
	}

	// An automatic match whose class is blank has an empty pool as well.
	res = Resolve([]Form{lone}, []Form{form("a", "fire", "api", "", "")}, nil)
	if got := noticeKinds(res); !slices.Equal(got, []NoticeKind{NoticeUngrounded}) {
		t.Errorf("notices = %v, want [ungrounded]", got)
	}
}

func TestResolveCrossMeaning(t *testing.T) {
	working := []Form{
		form("a", "hand", "lima", "1", ""),
		form("b", "arm", "lim", "1", ""),
		form("c", "five", "lima", "1", ""),
		form("d", "hand", "lima", "1", ""),
	}
	res := Resolve(working, nil, nil)
	want := []ConceptPair{{A: "arm", B: "hand"}, {A: "five", B: "hand"}}
	if !slices.Equal(res.CrossMeaning, want) {
		t.Errorf("CrossMeaning = %v, want %v", res.CrossMeaning, want)
	}
}

func TestResolveIdempotent(t *testing.T) {
	auto := []Form{
		form("a", "hand", "tana", "", "1"),
		form("b", "hand", "tan", "", "1"),
		form("b", "foot", "bui", "", "2"),
	}
	working := []Form{
		form("b", "foot", "bui", "", ""),
		form("b", "hand", "tan", "9", ""),
		form("a", "hand", "tana", "9", ""),
		form("c", "foot", "kaki", "", ""),
	}
	resets := NewResetSet("c")
	before := slices.Clone(working)

	first := Resolve(working, auto, resets)
	second := Resolve(working, auto, resets)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Resolve is not deterministic:\n%v\n%v", first, second)
	}
	if !slices.Equal(working, before) {
		t.Error("Resolve modified its input")
	}
}

func TestResetSetIgnoresEmpty(t *testing.T) {
	rs := NewResetSet("")
	if rs.Matches(form("a", "hand", "tana", "", "")) {
		t.Error("empty directive matched an uncoded form")
	}
}

func TestLongCognateIDRoundTrip(t *testing.T) {
	ids := []LongCognateID{
		{"abui1241", "hand", "tana"},
		{"kafo1240", "hand, arm", `say "x"`},
		{"", "", ""},
		{"teiw1235", "ˈeye", "mata_ʔi"},
	}
	for _, id := range ids {
		got, err := ParseLongCognateID(id.String())
		if err != nil {
			t.Errorf("ParseLongCognateID(%q): %v", id.String(), err)
			continue
		}
		if got != id {
			t.Errorf("ParseLongCognateID(%q) = %v, want %v", id.String(), got, id)
		}
	}
}

func TestParseLongCognateIDErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"abui1241",
		`("a", "b")`,
		`("a", "b", "c", "d")`,
		`("a" "b" "c")`,
		`(a, b, c)`,
	} {
		if _, err := ParseLongCognateID(s); err == nil {
			t.Errorf("ParseLongCognateID(%q) succeeded, want error", s)
		}
	}
}
