package quip

import (
	"reflect"
	"testing"
)

func TestCrossTally(t *testing.T) {
	q, e := New("dro")
	if e != nil {
		t.Fatalf("Failed to create quip: %v", e)
	}
	if e := q.Collect(WordList{"the", "cat"}); e != nil {
		t.Fatalf("Failed to collect candidates: %v", e)
	}
	data, e := q.crossTally(Legend{})
	if e != nil {
		t.Fatalf("Failed to tally: %v", e)
	}

	// "the" pairs d-t, r-h, o-e; "cat" pairs d-c, r-a, o-t
	if got := data.crossMatch['d'-'a']['t'-'a']; got != 1 {
		t.Errorf("crossMatch[d][t] = %d (expected 1)", got)
	}
	if got := data.crossMatch['d'-'a']['c'-'a']; got != 1 {
		t.Errorf("crossMatch[d][c] = %d (expected 1)", got)
	}
	if got := data.crossMatch['d'-'a']['x'-'a']; got != 0 {
		t.Errorf("crossMatch[d][x] = %d (expected 0)", got)
	}
	if got := data.cyphertext['d'-'a']; got != 2 {
		t.Errorf("cyphertext[d] = %d (expected 2)", got)
	}
	if got := data.plaintext['t'-'a']; got != 2 {
		t.Errorf("plaintext[t] = %d (expected 2)", got)
	}
}

func TestCrossTallyHonorsBaseLegend(t *testing.T) {
	q, e := New("dro")
	if e != nil {
		t.Fatalf("Failed to create quip: %v", e)
	}
	if e := q.Collect(WordList{"the", "cat"}); e != nil {
		t.Fatalf("Failed to collect candidates: %v", e)
	}

	// with o pinned to e, only "the" survives into the tally
	base, e := NewLegend(Hint{'o', 'e'})
	if e != nil {
		t.Fatalf("Failed to create base legend: %v", e)
	}
	data, e := q.crossTally(base)
	if e != nil {
		t.Fatalf("Failed to tally: %v", e)
	}
	if got := data.crossMatch['d'-'a']['c'-'a']; got != 0 {
		t.Errorf("crossMatch[d][c] = %d (expected 0 under the hint)", got)
	}
	if got := data.crossMatch['d'-'a']['t'-'a']; got != 1 {
		t.Errorf("crossMatch[d][t] = %d (expected 1)", got)
	}
}

func TestCrossTallySkipsMisalignedApostrophes(t *testing.T) {
	// "abcde" is five distinct characters, so the structural match
	// admits "don't": four letters then line up with letters and
	// one lines up with the apostrophe, which must not be tallied
	q, e := New("abcde")
	if e != nil {
		t.Fatalf("Failed to create quip: %v", e)
	}
	if e := q.Collect(WordList{"don't"}); e != nil {
		t.Fatalf("Failed to collect candidates: %v", e)
	}
	data, e := q.crossTally(Legend{})
	if e != nil {
		t.Fatalf("Failed to tally: %v", e)
	}
	if got := data.crossMatch['a'-'a']['d'-'a']; got != 1 {
		t.Errorf("crossMatch[a][d] = %d (expected 1)", got)
	}
	// "d" lines up with the apostrophe and contributes nothing
	if got := data.cyphertext['d'-'a']; got != 0 {
		t.Errorf("cyphertext[d] = %d (expected 0)", got)
	}
	if got := data.crossMatch['e'-'a']['t'-'a']; got != 1 {
		t.Errorf("crossMatch[e][t] = %d (expected 1)", got)
	}

	// the whole search runs without incident
	if r, e := q.FrequencyAttack(testBudget); e != nil {
		t.Errorf("Attack failed: %v", e)
	} else if len(r.Solutions) != 0 {
		t.Errorf("Solutions %v (expected none)", r.Solutions)
	}
}

func TestCrossTallyNoWords(t *testing.T) {
	q := &Quip{text: "..."}
	if _, e := q.crossTally(Legend{}); e == nil {
		t.Errorf("No error tallying a session with no cypherwords")
	}
}

func TestRankedCandidates(t *testing.T) {
	data := &characterFrequencyData{}
	data.crossMatch[0]['t'-'a'] = 3
	data.crossMatch[0]['e'-'a'] = 5
	data.crossMatch[0]['a'-'a'] = 3

	ranked := data.rankedCandidates()

	// most hits first; ties break toward the earlier letter
	if !reflect.DeepEqual(ranked[0], []byte("eat")) {
		t.Errorf("ranked[a] = %q (expected %q)", ranked[0], "eat")
	}
	// letters with no hits impose no constraint
	for cc := 1; cc < 26; cc++ {
		if len(ranked[cc]) != 0 {
			t.Errorf("ranked[%c] = %q (expected empty)", byte(cc)+'a', ranked[cc])
		}
	}
}

func TestRankedCandidatesDeterministic(t *testing.T) {
	data := &characterFrequencyData{}
	for pc := 0; pc < 26; pc++ {
		data.crossMatch[7][pc] = 2 // a 26-way tie
	}
	first := data.rankedCandidates()
	for run := 0; run < 3; run++ {
		if again := data.rankedCandidates(); !reflect.DeepEqual(again, first) {
			t.Fatalf("Run %d ranked differently", run+1)
		}
	}
	if !reflect.DeepEqual(first[7], []byte(alphabet)) {
		t.Errorf("Tied row ranked %q (expected alphabetical order)", first[7])
	}
}
