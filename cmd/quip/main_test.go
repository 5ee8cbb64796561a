package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/drbobbeaty/Quip/quip"
)

func TestClampBudget(t *testing.T) {
	if _, err := clampBudget(0); err == nil {
		t.Errorf("No error from zero budget")
	}
	if _, err := clampBudget(-5); err == nil {
		t.Errorf("No error from negative budget")
	}
	if b, err := clampBudget(20); err != nil || b != 20*time.Second {
		t.Errorf("Budget %v, error %v (expected 20s)", b, err)
	}
	if b, err := clampBudget(4000); err != nil || b != quip.MaxBudget {
		t.Errorf("Budget %v, error %v (expected the maximum)", b, err)
	}
}

func TestMergeResults(t *testing.T) {
	a := &quip.Result{Solutions: []string{"the cat", "the dog"}, Elapsed: time.Second}
	b := &quip.Result{Solutions: []string{"the dog", "she dog"}, Elapsed: 2 * time.Second, TimedOut: true}
	m := mergeResults(a, b)
	want := []string{"the cat", "the dog", "she dog"}
	if !reflect.DeepEqual(m.Solutions, want) {
		t.Errorf("Merged %v (expected %v)", m.Solutions, want)
	}
	if m.Elapsed != 3*time.Second {
		t.Errorf("Merged elapsed %v (expected 3s)", m.Elapsed)
	}
	if !m.TimedOut {
		t.Errorf("Merged result lost the timeout flag")
	}
}

func TestUsableWord(t *testing.T) {
	good := []string{"the", "don't", "a"}
	bad := []string{"", "Main", "u.s.a", "risqué", "two words"}
	for _, w := range good {
		if !usableWord(w) {
			t.Errorf("Rejected usable word %q", w)
		}
	}
	for _, w := range bad {
		if usableWord(w) {
			t.Errorf("Accepted unusable word %q", w)
		}
	}
}

func TestFileWordsRestartable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words")
	content := "the\nCat\nu.s.a\ndog\n\nrisqué\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Couldn't write words file: %v", err)
	}
	src := fileWords(path)
	collect := func() (words []string) {
		if err := src.ForEach(func(word string) error {
			words = append(words, word)
			return nil
		}); err != nil {
			t.Fatalf("Walk failed: %v", err)
		}
		return
	}
	want := []string{"the", "cat", "dog"}
	first := collect()
	if !reflect.DeepEqual(first, want) {
		t.Errorf("First walk %v (expected %v)", first, want)
	}
	// the file is re-opened on each walk
	if again := collect(); !reflect.DeepEqual(again, first) {
		t.Errorf("Second walk %v differed from the first", again)
	}
}

func TestFileWordsMissingFile(t *testing.T) {
	src := fileWords(filepath.Join(t.TempDir(), "no-such-file"))
	if err := src.ForEach(func(string) error { return nil }); err == nil {
		t.Errorf("No error walking a missing file")
	}
}

func TestHintFlags(t *testing.T) {
	var h hintFlags
	if err := h.Set("o=e"); err != nil {
		t.Fatalf("Couldn't set hint: %v", err)
	}
	if err := h.Set("d=t"); err != nil {
		t.Fatalf("Couldn't set hint: %v", err)
	}
	if err := h.Set("bogus"); err == nil {
		t.Errorf("No error from a malformed hint")
	}
	if got := h.String(); got != "o=e,d=t" {
		t.Errorf("Hints %q (expected %q)", got, "o=e,d=t")
	}
	if len(h) != 2 {
		t.Errorf("Collected %d hints (expected 2)", len(h))
	}
}

func TestRunAttackBoth(t *testing.T) {
	q, err := quip.New("dro")
	if err != nil {
		t.Fatalf("Couldn't create quip: %v", err)
	}
	if err := q.Collect(quip.WordList{"the", "cat"}); err != nil {
		t.Fatalf("Couldn't collect: %v", err)
	}
	r, err := runAttack(q, "both", 5*time.Second)
	if err != nil {
		t.Fatalf("Attack failed: %v", err)
	}
	// the two attacks find the same two decodings; merging must
	// not duplicate them
	if len(r.Solutions) != 2 {
		t.Errorf("Solutions %v (expected 2 distinct)", r.Solutions)
	}
}
