package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/drbobbeaty/Quip/dbprep"
	"github.com/drbobbeaty/Quip/quip"
)

/*

setup

*/

// we are writing cache entries and dictionary rows up the wazoo;
// make sure they don't persist past the end of the test run.
func TestMain(m *testing.M) {
	os.Setenv("DBPREP_PATH", filepath.Join("..", "dbprep"))
	if err := dbprep.ReinitializeAll(); err != nil {
		panic(fmt.Errorf("Failed to reinitialize data at startup: %v", err))
	}
	defer func(code int) {
		if code == 0 {
			if err := dbprep.ReinitializeAll(); err != nil {
				panic(fmt.Errorf("Failed to reinitialize data at teardown: %v", err))
			}
		}
		os.Exit(code)
	}(m.Run())
}

/*

connection

*/

func TestConnect(t *testing.T) {
	os.Setenv("DBPREP_PATH", filepath.Join("..", "dbprep"))
	if cid, dbid, err := Connect(); err != nil {
		t.Errorf("Couldn't connect to storage: %v", err)
	} else if cid != rdUrl || dbid != pgUrl {
		t.Errorf("Connected to wrong cache (%s) or wrong database (%s)", cid, dbid)
	}
	defer Close()
}

/*

the dictionary

*/

func TestDictionaryWordCount(t *testing.T) {
	if _, _, err := Connect(); err != nil {
		t.Fatalf("Couldn't connect to storage: %v", err)
	}
	defer Close()
	count, err := WordCount()
	if err != nil {
		t.Fatalf("Couldn't count words: %v", err)
	}
	if count == 0 {
		t.Errorf("Dictionary is empty after EnsureData")
	}
}

func TestDictionaryOrderAndRestart(t *testing.T) {
	if _, _, err := Connect(); err != nil {
		t.Fatalf("Couldn't connect to storage: %v", err)
	}
	defer Close()

	var d Dictionary
	collect := func() (words []string) {
		if err := d.ForEach(func(word string) error {
			words = append(words, word)
			return nil
		}); err != nil {
			t.Fatalf("Dictionary walk failed: %v", err)
		}
		return
	}
	first := collect()
	if len(first) == 0 {
		t.Fatalf("Dictionary walk produced no words")
	}
	for i := 1; i < len(first); i++ {
		if first[i-1] >= first[i] {
			t.Fatalf("Dictionary out of order at %d: %q then %q", i, first[i-1], first[i])
		}
	}
	// a second walk replays the same words in the same order
	if again := collect(); !reflect.DeepEqual(again, first) {
		t.Errorf("Second walk differed from the first")
	}
}

func TestSolveFromDictionary(t *testing.T) {
	if _, _, err := Connect(); err != nil {
		t.Fatalf("Couldn't connect to storage: %v", err)
	}
	defer Close()

	// "dro" with d=t and o=e can only be "the" in the starter
	// dictionary ("are", "one", and "she" survive o=e alone)
	q, err := quip.New("dro", quip.Hint{Cipher: 'd', Plain: 't'}, quip.Hint{Cipher: 'o', Plain: 'e'})
	if err != nil {
		t.Fatalf("Couldn't create quip: %v", err)
	}
	if err := q.Collect(Dictionary{}); err != nil {
		t.Fatalf("Couldn't collect candidates: %v", err)
	}
	r, err := q.WordBlockAttack(10 * time.Second)
	if err != nil {
		t.Fatalf("Attack failed: %v", err)
	}
	if !reflect.DeepEqual(r.Solutions, []string{"the"}) {
		t.Errorf("Solutions %v (expected %v)", r.Solutions, []string{"the"})
	}
}

/*

cached results

*/

func TestResultCacheRoundTrip(t *testing.T) {
	if _, _, err := Connect(); err != nil {
		t.Fatalf("Couldn't connect to storage: %v", err)
	}
	defer Close()

	hints := []quip.Hint{{Cipher: 'o', Plain: 'e'}}
	result := &quip.Result{
		Solutions: []string{"the"},
		Elapsed:   123 * time.Millisecond,
	}
	SaveResult("dro", hints, "wordblock", result)

	cached, ok := LookupResult("dro", hints, "wordblock")
	if !ok {
		t.Fatalf("Saved result was not found")
	}
	if !reflect.DeepEqual(cached.Solutions, result.Solutions) {
		t.Errorf("Cached solutions %v (expected %v)", cached.Solutions, result.Solutions)
	}

	// another attack is another key
	if _, ok := LookupResult("dro", hints, "frequency"); ok {
		t.Errorf("Result leaked across attack kinds")
	}
	// other hints are another key
	if _, ok := LookupResult("dro", nil, "wordblock"); ok {
		t.Errorf("Result leaked across hint sets")
	}
}

func TestResultCacheSkipsTimeouts(t *testing.T) {
	if _, _, err := Connect(); err != nil {
		t.Fatalf("Couldn't connect to storage: %v", err)
	}
	defer Close()

	partial := &quip.Result{Solutions: nil, Elapsed: time.Second, TimedOut: true}
	SaveResult("lkd", nil, "frequency", partial)
	if _, ok := LookupResult("lkd", nil, "frequency"); ok {
		t.Errorf("A timed-out result was cached")
	}
}

func TestResultKeyHintOrder(t *testing.T) {
	a := resultKey("dro", []quip.Hint{{Cipher: 'o', Plain: 'e'}, {Cipher: 'd', Plain: 't'}}, "wordblock")
	b := resultKey("dro", []quip.Hint{{Cipher: 'd', Plain: 't'}, {Cipher: 'o', Plain: 'e'}}, "wordblock")
	if a != b {
		t.Errorf("Hint order changed the cache key")
	}
	c := resultKey("dro", []quip.Hint{{Cipher: 'd', Plain: 't'}}, "wordblock")
	if a == c {
		t.Errorf("Different hint sets share a cache key")
	}
}
