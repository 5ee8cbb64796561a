package quip

import (
	"time"
)

/*

Cryptoquip solvers

Both solvers are exhaustive depth-first searches over the space
of legends, differing only in how they slice that space.

The frequency attack observes that this machine can only decode
into words it knows, so the cross tally of cipher letters against
plain letters (built from the surviving candidates) names every
letter pairing worth trying.  For each cipher letter we rank its
observed plain letters by hit count and enumerate, letter by
letter in alphabetical order, every complete legend built from
those ranked lists.  A cipher letter with no observed pairings
imposes no constraint, so the enumeration just steps past it.  A
completed legend is kept only if it totally decodes every
cypherword into one of that word's candidates.

The word block attack instead walks the cypherwords in reading
order.  At each word it tries every candidate the current legend
is still consistent with, merges the implied pairings into a
private copy of the legend, and recurses into the next word.
Reaching past the last word means every word has a committed
decoding, so the finished legend decodes the whole cyphertext.

Both attacks run against a single wall-clock deadline, checked
before every candidate and once per word-level loop.  When the
deadline passes, the entire search tree unwinds - not just the
current branch - and the run reports that it timed out.  The
solutions discovered before the deadline are kept: "ran out of
time" and "no solution exists" are different answers, and the
caller gets to know which one it got.

Every branch owns the legend it extends.  Legends are values, so
handing one down a recursion hands down a copy; two branches
sharing a legend would contaminate each other's hypotheses, which
is a correctness bug and not a performance trick.

*/

// A solutionSet is the deduplicated collection of full
// decodings, in order of first discovery.  Membership is an
// exact-match scan of everything stored so far; the search is
// single-threaded, so no locking is needed.
type solutionSet struct {
	texts []string
}

// add stores a decoding unless an identical one is already
// present, and reports whether it was stored.
func (ss *solutionSet) add(text string) bool {
	for _, t := range ss.texts {
		if t == text {
			return false
		}
	}
	ss.texts = append(ss.texts, text)
	return true
}

// A searcher carries the state shared by every frame of one
// search: the session being solved, the wall-clock deadline, the
// solutions found so far, and whether the deadline has already
// fired.  Legends are deliberately not part of this shared
// state; each frame carries its own.
type searcher struct {
	q         *Quip
	deadline  time.Time
	solutions solutionSet
	timedOut  bool
}

// expired checks the deadline, latching timedOut once it has
// passed.  Every frame consults this before doing more work, so
// a fired deadline unwinds the whole tree.
func (s *searcher) expired() bool {
	if s.timedOut {
		return true
	}
	if !time.Now().Before(s.deadline) {
		s.timedOut = true
	}
	return s.timedOut
}

// checkBudget validates a caller-supplied time budget.  A
// non-positive budget means there is no time to search, which is
// an argument error, not an empty result.
func checkBudget(budget time.Duration) error {
	if budget <= 0 {
		return Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: BudgetAttribute,
			Condition: NoTimeCondition,
			Values:    ErrorData{budget.String()},
		}
	}
	return nil
}

/*

The frequency attack

*/

// FrequencyAttack enumerates complete legends over the
// frequency-ranked letter pairings and returns every distinct
// full decoding they produce, in discovery order.  The user's
// hints both narrow the tally and seed each enumerated legend.
// It returns an error for a non-positive budget; running out of
// budget mid-search is reported in the Result, with whatever
// solutions were found by then.
func (q *Quip) FrequencyAttack(budget time.Duration) (*Result, error) {
	if err := checkBudget(budget); err != nil {
		return nil, err
	}
	data, err := q.crossTally(q.hints)
	if err != nil {
		return nil, err
	}
	ranked := data.rankedCandidates()

	start := time.Now()
	s := &searcher{q: q, deadline: start.Add(budget)}
	s.buildLegend(0, q.hints, &ranked)
	return &Result{
		Solutions: s.solutions.texts,
		Elapsed:   time.Since(start),
		TimedOut:  s.timedOut,
	}, nil
}

// buildLegend is one frame of the frequency enumeration: assign
// a candidate plain letter to cipher letter cc and recurse into
// the next cipher letter.  Plain letters already assigned to an
// earlier cipher letter in this branch are skipped, because the
// mapping is one-to-one and non-repeating.  A cipher letter with
// no candidates keeps whatever the branch legend already says
// about it (usually nothing) and the frame steps forward.
func (s *searcher) buildLegend(cc int, l Legend, ranked *[26][]byte) {
	if s.timedOut {
		return
	}
	if cc == 26 {
		s.testLegend(l)
		return
	}
	if len(ranked[cc]) == 0 {
		s.buildLegend(cc+1, l, ranked)
		return
	}
	for _, pc := range ranked[cc] {
		if s.expired() {
			return
		}
		taken := false
		for j := 0; j < cc; j++ {
			if l.to[j] == pc {
				taken = true
				break
			}
		}
		if taken {
			continue
		}
		l.to[cc] = pc // our own copy; the caller's is untouched
		s.buildLegend(cc+1, l, ranked)
		if s.timedOut {
			return
		}
	}
}

// testLegend judges one completed legend from the frequency
// enumeration: it is a solution basis only if it totally decodes
// every cypherword into one of that word's candidates.  A word
// that collected no candidates at all can't veto anything - with
// no dictionary data it is treated as satisfied - so a thin
// dictionary degrades to partial decodings instead of silence.
func (s *searcher) testLegend(l Legend) {
	for _, w := range s.q.words {
		if len(w.possibles) == 0 {
			continue
		}
		if !w.decodedBy(l) {
			return
		}
	}
	s.solutions.add(l.Decode(s.q.text))
}

/*

The word block attack

*/

// WordBlockAttack extends the hint legend one cypherword at a
// time and returns every distinct full decoding reached, in
// discovery order.  It returns an error for a non-positive
// budget; running out of budget mid-search is reported in the
// Result, with whatever solutions were found by then.
func (q *Quip) WordBlockAttack(budget time.Duration) (*Result, error) {
	if err := checkBudget(budget); err != nil {
		return nil, err
	}
	start := time.Now()
	s := &searcher{q: q, deadline: start.Add(budget)}
	s.nextWord(0, q.hints)
	return &Result{
		Solutions: s.solutions.texts,
		Elapsed:   time.Since(start),
		TimedOut:  s.timedOut,
	}, nil
}

// nextWord is one frame of the word block attack: commit
// cypherword index to each of its still-consistent candidates in
// turn, and recurse with the merged legend.  Committing the last
// word completes a decoding path, so the merged legend covers
// every letter of the cyphertext and the decoding is recorded.
// The caller's legend is never touched: Merge returns a fresh
// copy, and that copy is what the next frame gets.
func (s *searcher) nextWord(index int, l Legend) {
	w := s.q.words[index]
	for _, plain := range w.possibles {
		if s.expired() {
			return
		}
		if !l.Consistent(w.text, plain, false) {
			continue
		}
		merged, ok := l.Merge(w.text, plain)
		if !ok {
			continue
		}
		if index == len(s.q.words)-1 {
			s.solutions.add(merged.Decode(s.q.text))
			continue
		}
		s.nextWord(index+1, merged)
		if s.timedOut {
			return
		}
	}
	s.expired()
}
