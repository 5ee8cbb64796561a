package quip

/*

Character frequency analysis

*/

import (
	"sort"
)

// characterFrequencyData is the cross tally of cipher letters
// against plain letters, built by scanning every cypherword's
// candidates.  crossMatch[c][p] counts, over all candidates that
// survive the base legend, how often cipher letter c lines up
// with plain letter p.  The two marginal tallies count total
// letter appearances on each side.  The data is transient:
// recomputed for each search invocation, never stored.
type characterFrequencyData struct {
	crossMatch [26][26]int
	plaintext  [26]int
	cyphertext [26]int
}

// crossTally scans every cypherword and every one of its
// candidates that the base legend is consistent with (gaps
// allowed) and tallies the aligned letter pairs.  A zero-value
// base legend is consistent with everything, so it tallies every
// candidate of every word.  It is an error to tally a session
// with no cypherwords.
func (q *Quip) crossTally(base Legend) (*characterFrequencyData, error) {
	if len(q.words) == 0 {
		return nil, Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: CyphertextAttribute,
			Condition: NoCypherwordsCondition,
		}
	}
	data := &characterFrequencyData{}
	for _, w := range q.words {
		for _, p := range w.possibles {
			if !base.Consistent(w.text, p, false) {
				continue
			}
			for i := 0; i < len(w.text); i++ {
				cc := toLower(w.text[i])
				if !isLetter(cc) {
					continue
				}
				// candidates only pattern-match structurally, so a
				// letter here can line up with the candidate's
				// apostrophe; such positions say nothing about
				// letter pairings
				pc := toLower(p[i])
				if !isLetter(pc) {
					continue
				}
				data.cyphertext[cc-'a']++
				data.plaintext[pc-'a']++
				data.crossMatch[cc-'a'][pc-'a']++
			}
		}
	}
	return data, nil
}

// rankedCandidates turns one row of the cross tally into the
// candidate plain letters for that cipher letter, most-often
// matched first.  Ties break toward the earlier plain letter so
// the ordering, and therefore the whole search, is the same on
// every run.  Letters with no hits at all don't appear; an empty
// row means "no constraint".
func (d *characterFrequencyData) rankedCandidates() [26][]byte {
	var ranked [26][]byte
	for cc := 0; cc < 26; cc++ {
		row := d.crossMatch[cc]
		for pc := 0; pc < 26; pc++ {
			if row[pc] > 0 {
				ranked[cc] = append(ranked[cc], byte(pc)+'a')
			}
		}
		r := ranked[cc]
		sort.SliceStable(r, func(i, j int) bool {
			return row[r[i]-'a'] > row[r[j]-'a']
		})
	}
	return ranked
}
