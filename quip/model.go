package quip

/*

Cryptoquip representation

*/

import (
	"strings"
)

/*

Characters

The engine works on ASCII bytes.  Cipher and plain letters are
the 26 lower-case letters; upper-case input is folded on the fly
so decoding can preserve the case of the original cyphertext.
Apostrophes are part of words ("don't"); other punctuation
separates them, the same way the newspaper prints a quip.

*/

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func toLower(c byte) byte {
	if isUpper(c) {
		return c + ('a' - 'A')
	}
	return c
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isPunct reports printable ASCII that is neither a letter, a
// digit, nor whitespace.
func isPunct(c byte) bool {
	return c > ' ' && c < 0x7f && !isLetter(c) && !(c >= '0' && c <= '9')
}

// isWordChar reports the characters that belong to a word token.
func isWordChar(c byte) bool {
	return isLetter(c) || c == '\''
}

/*

Legends

*/

// A Legend is the substitution pattern that, when applied to the
// cyphertext, yields the plaintext.  It has one slot per cipher
// letter; a zero slot means that cipher letter's decoding is not
// yet known.  Any two set slots always hold distinct plain
// letters.  A Legend is a value: assignment copies it, so every
// search branch can extend its own copy without disturbing its
// siblings.
type Legend struct {
	to [26]byte // to[c-'a'] is the plain letter for cipher letter c
}

// NewLegend builds a legend from user-supplied hints.  Hints
// must be lower-case letter pairs, and must agree among
// themselves: the same cipher letter given two different plain
// letters, or two cipher letters given the same plain letter,
// is rejected before any search is attempted.
func NewLegend(hints ...Hint) (Legend, error) {
	var l Legend
	for _, h := range hints {
		cc, pc := toLower(h.Cipher), toLower(h.Plain)
		if cc < 'a' || cc > 'z' || pc < 'a' || pc > 'z' {
			return Legend{}, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: HintAttribute,
				Condition: NotALetterCondition,
				Values:    ErrorData{string(h.Cipher) + "=" + string(h.Plain), string(h.Cipher) + "=" + string(h.Plain)},
			}
		}
		if cur := l.to[cc-'a']; cur != 0 && cur != pc {
			return Legend{}, Error{
				Scope:     ArgumentScope,
				Structure: AttributeValueStructure,
				Attribute: HintAttribute,
				Condition: HintConflictCondition,
				Values:    ErrorData{string(cc) + "=" + string(pc), string(cc), string(cur)},
			}
		}
		for i := 0; i < 26; i++ {
			if l.to[i] == pc && byte(i) != cc-'a' {
				return Legend{}, Error{
					Scope:     ArgumentScope,
					Structure: AttributeValueStructure,
					Attribute: HintAttribute,
					Condition: PlainLetterClaimedCondition,
					Values:    ErrorData{string(cc) + "=" + string(pc), string(pc), string(byte(i) + 'a')},
				}
			}
		}
		l.to[cc-'a'] = pc
	}
	return l, nil
}

// plainFor maps a single cipher letter through the legend,
// preserving case.  It returns 0 for letters whose decoding is
// not yet known; non-letters map to themselves.
func (l Legend) plainFor(c byte) byte {
	if !isLetter(c) {
		return c
	}
	pc := l.to[toLower(c)-'a']
	if pc == 0 {
		return 0
	}
	if isUpper(c) {
		return pc - ('a' - 'A')
	}
	return pc
}

// cipherFor is the reverse lookup: the cipher letter that
// decodes to the given plain letter, preserving case.  Plain
// letters no cipher letter maps to, and non-letters, map to
// themselves.
func (l Legend) cipherFor(c byte) byte {
	if !isLetter(c) {
		return c
	}
	pc := toLower(c)
	for i := 0; i < 26; i++ {
		if l.to[i] == pc {
			cc := byte(i) + 'a'
			if isUpper(c) {
				return cc - ('a' - 'A')
			}
			return cc
		}
	}
	return c
}

// Complete reports whether every cipher letter has a decoding.
func (l Legend) Complete() bool {
	for i := 0; i < 26; i++ {
		if l.to[i] == 0 {
			return false
		}
	}
	return true
}

// Consistent reports whether this legend can turn the cipher
// token into the plain candidate.  Positions whose cipher letter
// the legend already maps must decode to the candidate's letter
// at that position (case-insensitively).  Positions the legend
// leaves unset are accepted, unless mustBeComplete is set, in
// which case any unset position fails the check.  The check
// never modifies the legend; it is the read-only gate used both
// to keep a search branch alive (gaps allowed) and to verify a
// finished legend really decodes a word (no gaps allowed).
func (l Legend) Consistent(cipher, plain string, mustBeComplete bool) bool {
	if len(cipher) != len(plain) {
		return false
	}
	for i := 0; i < len(cipher); i++ {
		pc := l.plainFor(toLower(cipher[i]))
		if pc == 0 {
			if mustBeComplete {
				return false
			}
			continue
		}
		if toLower(pc) != toLower(plain[i]) {
			return false
		}
	}
	return true
}

// Merge aligns a cipher token with an assumed plaintext and
// folds the pairings it implies into a copy of the legend.  The
// ok result is false when the pairing can't be legal: mismatched
// lengths, punctuation in one word where the other has a letter,
// a cipher letter already mapped elsewhere, or a plain letter
// already claimed by a different cipher letter.  On rejection
// the receiver is unchanged and the returned legend is
// meaningless; a rejected merge is how a search branch dies, so
// it is not an error.  This is the only operation that extends a
// legend, which makes it the single point where the one-to-one
// invariant is enforced.
func (l Legend) Merge(cipher, plain string) (Legend, bool) {
	if len(cipher) != len(plain) {
		return Legend{}, false
	}
	for i := 0; i < len(cipher); i++ {
		cc, pc := toLower(cipher[i]), toLower(plain[i])

		// punctuation must line up; matched punctuation carries
		// no mapping information
		if isPunct(cc) != isPunct(pc) {
			return Legend{}, false
		}
		if isPunct(cc) {
			continue
		}

		if cur := l.to[cc-'a']; cur != 0 {
			if cur != pc {
				return Legend{}, false
			}
			continue
		}
		for j := 0; j < 26; j++ {
			if l.to[j] == pc {
				return Legend{}, false
			}
		}
		l.to[cc-'a'] = pc
	}
	return l, true
}

// Decode applies the legend to a whole cyphertext, preserving
// the case of each letter and passing spaces and punctuation
// through untouched.  Letters whose decoding is not yet known
// come out as '_', so a partial legend produces a recognizable
// partial decoding.
func (l Legend) Decode(cyphertext string) string {
	var b strings.Builder
	b.Grow(len(cyphertext))
	for i := 0; i < len(cyphertext); i++ {
		c := cyphertext[i]
		if !isLetter(c) {
			b.WriteByte(c)
			continue
		}
		pc := l.plainFor(c)
		if pc == 0 {
			pc = '_'
		}
		b.WriteByte(pc)
	}
	return b.String()
}

// Encode applies the legend in reverse, turning plaintext into
// cyphertext.  Letters the legend doesn't cover pass through
// unchanged, as do spaces and punctuation.  This is the quip
// maker's half of the game; the solver only uses it to
// manufacture test material.
func (l Legend) Encode(plaintext string) string {
	var b strings.Builder
	b.Grow(len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		b.WriteByte(l.cipherFor(plaintext[i]))
	}
	return b.String()
}

/*

Cypherwords

*/

// A Cypherword is one tokenized unit of the cyphertext along
// with every dictionary word whose structural letter pattern
// matches it.  The candidate list is independent of any legend:
// it answers "structurally possible", not "currently
// consistent".  Once the dictionary scan is over the word never
// changes again; the solvers only read it.
type Cypherword struct {
	text      string   // the literal token from the cyphertext
	possibles []string // structurally matching dictionary words
}

// newCypherword makes a cypherword for one token.
func newCypherword(token string) *Cypherword {
	return &Cypherword{text: token}
}

// Text returns the literal cyphertext token.
func (w *Cypherword) Text() string {
	return w.text
}

// Possibles returns the candidate plaintexts collected so far.
// The returned slice is the word's own storage; callers must not
// modify it.
func (w *Cypherword) Possibles() []string {
	return w.possibles
}

// check offers one dictionary word to the cypherword.  The word
// is kept as a candidate exactly when its letter pattern matches
// the token's.  Returns whether the word was kept.
func (w *Cypherword) check(word string) bool {
	if !patternsMatch(w.text, word) {
		return false
	}
	w.possibles = append(w.possibles, word)
	return true
}

// possibleFor finds the first candidate this legend can turn the
// token into, under the given completeness requirement.
func (w *Cypherword) possibleFor(l Legend, mustBeComplete bool) (string, bool) {
	for _, p := range w.possibles {
		if l.Consistent(w.text, p, mustBeComplete) {
			return p, true
		}
	}
	return "", false
}

// decodedBy reports whether the legend totally decodes this
// cypherword into one of its candidates.
func (w *Cypherword) decodedBy(l Legend) bool {
	_, ok := w.possibleFor(l, true)
	return ok
}

// patternsMatch compares the structure of two words: they match
// exactly when, for every pair of positions, the first word
// repeats a character there just in case the second word does.
// "xlx" matches "dad" (first and last positions repeat), but not
// "cat" (no repeats) and not "all" (repeat in the wrong place).
// The comparison knows nothing about any substitution; it is the
// cheap filter that bounds every candidate list before legend
// reasoning starts.
func patternsMatch(cipher, plain string) bool {
	if len(cipher) != len(plain) {
		return false
	}
	for i := 0; i < len(cipher); i++ {
		cc, pc := toLower(cipher[i]), toLower(plain[i])
		for j := i + 1; j < len(cipher); j++ {
			if (toLower(cipher[j]) == cc) != (toLower(plain[j]) == pc) {
				return false
			}
		}
	}
	return true
}

/*

Cryptoquips

*/

// A Quip is one solving session: the original cyphertext, its
// cypherwords in reading order, and the legend seeded from the
// user's hints.  The session owns the cypherword list; the
// solvers treat it as read-only.
type Quip struct {
	text  string
	words []*Cypherword
	hints Legend
}

// New tokenizes a cyphertext and seeds the session legend from
// the given hints.  The cyphertext may contain only letters,
// whitespace, and simple punctuation; apostrophes join a word,
// all other punctuation separates words.  An empty text, a text
// with no words, an illegal character, or conflicting hints all
// produce an Error before any solving work is done.
func New(cyphertext string, hints ...Hint) (*Quip, error) {
	base, err := NewLegend(hints...)
	if err != nil {
		return nil, err
	}
	if len(cyphertext) == 0 {
		return nil, Error{
			Scope:     CyphertextScope,
			Structure: AttributeStructure,
			Attribute: CyphertextAttribute,
			Condition: EmptyCondition,
		}
	}
	for i := 0; i < len(cyphertext); i++ {
		if c := cyphertext[i]; !isLetter(c) && !isSpace(c) && !isPunct(c) {
			return nil, Error{
				Scope:     CyphertextScope,
				Structure: AttributeValueStructure,
				Attribute: CyphertextAttribute,
				Condition: IllegalCharacterCondition,
				Values:    ErrorData{cyphertext, string(c)},
			}
		}
	}

	q := &Quip{text: cyphertext, hints: base}
	for i := 0; i < len(cyphertext); {
		// a word starts at a letter; apostrophes only continue one
		for i < len(cyphertext) && !isLetter(cyphertext[i]) {
			i++
		}
		start := i
		for i < len(cyphertext) && isWordChar(cyphertext[i]) {
			i++
		}
		if i > start {
			q.words = append(q.words, newCypherword(cyphertext[start:i]))
		}
	}
	if len(q.words) == 0 {
		return nil, Error{
			Scope:     CyphertextScope,
			Structure: AttributeStructure,
			Attribute: CyphertextAttribute,
			Condition: NoCypherwordsCondition,
		}
	}
	return q, nil
}

// Text returns the original cyphertext.
func (q *Quip) Text() string {
	return q.text
}

// Words returns the cypherwords in reading order.  The slice is
// the session's own storage; callers must not modify it.
func (q *Quip) Words() []*Cypherword {
	return q.words
}

// Hints returns the legend seeded from the user's hints.
func (q *Quip) Hints() Legend {
	return q.hints
}

// Collect runs the candidate-collection phase: every word the
// source produces is offered to every cypherword, and sticks to
// the ones whose pattern it matches.  Collect may be called with
// several sources; each call appends.  After the last call the
// cypherwords are effectively frozen, and solving can begin.
func (q *Quip) Collect(src WordSource) error {
	return src.ForEach(func(word string) error {
		for _, w := range q.words {
			w.check(word)
		}
		return nil
	})
}
