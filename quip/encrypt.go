package quip

/*

Quip making

The encoder is a program within a program: it exists so there is
always a supply of fresh quips to aim the solvers at.  It builds
a random legend with no fixed points (no letter encrypts to
itself, matching newspaper convention) and applies it in the
encoding direction.

*/

import (
	"math/rand"
)

// Encrypt scrambles a plaintext under a freshly generated
// legend, returning the cyphertext and the legend that made it.
// The legend is in the decoding orientation the solvers use:
// Decode on the returned cyphertext reproduces the plaintext.
// The same seed always produces the same legend, so encodings
// are reproducible.
func Encrypt(plaintext string, seed int64) (string, Legend) {
	rnd := rand.New(rand.NewSource(seed))

	// start from the identity and shuffle it hard
	var l Legend
	for i := 0; i < 26; i++ {
		l.to[i] = byte(i) + 'a'
	}
	for i := 0; i < 500; i++ {
		a := rnd.Intn(26)
		b := (a + rnd.Intn(26)) % 26
		l.to[a], l.to[b] = l.to[b], l.to[a]
	}

	// sweep out fixed points left by the shuffle; a swap can
	// plant a new one behind the sweep, so repeat until clean
	for swapped := true; swapped; {
		swapped = false
		for i := 0; i < 26; i++ {
			if l.to[i] == byte(i)+'a' {
				j := (i + 1 + rnd.Intn(25)) % 26
				l.to[i], l.to[j] = l.to[j], l.to[i]
				swapped = true
			}
		}
	}
	return l.Encode(plaintext), l
}

// HintFor picks a letter of the plaintext at random and returns
// the hint a newspaper would print for it: the cipher letter it
// became under the legend, and the plain letter itself.
func HintFor(plaintext string, l Legend, seed int64) (Hint, bool) {
	rnd := rand.New(rand.NewSource(seed))
	start := 0
	if len(plaintext) > 0 {
		start = rnd.Intn(len(plaintext))
	}
	for n := 0; n < len(plaintext); n++ {
		i := (start + n) % len(plaintext)
		if isLetter(plaintext[i]) {
			pc := toLower(plaintext[i])
			return Hint{Cipher: toLower(l.cipherFor(pc)), Plain: pc}, true
		}
	}
	return Hint{}, false
}
