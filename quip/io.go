// Quip - a cryptoquip (simple substitution cipher) solving tool.
// Copyright (C) 2016 Robert E. Beaty.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package quip

import (
	"fmt"
	"strings"
)

/*

Print forms, for debugging and CLI display.

*/

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// String gives the two-line view of a legend: the cipher
// alphabet over the plain letters it maps to, with '.' for the
// slots that aren't known yet.
func (l Legend) String() string {
	var b strings.Builder
	b.WriteString("cypher: " + alphabet + "\n")
	b.WriteString("plain:  ")
	for i := 0; i < 26; i++ {
		if l.to[i] == 0 {
			b.WriteByte('.')
		} else {
			b.WriteByte(l.to[i])
		}
	}
	return b.String()
}

// String gives a cypherword as its token plus the count of
// candidates it has collected.
func (w *Cypherword) String() string {
	return fmt.Sprintf("%s (%d possibles)", w.text, len(w.possibles))
}

// String gives the session's original cyphertext.
func (q *Quip) String() string {
	return q.text
}

// String gives the full cross-tally grid, plain letters across
// the top and cipher letters down the left side.  A little over
// 26 lines, so it won't fit a 24-line terminal, but it does fit
// in 80 columns.
func (d *characterFrequencyData) String() string {
	var b strings.Builder
	b.WriteString("  ")
	for i := 0; i < 26; i++ {
		fmt.Fprintf(&b, " %c ", alphabet[i])
	}
	b.WriteByte('\n')
	for cc := 0; cc < 26; cc++ {
		fmt.Fprintf(&b, "%c ", alphabet[cc])
		for pc := 0; pc < 26; pc++ {
			fmt.Fprintf(&b, "%2d ", d.crossMatch[cc][pc])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// CrossTally renders the frequency analysis of the session's
// candidates under its hint legend, for diagnostic display.
func (q *Quip) CrossTally() (string, error) {
	data, err := q.crossTally(q.hints)
	if err != nil {
		return "", err
	}
	return data.String(), nil
}

/*

Hints in their command-line "a=b" form.

*/

// ParseHint reads a hint in its "a=b" form: cipher letter,
// equals sign, plain letter.
func ParseHint(arg string) (Hint, error) {
	if len(arg) != 3 || arg[1] != '=' || !isLetter(arg[0]) || !isLetter(arg[2]) {
		return Hint{}, Error{
			Scope:     ArgumentScope,
			Structure: AttributeValueStructure,
			Attribute: HintAttribute,
			Condition: NotALetterCondition,
			Values:    ErrorData{arg, arg},
		}
	}
	return Hint{Cipher: toLower(arg[0]), Plain: toLower(arg[2])}, nil
}

// String gives a hint back in its "a=b" form.
func (h Hint) String() string {
	return fmt.Sprintf("%c=%c", h.Cipher, h.Plain)
}
