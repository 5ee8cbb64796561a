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

// Package quip provides a model for cryptoquips - the simple
// substitution ciphers found on newspaper comics pages - and
// solvers for them.  It supports both a golang interface and a
// web interface to the solvers.
//
// In this package, a cryptoquip is made of cypherwords, the
// tokenized units of the cyphertext.  Each cypherword collects
// the dictionary words whose structural letter pattern matches
// its own; these are the only plaintexts it can possibly decode
// to, no matter what substitution is in play.  The substitution
// itself is called a legend: a one-to-one mapping from cipher
// letters to plain letters, possibly partial.  Legends grow only
// through merging, which is the single place the one-to-one
// invariant is enforced; a merge either yields a new legend or
// rejects the pairing outright, never a half-applied state.
//
// Two solvers are provided.  The frequency attack ranks, for
// each cipher letter, the plain letters observed across all
// surviving candidates, and enumerates complete legends over
// that reduced space.  The word block attack commits to one
// cypherword's plaintext at a time, extending a private copy of
// the legend word by word.  Both run under a wall-clock budget
// and report their deduplicated decodings in discovery order.
package quip

import (
	"time"
)

// A Hint is a single user-supplied element of the legend: the
// assertion that the given cipher letter decodes to the given
// plain letter.  Both letters must be lower-case ASCII.
type Hint struct {
	Cipher byte `json:"cipher"`
	Plain  byte `json:"plain"`
}

// A WordSource produces the dictionary words offered to every
// cypherword during candidate collection.  ForEach must be
// restartable: calling it again replays the words from the
// beginning.  Word order must be stable between calls, because
// solution discovery order follows candidate order.
type WordSource interface {
	ForEach(visit func(word string) error) error
}

// A WordList is the simplest WordSource: an in-memory slice of
// words, visited in slice order.
type WordList []string

// ForEach visits the words of the list in order.
func (wl WordList) ForEach(visit func(word string) error) error {
	for _, w := range wl {
		if err := visit(w); err != nil {
			return err
		}
	}
	return nil
}

// A Result is the outcome of one solver run.  Solutions holds
// the full decodings in order of first discovery, each one at
// most once.  TimedOut reports that the wall-clock budget ran
// out before the search space was exhausted; the solutions
// found up to that point are retained, so an empty Solutions
// with TimedOut set means "don't know", not "no solution".
type Result struct {
	Solutions []string      `json:"solutions"`
	Elapsed   time.Duration `json:"elapsed"`
	TimedOut  bool          `json:"timedOut,omitempty"`
}

// DefaultBudget is the solving time allowed when the caller has
// no opinion.
const DefaultBudget = 20 * time.Second

// MaxBudget caps the solving time a caller can request.
const MaxBudget = 300 * time.Second
