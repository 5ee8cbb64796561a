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

package dbprep

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

/*

entries

*/

type dataFunction func(pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertCommonWords,
	}
	downFunctions = []dataFunction{
		deleteCommonWords,
	}
)

// DataUp: load the starter dictionary into the database.  You
// should do this after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown: remove the starter dictionary from the database.
// You should do this before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// apply dataFunctions to the database.  Each is applied in a
// separate transaction, so later ones can rely on the effect of
// earlier ones having been committed.
func applyFunctions(fns []dataFunction) error {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/quip?sslmode=disable"
	}

	// open the database, defer the close
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	// helper that runs each function inside a transaction, and
	// ensures that any problems are rolled back.
	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if e := recover(); e != nil {
				tx.Rollback(ctx)
				panic(e)
			}
		}()
		if err := fn(tx); err != nil {
			tx.Rollback(ctx)
			return err
		}
		return tx.Commit(ctx)
	}

	// run the functions
	for _, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("%v failed: %v", fn, err)
		}
	}
	return nil
}

/*

the starter dictionary

This is not a full English word list; it is the seed that makes
a fresh install useful at all.  Real installs load a proper word
list on top of it.  The words below skew toward the short,
common words that anchor most published cryptoquips.

*/

var commonWords = []string{
	"a", "i",
	"am", "an", "as", "at", "be", "by", "do", "go", "he", "if",
	"in", "is", "it", "me", "my", "no", "of", "on", "or", "so",
	"to", "up", "us", "we",
	"all", "and", "any", "are", "but", "can", "cat", "dad", "day",
	"did", "dog", "eat", "few", "for", "get", "had", "has", "her",
	"him", "his", "how", "its", "let", "man", "mom", "new", "not",
	"now", "old", "one", "our", "out", "own", "put", "say", "see",
	"she", "the", "too", "two", "was", "way", "who", "why", "yes",
	"you",
	"also", "back", "been", "best", "come", "does", "each", "even",
	"from", "give", "good", "have", "here", "into", "just", "know",
	"life", "like", "long", "look", "make", "many", "more", "most",
	"much", "must", "only", "over", "said", "same", "some", "take",
	"than", "that", "them", "then", "they", "this", "time", "very",
	"want", "well", "were", "what", "when", "will", "with", "word",
	"work", "year", "your",
	"about", "after", "again", "could", "every", "first", "found",
	"great", "house", "large", "learn", "never", "other", "place",
	"plant", "point", "right", "small", "sound", "spell", "still",
	"study", "their", "there", "these", "thing", "think", "three",
	"water", "where", "which", "world", "would", "write",
	"always", "animal", "answer", "before", "change", "follow",
	"letter", "little", "mother", "people", "should", "things",
	"through",
	"don't", "can't", "won't", "isn't", "didn't", "doesn't",
}

// Insert the starter dictionary
func insertCommonWords(tx pgx.Tx) error {
	ctx := context.Background()
	for _, word := range commonWords {
		_, err := tx.Exec(ctx,
			"INSERT INTO words (word) VALUES ($1) ON CONFLICT (word) DO NOTHING",
			word)
		if err != nil {
			return fmt.Errorf("Database error saving word %q: %v", word, err)
		}
	}
	return nil
}

// Delete the starter dictionary
func deleteCommonWords(tx pgx.Tx) error {
	ctx := context.Background()
	for _, word := range commonWords {
		_, err := tx.Exec(ctx, "DELETE from words where word = $1", word)
		if err != nil {
			return fmt.Errorf("Database error deleting word %q: %v", word, err)
		}
	}
	return nil
}
