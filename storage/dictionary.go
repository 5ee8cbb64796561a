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

package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

/*

the dictionary

The words table is the dictionary the solvers draw their
candidates from.  Reads always go through a fresh query in word
order, so every pass over the dictionary sees the same words in
the same sequence - candidate collection depends on that for
reproducible solution ordering.

*/

// A Dictionary is a word source backed by the words table.  The
// zero value is ready to use once Connect has succeeded.
type Dictionary struct{}

// ForEach visits every dictionary word in alphabetical order.
// A visit error stops the walk and is returned to the caller;
// database failures come back as errors rather than panics, so
// solvers can treat a broken dictionary like any other failed
// word source.
func (d Dictionary) ForEach(visit func(word string) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("Caught panic during dictionary walk: %v", r)
			}
		}
	}()
	pgExecute(func(tx pgx.Tx) error {
		rows, err := tx.Query(context.Background(), "select word from words order by word asc")
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var word string
			if err := rows.Scan(&word); err != nil {
				return err
			}
			if err := visit(word); err != nil {
				return err
			}
		}
		return rows.Err()
	})
	return
}

// AddWords loads words into the dictionary, in one transaction.
// Words already present are left alone.  It returns the number
// of words actually added.
func AddWords(words []string) (added int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("Caught panic during word load: %v", r)
			}
			added = 0
		}
	}()
	pgExecute(func(tx pgx.Tx) error {
		for _, word := range words {
			tag, err := tx.Exec(context.Background(),
				"INSERT INTO words (word) VALUES ($1) ON CONFLICT (word) DO NOTHING",
				word)
			if err != nil {
				return fmt.Errorf("Database error saving word %q: %v", word, err)
			}
			added += int(tag.RowsAffected())
		}
		return nil
	})
	return
}

// WordCount returns the number of words in the dictionary.
func WordCount() (count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("Caught panic during word count: %v", r)
			}
		}
	}()
	pgExecute(func(tx pgx.Tx) error {
		return tx.QueryRow(context.Background(), "select count(*) from words").Scan(&count)
	})
	return
}
