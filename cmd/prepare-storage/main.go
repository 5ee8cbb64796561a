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

// Prepare the quip storage system: schema, starter dictionary,
// and optionally a full word list.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/drbobbeaty/Quip/dbprep"
	"github.com/drbobbeaty/Quip/storage"
)

var wordsFile = flag.String("words", "", "word list to load into the dictionary, one word per line")

func main() {
	flag.Parse()

	log.Printf("Preparing data storage...")
	if err := dbprep.EnsureData(); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	log.Printf("Database schema and starter dictionary are in place.")

	if *wordsFile == "" {
		return
	}
	words, err := readWords(*wordsFile)
	if err != nil {
		log.Fatalf("Couldn't read word list %q: %v", *wordsFile, err)
	}
	if _, _, err := storage.Connect(); err != nil {
		log.Fatalf("Couldn't connect to storage: %v", err)
	}
	defer storage.Close()
	added, err := storage.AddWords(words)
	if err != nil {
		log.Fatalf("Couldn't load word list: %v", err)
	}
	count, err := storage.WordCount()
	if err != nil {
		log.Fatalf("Couldn't count words: %v", err)
	}
	log.Printf("Loaded %d new word(s) from %q; dictionary now has %d.", added, *wordsFile, count)
}

// readWords reads a word list, one word per line, dropping the
// entries the solver can't use (anything outside lower-case
// letters and apostrophes, once case is folded).
func readWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
scan:
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if len(word) == 0 {
			continue
		}
		for i := 0; i < len(word); i++ {
			if c := word[i]; (c < 'a' || c > 'z') && c != '\'' {
				continue scan
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}
