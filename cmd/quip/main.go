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

// Command-line cryptoquip solver and quip maker
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/drbobbeaty/Quip/quip"
	"github.com/drbobbeaty/Quip/storage"
)

var (
	hints      hintFlags
	budgetSecs = flag.Int("T", 20, "time budget for the search, in seconds (max 300)")
	freqAttack = flag.Bool("F", false, "run the character frequency attack")
	wordAttack = flag.Bool("W", false, "run the word block attack (the default)")
	wordsFile  = flag.String("f", "", "dictionary file, one word per line")
	useDB      = flag.Bool("d", false, "use the database dictionary and the result cache")
	markdown   = flag.Bool("m", false, "marked-up (Markdown) output")
	encrypt    = flag.Bool("e", false, "make a quip: encrypt the text instead of solving it")
	showLegend = flag.Bool("l", false, "with -e, show the legend that was used")
	emitCmd    = flag.Bool("c", false, "with -e, print the command line that solves the quip")
)

func init() {
	flag.Var(&hints, "k", "known letter pairing, cipher=plain (repeatable)")
}

func main() {
	flag.Parse()
	text := strings.Join(flag.Args(), " ")
	if text == "" {
		log.Fatalf("No text given.  Usage: quip [options] <text>")
	}

	if *encrypt {
		encryptMain(text)
		return
	}
	solveMain(text)
}

/*

solving

*/

func solveMain(cyphertext string) {
	budget, err := clampBudget(*budgetSecs)
	if err != nil {
		log.Fatalf("%v", err)
	}
	q, err := quip.New(cyphertext, hints...)
	if err != nil {
		log.Fatalf("%v", err)
	}

	// default attack is the word block attack
	attack := "wordblock"
	if *freqAttack && !*wordAttack {
		attack = "frequency"
	} else if *freqAttack && *wordAttack {
		attack = "both"
	}

	// when solving against the database, an identical prior solve
	// may already be cached
	if *useDB {
		cid, dbid, err := storage.Connect()
		if err != nil {
			log.Fatalf("Couldn't connect to storage: %v", err)
		}
		defer storage.Close()
		log.Printf("Connected to cache at %q, database at %q", cid, dbid)
		if result, ok := storage.LookupResult(cyphertext, hints, attack); ok {
			log.Printf("Using cached result.")
			report(cyphertext, result)
			return
		}
	}

	src, err := wordSource()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := q.Collect(src); err != nil {
		log.Fatalf("Couldn't collect candidate words: %v", err)
	}

	result, err := runAttack(q, attack, budget)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *useDB {
		storage.SaveResult(cyphertext, hints, attack, result)
	}
	report(cyphertext, result)
}

// clampBudget turns the -T value into a search budget.  Asking
// for more than the maximum gets the maximum; asking for nothing
// is an error.
func clampBudget(secs int) (time.Duration, error) {
	budget := time.Duration(secs) * time.Second
	if budget <= 0 {
		return 0, fmt.Errorf("Time budget must be positive, have %d", secs)
	}
	if budget > quip.MaxBudget {
		budget = quip.MaxBudget
	}
	return budget, nil
}

// runAttack runs the selected attack, or both against one shared
// budget: whatever wall clock the first attack leaves is all the
// second one gets.
func runAttack(q *quip.Quip, attack string, budget time.Duration) (*quip.Result, error) {
	switch attack {
	case "frequency":
		return q.FrequencyAttack(budget)
	case "wordblock":
		return q.WordBlockAttack(budget)
	}
	deadline := time.Now().Add(budget)
	first, err := q.FrequencyAttack(budget)
	if err != nil {
		return nil, err
	}
	remaining := time.Until(deadline)
	if remaining <= 0 {
		first.TimedOut = true
		return first, nil
	}
	second, err := q.WordBlockAttack(remaining)
	if err != nil {
		return nil, err
	}
	return mergeResults(first, second), nil
}

// mergeResults combines the two attacks' answers, keeping the
// discovery order and dropping the duplicates the second attack
// rediscovers.
func mergeResults(a, b *quip.Result) *quip.Result {
	merged := &quip.Result{
		Solutions: a.Solutions,
		Elapsed:   a.Elapsed + b.Elapsed,
		TimedOut:  a.TimedOut || b.TimedOut,
	}
	for _, s := range b.Solutions {
		dup := false
		for _, t := range merged.Solutions {
			if t == s {
				dup = true
				break
			}
		}
		if !dup {
			merged.Solutions = append(merged.Solutions, s)
		}
	}
	return merged
}

// report prints the outcome of a solve, plain or marked-up.
func report(cyphertext string, r *quip.Result) {
	us := r.Elapsed.Microseconds()
	if *markdown {
		fmt.Printf("## %s\n\n", cyphertext)
		if len(r.Solutions) == 0 {
			fmt.Printf("No solutions found.\n")
		}
		for _, s := range r.Solutions {
			fmt.Printf("* %s\n", s)
		}
		fmt.Printf("\n_search took %d us_", us)
		if r.TimedOut {
			fmt.Printf(" _(ran out of time)_")
		}
		fmt.Println()
		return
	}
	if len(r.Solutions) == 0 {
		fmt.Printf("[%d us] Sorry, no solutions were found.\n", us)
	}
	for _, s := range r.Solutions {
		fmt.Printf("[%d us] Solution: %s\n", us, s)
	}
	if r.TimedOut {
		fmt.Printf("[%d us] The search ran out of time; there may be more solutions.\n", us)
	}
}

/*

quip making

*/

func encryptMain(plaintext string) {
	seed := time.Now().UnixNano()
	cyphertext, legend := quip.Encrypt(plaintext, seed)
	fmt.Println(cyphertext)
	if *showLegend {
		fmt.Println(legend.String())
	}
	if *emitCmd {
		if hint, ok := quip.HintFor(plaintext, legend, seed); ok {
			fmt.Printf("quip -k %s \"%s\"\n", hint, cyphertext)
		} else {
			fmt.Printf("quip \"%s\"\n", cyphertext)
		}
	}
}

/*

word sources

*/

// wordSource picks the dictionary for this run: the database
// when -d is given, otherwise a words file (-f flag, then the
// QUIP_WORDS_FILE environment, then the system word list).
func wordSource() (quip.WordSource, error) {
	if *useDB {
		return storage.Dictionary{}, nil
	}
	path := *wordsFile
	if path == "" {
		path = os.Getenv("QUIP_WORDS_FILE")
	}
	if path == "" {
		path = "/usr/share/dict/words"
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("Couldn't find a dictionary at %q: %v", path, err)
	}
	return fileWords(path), nil
}

// fileWords is a word source backed by a words file, one word
// per line.  Every walk re-opens the file, so the source is
// restartable.  Words with characters the solver can't use
// (anything outside letters and apostrophes) are skipped, which
// quietly drops the abbreviations and proper-noun entries most
// system word lists carry.
type fileWords string

func (f fileWords) ForEach(visit func(word string) error) error {
	file, err := os.Open(string(f))
	if err != nil {
		return err
	}
	defer file.Close()
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if !usableWord(word) {
			continue
		}
		if err := visit(word); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func usableWord(word string) bool {
	if len(word) == 0 {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if (c < 'a' || c > 'z') && c != '\'' {
			return false
		}
	}
	return true
}

/*

hint flags

*/

// hintFlags collects repeated -k arguments.
type hintFlags []quip.Hint

func (h *hintFlags) String() string {
	parts := make([]string, len(*h))
	for i, hint := range *h {
		parts[i] = hint.String()
	}
	return strings.Join(parts, ",")
}

func (h *hintFlags) Set(arg string) error {
	hint, err := quip.ParseHint(arg)
	if err != nil {
		return err
	}
	*h = append(*h, hint)
	return nil
}
