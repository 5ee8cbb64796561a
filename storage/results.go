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
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/gomodule/redigo/redis"

	"github.com/drbobbeaty/Quip/quip"
)

/*

cached results

Solving the same quip twice wastes seconds to minutes of search,
so finished results are cached in Redis against the solve
request.  The cache key is a digest of the cyphertext, the hints
(order-independent), and the attack; the value is the JSON form
of the Result.  Only completed searches are cached - a timed-out
result depends on the budget that produced it, and a bigger
budget might do better.

*/

// resultTTL is how long a cached result lives, in seconds.  A
// dictionary refresh invalidates old decodings, so they don't
// get to live forever.
const resultTTL = 7 * 24 * 60 * 60

// resultKey digests one solve request into its cache key.  Hints
// are sorted first so equivalent hint sets hit the same entry.
func resultKey(cyphertext string, hints []quip.Hint, attack string) string {
	hs := make([]string, len(hints))
	for i, h := range hints {
		hs[i] = h.String()
	}
	sort.Strings(hs)
	d := sha256.New()
	fmt.Fprintf(d, "%s\n%v\n%s", cyphertext, hs, attack)
	return "result:" + hex.EncodeToString(d.Sum(nil))
}

// LookupResult fetches the cached result of a prior identical
// solve, if there is one.  Cache failures are logged and treated
// as misses; the solver can always recompute.
func LookupResult(cyphertext string, hints []quip.Hint, attack string) (result *quip.Result, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Cache error on result lookup: %v", r)
			result, ok = nil, false
		}
	}()
	key := resultKey(cyphertext, hints, attack)
	var bytes []byte
	rdExecute(func(tx redis.Conn) (err error) {
		bytes, err = redis.Bytes(tx.Do("GET", key))
		if err == redis.ErrNil {
			bytes, err = nil, nil
		}
		return
	})
	if bytes == nil {
		return nil, false
	}
	var r quip.Result
	if e := json.Unmarshal(bytes, &r); e != nil {
		log.Printf("Undecodable cached result under %q: %v", key, e)
		return nil, false
	}
	return &r, true
}

// SaveResult caches the result of a completed solve.  Timed-out
// results are not cached.  Cache failures are logged and
// swallowed; a result that doesn't get cached is recomputed next
// time, nothing worse.
func SaveResult(cyphertext string, hints []quip.Hint, attack string, result *quip.Result) {
	if result == nil || result.TimedOut {
		return
	}
	bytes, e := json.Marshal(result)
	if e != nil {
		log.Printf("Failed to encode result for caching: %v", e)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Cache error on result save: %v", r)
		}
	}()
	key := resultKey(cyphertext, hints, attack)
	rdExecute(func(tx redis.Conn) error {
		_, err := tx.Do("SETEX", key, resultTTL, bytes)
		return err
	})
}
