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

// Web service front end for the cryptoquip solvers
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/drbobbeaty/Quip/quip"
	"github.com/drbobbeaty/Quip/storage"
)

func main() {
	// connect to storage, so the dictionary is there to solve with
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.Printf("Couldn't connect to storage: %v", err)
		shutdown(startupFailureShutdown)
	}
	log.Printf("Connected to cache at %q.", cacheId)
	log.Printf("Connected to database at %q.", databaseId)

	// catch signals
	shutdownOnSignal()

	// serve
	http.HandleFunc("/api/solve", protect(solveHandler))
	http.HandleFunc("/api/encrypt", protect(encryptHandler))
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	// Heroku environment port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.Printf("Listening on %s...", port)
	if err := http.ListenAndServe(port, nil); err != nil {
		log.Printf("Listener failure: %v", err)
		shutdown(listenerFailureShutdown)
	}
}

/*

handlers

*/

func solveHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	result, err := quip.SolveHandler(storage.Dictionary{}, w, r)
	if err != nil {
		log.Printf("Solve failed, returned error: %v", err)
		return
	}
	log.Printf("Solve succeeded: %d solution(s) in %v.", len(result.Solutions), result.Elapsed)
}

func encryptHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	log.Printf("Handling %s %s...", r.Method, r.URL.Path)
	resp, err := quip.EncryptHandler(w, r)
	if err != nil {
		log.Printf("Encrypt failed, returned error: %v", err)
		return
	}
	log.Printf("Encrypt succeeded: %d characters.", len(resp.Cyphertext))
}

// protect wraps a handler against panics out of the storage
// layer, turning them into 500s instead of dropped connections.
func protect(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if e := recover(); e != nil {
				log.Printf("Caught panic serving %s: %v", r.URL.Path, e)
				http.Error(w, "storage failure", http.StatusInternalServerError)
			}
		}()
		handler(w, r)
	}
}

/*

shutdown

*/

type shutdownCause int

const (
	unknownShutdown = iota
	startupFailureShutdown
	caughtSignalShutdown
	listenerFailureShutdown
)

// for testing, allow alternate forms of shutdown
var alternateShutdown func(reason shutdownCause)

// shutdown: process exit with logging.
func shutdown(reason shutdownCause) {
	// close the storage connections
	storage.Close()

	// for testing: run alternateShutdown instead, if defined
	if alternateShutdown != nil {
		alternateShutdown(reason)
		panic(reason) // shouldn't get here
	}

	// log reason for shutdown and exit
	switch reason {
	case caughtSignalShutdown:
		log.Fatal("Exiting: caught signal.")
	case startupFailureShutdown:
		log.Fatal("Exiting: initialization failure.")
	case listenerFailureShutdown:
		log.Fatal("Exiting: web server failure.")
	default:
		log.Fatal("Exiting: normal shutdown.")
	}
}

// shutdownOnSignal: catch signals and exit.
func shutdownOnSignal() {
	// based on example in os.signal godoc
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-c
		log.Printf("Received OS-level signal: %v", s)
		shutdown(caughtSignalShutdown)
	}()
}
