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
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func postJSON(t *testing.T, obj interface{}) *http.Request {
	body, e := json.Marshal(obj)
	if e != nil {
		t.Fatalf("Failed to encode request body: %v", e)
	}
	return httptest.NewRequest("POST", "/api/solve", bytes.NewReader(body))
}

func TestSolveHandler(t *testing.T) {
	dict := WordList{"the", "cat"}
	req := SolveRequest{
		Cyphertext: "dro",
		Hints:      []Hint{{'o', 'e'}},
		Budget:     2,
	}
	for _, attack := range []string{"", "frequency", "wordblock"} {
		req.Attack = attack
		w := httptest.NewRecorder()
		result, e := SolveHandler(dict, w, postJSON(t, req))
		if e != nil {
			t.Fatalf("Attack %q: handler failed: %v", attack, e)
		}
		if w.Code != http.StatusOK {
			t.Fatalf("Attack %q: status %d (expected %d)", attack, w.Code, http.StatusOK)
		}
		if !reflect.DeepEqual(result.Solutions, []string{"the"}) {
			t.Errorf("Attack %q: solutions %v (expected %v)", attack, result.Solutions, []string{"the"})
		}

		// the client gets the same result the caller does
		var sent Result
		if e := json.Unmarshal(w.Body.Bytes(), &sent); e != nil {
			t.Fatalf("Attack %q: undecodable response body: %v", attack, e)
		}
		if !reflect.DeepEqual(sent.Solutions, result.Solutions) {
			t.Errorf("Attack %q: response body %v (caller got %v)", attack, sent.Solutions, result.Solutions)
		}
	}
}

type solveHandlerErrorTestcase struct {
	req    SolveRequest
	status int
}

func TestSolveHandlerErrorCases(t *testing.T) {
	dict := WordList{"the"}
	tcs := []solveHandlerErrorTestcase{
		// empty cyphertext
		solveHandlerErrorTestcase{SolveRequest{Cyphertext: ""}, http.StatusBadRequest},
		// a quip with no words
		solveHandlerErrorTestcase{SolveRequest{Cyphertext: "..!"}, http.StatusBadRequest},
		// conflicting hints
		solveHandlerErrorTestcase{SolveRequest{
			Cyphertext: "dro",
			Hints:      []Hint{{'a', 'b'}, {'a', 'c'}},
		}, http.StatusBadRequest},
		// negative budget
		solveHandlerErrorTestcase{SolveRequest{Cyphertext: "dro", Budget: -1}, http.StatusBadRequest},
		// unknown attack
		solveHandlerErrorTestcase{SolveRequest{Cyphertext: "dro", Attack: "psychic"}, http.StatusBadRequest},
	}
	for i, tc := range tcs {
		w := httptest.NewRecorder()
		result, e := SolveHandler(dict, w, postJSON(t, tc.req))
		if e == nil {
			t.Errorf("TestSolveHandlerErrorCases case %d: no error from handler", i+1)
		}
		if result != nil {
			t.Errorf("TestSolveHandlerErrorCases case %d: got a result anyway: %+v", i+1, result)
		}
		if w.Code != tc.status {
			t.Errorf("TestSolveHandlerErrorCases case %d: status %d (expected %d)",
				i+1, w.Code, tc.status)
		}
		// the body must be the JSON form of an Error
		var sent Error
		if e := json.Unmarshal(w.Body.Bytes(), &sent); e != nil {
			t.Errorf("TestSolveHandlerErrorCases case %d: undecodable error body: %v", i+1, e)
		} else if len(sent.Message) == 0 {
			t.Errorf("TestSolveHandlerErrorCases case %d: error body has no message", i+1)
		}
	}
}

func TestSolveHandlerBadJSON(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/solve", bytes.NewReader([]byte("{not json")))
	if _, e := SolveHandler(WordList{}, w, r); e == nil {
		t.Errorf("No error from undecodable request")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("Status %d (expected %d)", w.Code, http.StatusBadRequest)
	}
}

func TestSolveHandlerWordSourceFailure(t *testing.T) {
	w := httptest.NewRecorder()
	req := SolveRequest{Cyphertext: "dro"}
	if _, e := SolveHandler(failingSource{}, w, postJSON(t, req)); e == nil {
		t.Errorf("No error from failing word source")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status %d (expected %d)", w.Code, http.StatusInternalServerError)
	}
}

func TestEncryptHandler(t *testing.T) {
	req := EncryptRequest{Plaintext: "the cat sat", Seed: 17, WantHint: true}
	w := httptest.NewRecorder()
	resp, e := EncryptHandler(w, postJSON(t, req))
	if e != nil {
		t.Fatalf("Handler failed: %v", e)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("Status %d (expected %d)", w.Code, http.StatusOK)
	}
	if resp.Cyphertext == req.Plaintext {
		t.Errorf("Cyphertext identical to plaintext")
	}
	if resp.Hint == nil {
		t.Errorf("No hint despite wantHint")
	}

	// the same seed replays the same encoding
	w = httptest.NewRecorder()
	again, e := EncryptHandler(w, postJSON(t, req))
	if e != nil {
		t.Fatalf("Handler failed on replay: %v", e)
	}
	if again.Cyphertext != resp.Cyphertext {
		t.Errorf("Seeded encoding not reproducible: %q / %q", again.Cyphertext, resp.Cyphertext)
	}
}

func TestEncryptHandlerErrorCases(t *testing.T) {
	w := httptest.NewRecorder()
	if _, e := EncryptHandler(w, postJSON(t, EncryptRequest{})); e == nil {
		t.Errorf("No error from empty plaintext")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("Status %d (expected %d)", w.Code, http.StatusBadRequest)
	}

	w = httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/encrypt", bytes.NewReader([]byte("[")))
	if _, e := EncryptHandler(w, r); e == nil {
		t.Errorf("No error from undecodable request")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("Status %d (expected %d)", w.Code, http.StatusBadRequest)
	}
}
