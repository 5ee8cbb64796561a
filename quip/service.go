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
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

/*

Solving

*/

// A SolveRequest is the posted body of a solve request.  Budget
// is in seconds; zero means the default budget.  Attack selects
// the search strategy: "frequency" (the default) or "wordblock".
type SolveRequest struct {
	Cyphertext string  `json:"cyphertext"`
	Hints      []Hint  `json:"hints,omitempty"`
	Attack     string  `json:"attack,omitempty"`
	Budget     float64 `json:"budget,omitempty"`
}

// SolveHandler is a POST handler that reads a JSON-encoded
// SolveRequest from the request body, builds the cryptoquip,
// collects candidates from the given word source, and runs the
// requested attack.  The Result is sent as a 200 response and
// also returned to the golang caller.
//
// If we can't decode the posted request, we send a 400 response
// and return the error to the caller.  Bad cyphertext, hints, or
// budget also produce a 400 carrying the JSON form of the Error.
// Word source failures are 500s.
//
// If we can't encode the response to the client (which should
// never happen), then the client gets an error response and the
// golang caller gets the encoding Error (as a signal that the
// client didn't get the correct response).
func SolveHandler(src WordSource, w http.ResponseWriter, r *http.Request) (*Result, error) {
	dec := json.NewDecoder(r.Body)
	var req SolveRequest
	e := dec.Decode(&req)
	if e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	q, e := New(req.Cyphertext, req.Hints...)
	if e != nil {
		return nil, writeClientError(e, "SolveHandler", w, r)
	}
	if e := q.Collect(src); e != nil {
		err := Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: WordSourceAttribute,
			Condition: GeneralCondition,
			Values:    ErrorData{e.Error()},
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusInternalServerError, w, r)
	}
	budget := DefaultBudget
	if req.Budget != 0 {
		budget = time.Duration(req.Budget * float64(time.Second))
	}
	var result *Result
	switch req.Attack {
	case "", "frequency":
		result, e = q.FrequencyAttack(budget)
	case "wordblock":
		result, e = q.WordBlockAttack(budget)
	default:
		e = Error{
			Scope:     RequestScope,
			Structure: AttributeValueStructure,
			Attribute: AttackAttribute,
			Condition: InvalidArgumentCondition,
			Values:    ErrorData{req.Attack},
		}
	}
	if e != nil {
		return nil, writeClientError(e, "SolveHandler", w, r)
	}
	return result, writeJSON(result, http.StatusOK, w, r)
}

/*

Encrypting

*/

// An EncryptRequest is the posted body of an encrypt request.
// Seed controls the legend shuffle; zero means seed from the
// clock.  WantHint asks for one legend letter to be revealed
// alongside the cyphertext.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Seed      int64  `json:"seed,omitempty"`
	WantHint  bool   `json:"wantHint,omitempty"`
}

// An EncryptResponse carries the generated cyphertext and,
// when requested, a single hint into the legend used.
type EncryptResponse struct {
	Cyphertext string `json:"cyphertext"`
	Hint       *Hint  `json:"hint,omitempty"`
}

// EncryptHandler is a POST handler that reads a JSON-encoded
// EncryptRequest from the request body and responds with the
// enciphered text.  The response is also returned to the golang
// caller.  Decoding and validation failures are 400s; encoding
// failures are handled as in SolveHandler.
func EncryptHandler(w http.ResponseWriter, r *http.Request) (*EncryptResponse, error) {
	dec := json.NewDecoder(r.Body)
	var req EncryptRequest
	e := dec.Decode(&req)
	if e != nil {
		return nil, writeError(requestDecodingError, ErrorData{e.Error()}, w, r)
	}
	if len(req.Plaintext) == 0 {
		err := Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: CyphertextAttribute,
			Condition: EmptyCondition,
		}
		err.Message = err.Error()
		return nil, writeJSON(err, http.StatusBadRequest, w, r)
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cyphertext, legend := Encrypt(req.Plaintext, seed)
	resp := &EncryptResponse{Cyphertext: cyphertext}
	if req.WantHint {
		if hint, ok := HintFor(req.Plaintext, legend, seed); ok {
			resp.Hint = &hint
		}
	}
	return resp, writeJSON(resp, http.StatusOK, w, r)
}

/*

Utilities

*/

type handlerError int

const (
	requestDecodingError handlerError = iota
	responseEncodingError
	errorFormatError
)

// writeClientError sends a 400 response carrying the JSON form
// of the given error, which is expected to be an Error produced
// by this package.  Errors of any other type are reported as
// internal format problems instead.
func writeClientError(e error, where string, w http.ResponseWriter, r *http.Request) error {
	err, ok := e.(Error)
	if !ok {
		return writeError(errorFormatError, ErrorData{where, e.Error()}, w, r)
	}
	err.Message = err.Error()
	return writeJSON(err, http.StatusBadRequest, w, r)
}

// writeError sends back a server error of the given type, sort
// of like http.Error, but it sends the JSON form of an
// appropriate Error.
func writeError(et handlerError, ed ErrorData,
	w http.ResponseWriter, r *http.Request) error {
	var err Error
	var status int
	switch et {
	case requestDecodingError:
		status = http.StatusBadRequest
		err = Error{
			Scope:     RequestScope,
			Structure: AttributeStructure,
			Attribute: DecodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case responseEncodingError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: EncodeAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	case errorFormatError:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: NamedAttribute,
			Condition: GeneralCondition,
			Values:    ed,
		}
	default:
		status = http.StatusInternalServerError
		err = Error{
			Scope:     InternalScope,
			Structure: AttributeStructure,
			Attribute: NamedAttribute,
			Condition: GeneralCondition,
			Values: ErrorData{
				"writeError",
				fmt.Sprintf("Unknown handler error type (%v)", et),
			},
		}
	}
	err.Message = err.Error()
	return writeJSON(err, status, w, r)
}

// writeJSON is called by handlers to encode and send the client
// response.  It returns an appropriate error status for the
// handler to return to its caller, as follows:
//
// 1. If writeJSON encounters an encoding error sending the
// response, it will create an Error object describing the
// failure, encode that Error as a 500-series response to the
// client, and return that Error to the handler.
//
// 2. If no encoding error occurs, but the handler is sending an
// Error object as the response to the client, writeJSON will
// return that same Error to the handler.
//
// 3. If no encoding error occurs, and the handler is sending a
// non-Error object as the response to the client, writeJSON will
// return nil to the handler.
func writeJSON(obj interface{}, status int, w http.ResponseWriter, r *http.Request) error {
	err, isErr := obj.(Error)
	bytes, e := json.Marshal(obj)
	if e != nil {
		if isErr && err.Scope == InternalScope && err.Attribute == EncodeAttribute {
			// We just failed to encode an Encoding error.  This
			// should never happen!!  If it did, it almost
			// certainly means that the JSON encoding system is
			// dead, so pseudo-encode the error by hand by
			// returning the Error's summary as a quoted string.
			status = http.StatusInternalServerError // probably was already!
			bytes = []byte(fmt.Sprintf("%q", err.Error()))
		} else {
			// generate, send, and return an encoding error
			return writeError(responseEncodingError, ErrorData{e.Error()}, w, r)
		}
	}
	hs := w.Header()
	hs.Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
	if isErr {
		return err
	}
	return nil
}
