package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlersRequirePost(t *testing.T) {
	for _, handler := range []http.HandlerFunc{solveHandler, encryptHandler} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("GET", "/api/thing", nil)
		handler(w, r)
		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("GET got status %d (expected %d)", w.Code, http.StatusMethodNotAllowed)
		}
	}
}

func TestProtectRecovers(t *testing.T) {
	h := protect(func(w http.ResponseWriter, r *http.Request) {
		panic("simulated storage failure")
	})
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/solve", nil)
	h(w, r) // must not panic out
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status %d (expected %d)", w.Code, http.StatusInternalServerError)
	}
}
