// Package testutil provides a fake Sleeper API server for tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// FakeSleeper is an in-process stand-in for api.sleeper.app. Tests register
// canned responses per route and can assert on the number of requests the
// server actually received.
type FakeSleeper struct {
	server   *httptest.Server
	router   *chi.Mux
	requests atomic.Int64
}

func NewFakeSleeper() *FakeSleeper {
	f := &FakeSleeper{}
	f.router = chi.NewRouter()
	f.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.requests.Add(1)
			next.ServeHTTP(w, r)
		})
	})
	f.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	})
	f.server = httptest.NewServer(f.router)
	return f
}

// Handle serves a fixed status and raw body for GETs matching pattern.
func (f *FakeSleeper) Handle(pattern string, status int, body string) {
	f.router.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// HandleFunc registers an arbitrary handler, for tests that need to
// inspect the incoming request.
func (f *FakeSleeper) HandleFunc(pattern string, h http.HandlerFunc) {
	f.router.Get(pattern, h)
}

// HandleJSON serves v marshalled as JSON with a 200 status.
func (f *FakeSleeper) HandleJSON(pattern string, v any) {
	f.router.Get(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		b, err := json.Marshal(v)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write(b)
	})
}

func (f *FakeSleeper) URL() string { return f.server.URL }

// Requests reports how many requests the server has received.
func (f *FakeSleeper) Requests() int { return int(f.requests.Load()) }

func (f *FakeSleeper) Close() { f.server.Close() }
