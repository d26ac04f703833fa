// Package chtest provides an in-process fake of the Companies House API for
// tests. It serves fixed fixtures for two companies, answers 401 to any key
// other than Key and 404 to any other company number.
package chtest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Key is the only API key the fake accepts.
const Key = "test-key"

// Fixture companies.
const (
	// Company has every section populated except charges and insolvency,
	// which answer 404 as upstream does for empty registers.
	Company = "01234567"
	// FlakyCompany answers 503 for its insolvency section.
	FlakyCompany = "SC123456"
)

// Server is a running fake upstream.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []string
}

// New starts a fake upstream. Callers must Close it.
func New() *Server {
	s := &Server{}
	s.Server = httptest.NewServer(s.routes())
	return s
}

// Requests returns the request URIs served so far, in order.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requests...)
}

// Reset forgets recorded requests.
func (s *Server) Reset() {
	s.mu.Lock()
	s.requests = nil
	s.mu.Unlock()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record, auth)

	r.Get("/search/companies", search)
	r.Get("/company/{number}", section(""))
	r.Get("/company/{number}/officers", section("officers"))
	r.Get("/company/{number}/filing-history", section("filing-history"))
	r.Get("/company/{number}/charges", section("charges"))
	r.Get("/company/{number}/insolvency", section("insolvency"))
	r.Get("/company/{number}/persons-with-significant-control", section("persons-with-significant-control"))
	r.Get("/company/{number}/registered-office-address", section("registered-office-address"))
	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.RequestURI())
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, _, ok := r.BasicAuth(); !ok || user != Key {
			write(w, http.StatusUnauthorized, `{"error":"Invalid Authorization","type":"ch:service"}`)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func search(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(r.URL.Query().Get("q"))
	switch {
	case strings.Contains(q, "acme"), q == strings.ToLower(Company):
		write(w, http.StatusOK, searchAcme)
	default:
		write(w, http.StatusOK, `{"total_results":0,"items_per_page":5,"start_index":0,"items":[]}`)
	}
}

func section(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		company, ok := fixtures[chi.URLParam(r, "number")]
		if !ok {
			write(w, http.StatusNotFound, `{"errors":[{"error":"company-profile-not-found","type":"ch:service"}]}`)
			return
		}
		body, ok := company[name]
		switch {
		case !ok:
			write(w, http.StatusNotFound, `{"errors":[{"error":"not-found","type":"ch:service"}]}`)
		case body == unavailable:
			write(w, http.StatusServiceUnavailable, `{"error":"Service Unavailable"}`)
		default:
			write(w, http.StatusOK, body)
		}
	}
}

func write(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
