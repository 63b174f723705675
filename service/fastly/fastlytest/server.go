// Package fastlytest provides a scripted fake of the Fastly API for tests.
package fastlytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/thirukguru/cloudwaf-origin-detector/service/fastly"
)

// Reply is one scripted response.
type Reply struct {
	Status int
	Body   string
}

// Server answers each path with its scripted replies in order, repeating
// the last one once exhausted. Unknown paths get 404.
type Server struct {
	*httptest.Server

	// Token, when set, is required in the Fastly-Key header; other keys get 401.
	Token string

	mu      sync.Mutex
	routes  map[string][]Reply
	hits    map[string]int
	headers []http.Header
}

// New starts a fake server that is closed when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{routes: map[string][]Reply{}, hits: map[string]int{}}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle scripts the replies for path.
func (s *Server) Handle(path string, replies ...Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes[path] = replies
}

// JSON scripts a single 200 reply carrying v.
func (s *Server) JSON(path string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.Handle(path, Reply{Status: http.StatusOK, Body: string(b)})
}

// Hits returns how many requests path received.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// Headers returns the headers of every request received, in order.
func (s *Server) Headers() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]http.Header(nil), s.headers...)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	path := r.URL.EscapedPath()
	n := s.hits[path]
	s.hits[path] = n + 1
	s.headers = append(s.headers, r.Header.Clone())
	replies, ok := s.routes[path]
	s.mu.Unlock()

	if s.Token != "" && r.Header.Get(fastly.HeaderAPIKey) != s.Token {
		http.Error(w, `{"msg":"Provided credentials are missing or invalid"}`, http.StatusUnauthorized)
		return
	}
	if !ok || len(replies) == 0 {
		http.Error(w, `{"msg":"Record not found"}`, http.StatusNotFound)
		return
	}
	if n >= len(replies) {
		n = len(replies) - 1
	}

	reply := replies[n]
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = w.Write([]byte(reply.Body))
}
