package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Request is a request seen by FakeAPI.
type Request struct {
	Method        string
	Path          string // relative to the API root, e.g. "leadtasks/tasks"
	Query         string
	Authorization string
	RequestID     string
	Body          string
}

// FakeAPI is an httptest server standing in for the task-assignment API.
// Routes under "user/" other than "user/members" are open; every other route
// is rejected with RejectStatus unless the bearer token equals the valid token.
type FakeAPI struct {
	Server *httptest.Server

	// RejectStatus is returned for a wrong bearer token (default 401).
	RejectStatus int

	mu         sync.Mutex
	validToken string
	routes     map[string]http.HandlerFunc
	requests   []Request
}

// NewFakeAPI starts a fake API and closes it when the test ends.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		RejectStatus: http.StatusUnauthorized,
		routes:       make(map[string]http.HandlerFunc),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// BaseURL returns the API root to configure clients with.
func (f *FakeAPI) BaseURL() string {
	return f.Server.URL + "/api/"
}

// SetValidToken sets the only access token protected routes accept.
func (f *FakeAPI) SetValidToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.validToken = token
}

// Handle registers a handler for method and relative path.
func (f *FakeAPI) Handle(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

// JSON registers a route that always answers status with body encoded as JSON.
func (f *FakeAPI) JSON(method, path string, status int, body any) {
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

// Requests returns every request received so far.
func (f *FakeAPI) Requests() []Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Request, len(f.requests))
	copy(out, f.requests)
	return out
}

// Calls returns the requests received for method and path.
func (f *FakeAPI) Calls(method, path string) []Request {
	var out []Request
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api/")

	f.mu.Lock()
	f.requests = append(f.requests, Request{
		Method:        r.Method,
		Path:          path,
		Query:         r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		RequestID:     r.Header.Get("X-Request-ID"),
		Body:          string(body),
	})
	h, ok := f.routes[r.Method+" "+path]
	valid := f.validToken
	f.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	if isProtected(path) && r.Header.Get("Authorization") != "Bearer "+valid {
		w.WriteHeader(f.RejectStatus)
		return
	}
	r.Body = io.NopCloser(strings.NewReader(string(body)))
	h(w, r)
}

func isProtected(path string) bool {
	return !strings.HasPrefix(path, "user/") || path == "user/members"
}

// WriteJSON writes body as JSON with status.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// MakeJWT returns an HS256 token carrying role and an exp claim.
func MakeJWT(t *testing.T, role string, expiry time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"role": role, "sub": "tester"}
	if !expiry.IsZero() {
		claims["exp"] = expiry.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
