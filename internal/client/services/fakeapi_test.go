package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/timesheets/internal/client/client"
	"github.com/dmitrijs2005/timesheets/internal/client/models"
	"github.com/go-chi/chi/v5"
)

// recorded is the last request a fake API handler saw.
type recorded struct {
	method string
	path   string
	query  map[string]string
	auth   string
	body   map[string]any
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newFakeAPI mounts routes on a chi router under /api and returns a client
// pointed at it together with the request log.
func newFakeAPI(t *testing.T, token string, routes func(r chi.Router, rec *recorded)) (client.Client, *recorded) {
	t.Helper()
	rec := &recorded{}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			rec.method = req.Method
			rec.path = req.URL.Path
			rec.auth = req.Header.Get("Authorization")
			rec.query = map[string]string{}
			for k := range req.URL.Query() {
				rec.query[k] = req.URL.Query().Get(k)
			}
			rec.body = nil
			if req.Body != nil {
				_ = json.NewDecoder(req.Body).Decode(&rec.body)
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api", func(r chi.Router) { routes(r, rec) })

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return client.NewAPIClient(srv.URL+"/api", staticToken(token)), rec
}

type staticToken string

func (s staticToken) Token(context.Context) (string, error) { return string(s), nil }

type fakeSessions struct {
	sess    models.Session
	token   string
	setErr  error
	cleared int
}

func (f *fakeSessions) Set(_ context.Context, sess models.Session, token string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sess, f.token = sess, token
	return nil
}

func (f *fakeSessions) Clear(context.Context) error {
	f.cleared++
	f.sess, f.token = models.Session{}, ""
	return nil
}
