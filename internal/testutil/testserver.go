// Package testutil runs the real router over the memory store for HTTP tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier_backend/internal/app"
	"atelier_backend/internal/config"
	"atelier_backend/internal/email"
	"atelier_backend/internal/logger"
	"atelier_backend/internal/repositories"
	"atelier_backend/internal/repositories/memory"
)

type TestServer struct {
	Server *httptest.Server
	App    *app.App
	Repo   repositories.Repository
}

type Option func(*options)

type options struct {
	cfg      *config.Config
	repo     repositories.Repository
	provider email.Provider
}

// WithConfig replaces the default test configuration.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithRepository serves from repo instead of a fresh memory store.
func WithRepository(repo repositories.Repository) Option {
	return func(o *options) { o.repo = repo }
}

// WithEmailProvider enables notifications through provider.
func WithEmailProvider(provider email.Provider) Option {
	return func(o *options) { o.provider = provider }
}

// NewTestServer starts an empty store without sample data; call Seed for it.
func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()
	logger.Init("test")

	o := options{cfg: config.Default()}
	o.cfg.Server.Env = "test"
	o.cfg.Seed.Portfolio = false
	for _, opt := range opts {
		opt(&o)
	}
	if o.repo == nil {
		o.repo = memory.New()
	}
	if o.provider != nil && o.cfg.Email.StudioInbox == "" {
		o.cfg.Email.StudioInbox = "studio@example.com"
	}

	a, err := app.NewWithRepository(o.cfg, o.repo, o.provider)
	if err != nil {
		t.Fatalf("failed to build application: %v", err)
	}

	ts := &TestServer{
		Server: httptest.NewServer(a.Handler()),
		App:    a,
		Repo:   o.repo,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.App.Close()
}

// SendRequest sends body as JSON (a string is sent verbatim) and returns the response with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		jsonBody, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("failed to send request: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return res, string(resBody)
}

// DecodeJSON unmarshals a response body into a value of type T.
func DecodeJSON[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("failed to decode response %q: %v", body, err)
	}
	return v
}
