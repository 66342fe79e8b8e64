package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayura-ui/mayura/internal/config"
	"github.com/mayura-ui/mayura/internal/registry"
	"github.com/mayura-ui/mayura/internal/testutils"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Showcase.Watch = false
	if mutate != nil {
		mutate(cfg)
	}
	s, err := New(cfg, registry.Builtin(), nil)
	require.NoError(t, err)
	return s
}

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	res := rec.Result()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(body)
}

func TestIndexListsComponents(t *testing.T) {
	s := newTestServer(t, nil)

	res, body := get(t, s.Handler(), "/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")

	cards := testutils.Query(t, body, testutils.Tag("a"), testutils.HasAttr("data-component", ""))
	names := make([]string, 0, len(cards))
	for _, c := range cards {
		name, _ := testutils.Attr(c, "data-component")
		names = append(names, name)
	}
	assert.ElementsMatch(t, registry.Builtin().Names(), names)
	assert.NotContains(t, body, `id="status"`, "index is not live")
}

func TestComponentPage(t *testing.T) {
	s := newTestServer(t, nil)

	res, body := get(t, s.Handler(), "/components/select")
	require.Equal(t, http.StatusOK, res.StatusCode)

	assert.Len(t, testutils.Query(t, body, testutils.HasAttr("data-widget", "select")), 1)
	assert.Contains(t, body, `id="status"`)
	assert.Contains(t, body, "Pick a fruit")
	assert.Contains(t, body, ">Props</h2>")
	assert.Contains(t, body, "searchable", "props table lists documented props")
}

func TestComponentNotFoundSuggests(t *testing.T) {
	s := newTestServer(t, nil)

	res, body := get(t, s.Handler(), "/components/tabel")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	links := testutils.Query(t, body, testutils.HasAttr("data-suggestion", ""))
	hrefs := make([]string, 0, len(links))
	for _, l := range links {
		href, _ := testutils.Attr(l, "href")
		hrefs = append(hrefs, href)
	}
	assert.Contains(t, hrefs, "/components/table")
}

func TestComponentsAPI(t *testing.T) {
	s := newTestServer(t, nil)

	res, body := get(t, s.Handler(), "/api/components")
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var components []registry.ComponentInfo
	require.NoError(t, json.Unmarshal([]byte(body), &components))
	require.Len(t, components, 7)
	assert.Equal(t, "dropdown", components[0].Name)
	assert.NotEmpty(t, components[0].Props)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	res, body := get(t, s.Handler(), "/healthz")
	require.Equal(t, http.StatusOK, res.StatusCode)

	var health HealthStatus
	require.NoError(t, json.Unmarshal([]byte(body), &health))
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 7, health.Components)
	assert.Zero(t, health.Clients)
	assert.NotEmpty(t, health.Version)
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORS(t *testing.T) {
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.Server.AllowedOrigins = []string{"http://app.example.com"}
	})
	h := s.Handler()

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{"allowed origin", http.MethodGet, "http://app.example.com", http.StatusOK, "http://app.example.com"},
		{"other origin", http.MethodGet, "http://evil.example.com", http.StatusOK, ""},
		{"no origin", http.MethodGet, "", http.StatusOK, ""},
		{"preflight", http.MethodOptions, "http://app.example.com", http.StatusNoContent, "http://app.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/healthz", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestNewRejectsMissingFixtures(t *testing.T) {
	_, err := New(func() *config.Config {
		cfg := config.Default()
		cfg.Showcase.Fixtures = "does-not-exist.yml"
		cfg.Showcase.Watch = false
		return cfg
	}(), registry.Builtin(), nil)
	assert.Error(t, err)
}
