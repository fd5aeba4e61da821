package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		path, pattern string
		want          bool
	}{
		{"/api/v1/datasets", "/api/v1/datasets", true},
		{"/api/v1/datasets/abc", "/api/v1/datasets/*", true},
		{"/api/v1/datasets/abc/charts/bar", "/api/v1/datasets/*/charts/*", true},
		{"/api/v1/datasets/abc/charts/bar", "/api/v1/datasets/*", false},
		{"/api/v1/datasets/abc/logs", "/api/v1/datasets/*/logs", true},
		{"/api/v1/datasets", "/api/v1/datasets/*", false},
		{"/api/v1/other/abc", "/api/v1/datasets/*", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, matchPattern(tc.path, tc.pattern), "%s vs %s", tc.path, tc.pattern)
	}
}

func TestDispatch(t *testing.T) {
	r := New()
	r.GET("/api/v1/things/*/sub/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("sub"))
	})
	r.GET("/api/v1/things/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("one"))
	})
	r.DELETE("/api/v1/things/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("deleted"))
	})
	h := r.Handler()

	t.Run("exact wildcard arity", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things/42", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "one", rec.Body.String())
	})

	t.Run("deeper path picks the longer pattern", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/things/42/sub/7", nil))
		assert.Equal(t, "sub", rec.Body.String())
	})

	t.Run("delete does not leak to nested paths", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/things/42/sub/7", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/things/42", nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
