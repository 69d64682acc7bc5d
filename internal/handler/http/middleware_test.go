package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/utils"
)

func TestWithTraceID(t *testing.T) {
	h := &Handler{traceIDs: utils.NewUUIDGenerator(), logger: logger.Nop()}

	var seen bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the request logger must be reachable downstream
		assert.NotNil(t, logger.FromRequest(r))
		seen = true
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.True(t, seen)
		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-1")
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, req)
		assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
	})
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   []string
	}{
		{"implicit 200", 0, "hello", []string{`"status":200`, `"size":5`, `"method":"GET"`, `"uri":"/users/1/items"`}},
		{"explicit 412", http.StatusPreconditionFailed, "", []string{`"status":412`, `"size":0`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := httptest.NewRequest(http.MethodGet, "/users/1/items", nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				_, _ = io.WriteString(w, tt.body)
			})
			withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

			for _, s := range tt.want {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, err := w.Write([]byte("ok"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 2, w.size)
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if len(body) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write(body)
	})

	t.Run("compresses response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"a":1}`))
		req.Header.Set("Accept-Encoding", "deflate, gzip")
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, req)

		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, `{"a":1}`, string(plain))
	})

	t.Run("no content stays uncompressed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("decodes request", func(t *testing.T) {
		var compressed bytes.Buffer
		zw := gzip.NewWriter(&compressed)
		_, _ = zw.Write([]byte(`[{"key":"X"}]`))
		require.NoError(t, zw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &compressed)
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, `[{"key":"X"}]`, rec.Body.String())
	})

	t.Run("invalid gzip request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("plain"))
		req.Header.Set("Content-Encoding", "gzip")
		rec := httptest.NewRecorder()
		withGZip(echo).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetKeyFromAuthHeader(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc", "abc", nil},
		{"Bearer", "", ErrInvalidAuthorizationHeader},
		{"Bearer a b", "", ErrInvalidAuthorizationHeader},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := getKeyFromAuthHeader(tt.header)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitKeys(t *testing.T) {
	assert.Nil(t, splitKeys("", ","))
	assert.Equal(t, []string{"A", "B"}, splitKeys("A, B,", ","))
	assert.Equal(t, []string{"to read", "ml"}, splitKeys("to read || ml", " || "))
}
