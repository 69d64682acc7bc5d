// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, lmv string, status int, body any) {
	t.Helper()
	if lmv != "" {
		w.Header().Set(HeaderLastModifiedVersion, lmv)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "api.example.org", want: "http://api.example.org"},
		{in: " https://api.example.org/ ", want: "https://api.example.org"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetAPIKey_SentOnRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get(HeaderAPIKey))
		assert.Equal(t, "3", r.Header.Get(HeaderAPIVersion))
		writeJSON(t, w, "1", http.StatusOK, map[string]int{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetAPIKey("  secret ")
	assert.Equal(t, "secret", a.APIKey())

	_, err := a.ListVersions(context.Background(), userLib, models.ObjectItem, 0)
	require.NoError(t, err)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/keys", r.URL.Path)
		writeJSON(t, w, "", http.StatusCreated, map[string]any{"key": "k-123", "userID": 42, "username": "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, models.LoginResponse{UserID: 42, Name: "alice", Key: "k-123"}, got)
	assert.Empty(t, a.APIKey())
}

func TestLogin_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("Invalid login"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Username: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── ListVersions ────────────────────────────────────────────────────────────

func TestListVersions_Incremental(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/42/items", r.URL.Path)
		assert.Equal(t, "versions", r.URL.Query().Get("format"))
		assert.Equal(t, "10", r.URL.Query().Get("since"))
		writeJSON(t, w, "12", http.StatusOK, map[string]int{"ABCD12": 12, "EFGH34": 11})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListVersions(context.Background(), userLib, models.ObjectItem, 10)

	require.NoError(t, err)
	assert.False(t, got.Full)
	assert.Equal(t, int64(12), got.LastModifiedVersion)
	assert.Equal(t, map[string]int64{"ABCD12": 12, "EFGH34": 11}, got.Versions)
}

func TestListVersions_FullUnlessTruncated(t *testing.T) {
	tests := []struct {
		name  string
		total string
		full  bool
	}{
		{"no total header", "", true},
		{"total matches", "2", true},
		{"truncated", "5", false},
		{"unreadable total", "many", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Empty(t, r.URL.Query().Get("since"))
				if tt.total != "" {
					w.Header().Set(HeaderTotalResults, tt.total)
				}
				writeJSON(t, w, "12", http.StatusOK, map[string]int{"ABCD12": 12, "EFGH34": 11})
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).ListVersions(context.Background(), userLib, models.ObjectItem, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.full, got.Full)
		})
	}
}

func TestListVersions_MalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		lmv  string
		body string
	}{
		{name: "not json", lmv: "3", body: "<html>"},
		{name: "array body", lmv: "3", body: `["A"]`},
		{name: "string version", lmv: "3", body: `{"A":"3"}`},
		{name: "bad header", lmv: "three", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set(HeaderLastModifiedVersion, tt.lmv)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.ListVersions(context.Background(), userLib, models.ObjectItem, 0)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestListVersions_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusPreconditionFailed, ErrPreconditionFailed},
		{http.StatusRequestTimeout, ErrTransport},
		{http.StatusTooManyRequests, ErrTransport},
		{http.StatusInternalServerError, ErrTransport},
		{http.StatusServiceUnavailable, ErrTransport},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusBadRequest, ErrRejected},
		{http.StatusConflict, ErrRejected},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.ListVersions(context.Background(), userLib, models.ObjectItem, 0)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestListVersions_NetworkErrorIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.ListVersions(context.Background(), userLib, models.ObjectItem, 0)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestListVersions_TimeoutIsTransport(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 50 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = a.ListVersions(context.Background(), userLib, models.ObjectItem, 0)
	assert.ErrorIs(t, err, ErrTransport)
}

// ── FetchObjects ────────────────────────────────────────────────────────────

func TestFetchObjects_MissingAndMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "A,B,C", r.URL.Query().Get("itemKey"))
		writeJSON(t, w, "9", http.StatusOK, []map[string]any{
			{"key": "A", "version": 9, "data": map[string]string{"title": "a"}},
			{"key": "B", "version": "nine"},
			{"key": "Z", "version": 1},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchObjects(context.Background(), userLib, models.ObjectItem, []string{"A", "B", "C"})

	require.NoError(t, err)
	require.Len(t, got.Objects, 1)
	assert.Equal(t, "A", got.Objects[0].Key)
	assert.Equal(t, int64(9), got.Objects[0].Version)
	assert.JSONEq(t, `{"key":"A","version":9,"data":{"title":"a"}}`, string(got.Objects[0].Body))
	assert.Equal(t, []string{"B"}, got.Malformed)
	assert.Equal(t, []string{"C"}, got.Missing)
}

func TestFetchObjects_GroupMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/groups/7":
			writeJSON(t, w, "4", http.StatusOK, map[string]any{"id": 7, "version": 4, "data": map[string]any{"name": "Lab", "owner": 5}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.FetchObjects(context.Background(), userLib, models.ObjectGroupMetadata, []string{"7", "8"})

	require.NoError(t, err)
	require.Len(t, got.Objects, 1)
	assert.Equal(t, "7", got.Objects[0].Key)
	assert.Equal(t, []string{"8"}, got.Missing)
}

func TestFetchObjects_TransportErrorStops(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchObjects(context.Background(), userLib, models.ObjectItem, []string{"A"})
	assert.ErrorIs(t, err, ErrTransport)
}

// ── SubmitObjects ───────────────────────────────────────────────────────────

func TestSubmitObjects_ParsesResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/groups/7/collections", r.URL.Path)
		assert.Equal(t, "12", r.Header.Get(HeaderIfUnmodifiedSinceVersion))
		writeJSON(t, w, "13", http.StatusOK, map[string]any{
			"successful": map[string]any{"0": map[string]any{"key": "A", "version": 13}},
			"unchanged":  map[string]any{"1": "B"},
			"failed":     map[string]any{"2": map[string]any{"key": "C", "code": 412, "message": "Collection has been modified"}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	records := []models.Record{{Key: "A", Version: 12}, {Key: "B", Version: 12}, {Key: "C", Version: 11}}
	got, err := a.SubmitObjects(context.Background(), groupLib, models.ObjectCollection, 12, records)

	require.NoError(t, err)
	assert.Equal(t, int64(13), got.LastModifiedVersion)
	assert.Equal(t, int64(13), got.Successful[0].Version)
	assert.Equal(t, "B", got.Unchanged[1])
	assert.Equal(t, models.SubmitFailure{Key: "C", Code: 412, Message: "Collection has been modified"}, got.Failed[2])
}

func TestSubmitObjects_ChainsVersionAcrossBatches(t *testing.T) {
	var headers []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = append(headers, r.Header.Get(HeaderIfUnmodifiedSinceVersion))
		next := "21"
		if len(headers) == 2 {
			next = "22"
		}
		writeJSON(t, w, next, http.StatusOK, map[string]any{"successful": map[string]any{}})
	}))
	defer srv.Close()

	records := make([]models.Record, SubmitBatchSize+1)
	for i := range records {
		records[i] = models.Record{Key: keys(SubmitBatchSize + 1)[i]}
	}

	a := newTestAdapter(t, srv.URL)
	got, err := a.SubmitObjects(context.Background(), userLib, models.ObjectItem, 20, records)

	require.NoError(t, err)
	assert.Equal(t, []string{"20", "21"}, headers)
	assert.Equal(t, int64(22), got.LastModifiedVersion)
}

func TestSubmitObjects_PreconditionFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
		_, _ = w.Write([]byte("Library has been modified since specified version"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SubmitObjects(context.Background(), userLib, models.ObjectItem, 1, []models.Record{{Key: "A"}})
	assert.ErrorIs(t, err, ErrPreconditionFailed)
}

// ── SubmitDeletions ─────────────────────────────────────────────────────────

func TestSubmitDeletions_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/users/42/items", r.URL.Path)
		assert.Equal(t, "ABCD12", r.URL.Query().Get("itemKey"))
		assert.Equal(t, "12", r.Header.Get(HeaderIfUnmodifiedSinceVersion))
		w.Header().Set(HeaderLastModifiedVersion, "13")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SubmitDeletions(context.Background(), userLib, models.ObjectItem, 12, []string{"ABCD12"})

	require.NoError(t, err)
	assert.Equal(t, []string{"ABCD12"}, got.Confirmed)
	assert.Equal(t, int64(13), got.LastModifiedVersion)
}

func TestSubmitDeletions_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPreconditionFailed)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SubmitDeletions(context.Background(), userLib, models.ObjectItem, 12, []string{"ABCD12"})

	assert.ErrorIs(t, err, ErrPreconditionFailed)
	assert.Empty(t, got.Confirmed)
}

func TestSubmitDeletions_UnsupportedNeverSent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SubmitDeletions(context.Background(), userLib, models.ObjectTag, 12, []string{"tag"})
	assert.ErrorIs(t, err, ErrUnsupportedDeletionTarget)
}

// ── ListDeleted ─────────────────────────────────────────────────────────────

func TestListDeleted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/7/deleted", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("since"))
		writeJSON(t, w, "9", http.StatusOK, map[string]any{
			"collections": []string{"C1"},
			"items":       []string{"I1", "I2"},
			"searches":    []string{},
			"tags":        []string{"old"},
			"settings":    []string{"tagColors"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListDeleted(context.Background(), groupLib, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.LastModifiedVersion)
	assert.Equal(t, []string{"C1"}, got.Keys[models.ObjectCollection])
	assert.Equal(t, []string{"I1", "I2"}, got.Keys[models.ObjectItem])
	assert.Equal(t, []string{"I1", "I2"}, got.Keys[models.ObjectTrash])
	assert.Equal(t, []string{"old"}, got.Keys[models.ObjectTag])
	assert.Empty(t, got.Keys[models.ObjectSearch])
}
