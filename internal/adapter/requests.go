// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/zotero-sync/models"
	"github.com/tidwall/sjson"
)

// Protocol headers.
const (
	HeaderAPIKey                   = "Zotero-API-Key"
	HeaderAPIVersion               = "Zotero-API-Version"
	HeaderLastModifiedVersion      = "Last-Modified-Version"
	HeaderIfUnmodifiedSinceVersion = "If-Unmodified-Since-Version"
	HeaderTotalResults             = "Total-Results"

	apiVersion = "3"
)

// Request is a fully described outbound API operation. Path is relative to
// the API base URL.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte

	// Keys are the object keys the request covers, in body order for
	// submissions.
	Keys []string
}

// ListVersionsRequest builds the key→version list request. A since of 0
// requests the full current mapping.
func ListVersionsRequest(lib models.Library, typ models.ObjectType, since int64) (Request, error) {
	p, err := policyFor(lib, typ)
	if err != nil {
		return Request{}, err
	}

	query := url.Values{"format": {"versions"}}
	if since > 0 {
		query.Set("since", strconv.FormatInt(since, 10))
	}

	return Request{
		Method: http.MethodGet,
		Path:   lib.APIPath() + "/" + p.path,
		Query:  query,
		Header: http.Header{},
	}, nil
}

// FetchObjectsRequests builds the requests downloading the full bodies of
// keys, at most FetchBatchSize keys per request.
func FetchObjectsRequests(lib models.Library, typ models.ObjectType, keys []string) ([]Request, error) {
	p, err := policyFor(lib, typ)
	if err != nil {
		return nil, err
	}

	if p.perKeyFetch {
		reqs := make([]Request, 0, len(keys))
		for _, key := range keys {
			if _, err := strconv.ParseInt(key, 10, 64); err != nil {
				return nil, fmt.Errorf("%w: %s key %q", ErrMalformedRequest, typ, key)
			}
			reqs = append(reqs, Request{
				Method: http.MethodGet,
				Path:   p.path + "/" + key,
				Query:  url.Values{},
				Header: http.Header{},
				Keys:   []string{key},
			})
		}
		return reqs, nil
	}

	var reqs []Request
	for _, batch := range Chunk(keys, FetchBatchSize) {
		reqs = append(reqs, Request{
			Method: http.MethodGet,
			Path:   lib.APIPath() + "/" + p.path,
			Query:  url.Values{p.keyParam: {strings.Join(batch, p.keySep)}},
			Header: http.Header{},
			Keys:   batch,
		})
	}
	return reqs, nil
}

// SubmitObjectsRequests builds the requests pushing locally modified records.
// Each body carries the record key and the server version it is based on;
// every request carries version as its If-Unmodified-Since-Version.
func SubmitObjectsRequests(lib models.Library, typ models.ObjectType, version int64, records []models.Record) ([]Request, error) {
	p, err := policyFor(lib, typ)
	if err != nil {
		return nil, err
	}
	if !p.submittable {
		return nil, fmt.Errorf("%w: %s cannot be submitted", ErrMalformedRequest, typ)
	}

	var reqs []Request
	for _, batch := range Chunk(records, SubmitBatchSize) {
		bodies := make([]json.RawMessage, 0, len(batch))
		keys := make([]string, 0, len(batch))
		for _, rec := range batch {
			body, err := stampBody(rec)
			if err != nil {
				return nil, err
			}
			bodies = append(bodies, body)
			keys = append(keys, rec.Key)
		}

		payload, err := json.Marshal(bodies)
		if err != nil {
			return nil, fmt.Errorf("%w: encode submission: %w", ErrMalformedRequest, err)
		}

		reqs = append(reqs, Request{
			Method: http.MethodPost,
			Path:   lib.APIPath() + "/" + p.writePath,
			Query:  url.Values{},
			Header: preconditionHeader(version),
			Body:   payload,
			Keys:   keys,
		})
	}
	return reqs, nil
}

// SubmitDeletionsRequests builds the requests deleting keys on the server.
// Types without a deletion parameter fail with ErrUnsupportedDeletionTarget.
func SubmitDeletionsRequests(lib models.Library, typ models.ObjectType, keys []string, version int64) ([]Request, error) {
	p, err := policyFor(lib, typ)
	if err != nil {
		return nil, err
	}
	if p.deletionParam == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDeletionTarget, typ)
	}

	var reqs []Request
	for _, batch := range Chunk(keys, DeletionBatchSize) {
		reqs = append(reqs, Request{
			Method: http.MethodDelete,
			Path:   lib.APIPath() + "/" + p.writePath,
			Query:  url.Values{p.deletionParam: {strings.Join(batch, ",")}},
			Header: preconditionHeader(version),
			Keys:   batch,
		})
	}
	return reqs, nil
}

// ListDeletedRequest builds the request for the deletion log of lib.
func ListDeletedRequest(lib models.Library, since int64) (Request, error) {
	if !lib.Valid() {
		return Request{}, fmt.Errorf("%w: library %q", ErrMalformedRequest, lib)
	}

	return Request{
		Method: http.MethodGet,
		Path:   lib.APIPath() + "/deleted",
		Query:  url.Values{"since": {strconv.FormatInt(since, 10)}},
		Header: http.Header{},
	}, nil
}

// LoginRequest builds the API key creation request for creds.
func LoginRequest(creds models.Credentials) (Request, error) {
	if creds.Username == "" || creds.Password == "" {
		return Request{}, fmt.Errorf("%w: empty credentials", ErrMalformedRequest)
	}

	body, err := json.Marshal(map[string]any{
		"username": creds.Username,
		"password": creds.Password,
		"name":     "zsync",
		"access": map[string]any{
			"user":   map[string]bool{"library": true, "write": true},
			"groups": map[string]map[string]bool{"all": {"library": true, "write": true}},
		},
	})
	if err != nil {
		return Request{}, fmt.Errorf("%w: encode credentials: %w", ErrMalformedRequest, err)
	}

	return Request{
		Method: http.MethodPost,
		Path:   "keys",
		Query:  url.Values{},
		Header: http.Header{},
		Body:   body,
	}, nil
}

// Chunk splits s into consecutive slices of at most size elements.
func Chunk[T any](s []T, size int) [][]T {
	if size <= 0 {
		size = len(s)
	}

	var out [][]T
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		out = append(out, s[start:end])
	}
	return out
}

func preconditionHeader(version int64) http.Header {
	h := http.Header{}
	h.Set(HeaderIfUnmodifiedSinceVersion, strconv.FormatInt(version, 10))
	return h
}

// stampBody writes the key and base version of rec into its opaque body.
func stampBody(rec models.Record) (json.RawMessage, error) {
	body := []byte(rec.Body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	body, err := sjson.SetBytes(body, "key", rec.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: stamp key of %q: %w", ErrMalformedRequest, rec.Key, err)
	}
	body, err = sjson.SetBytes(body, "version", rec.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: stamp version of %q: %w", ErrMalformedRequest, rec.Key, err)
	}
	return body, nil
}
