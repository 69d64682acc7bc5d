package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/utils"
	"github.com/MKhiriev/zotero-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	apiKey string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and the API version header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader(HeaderAPIVersion, apiVersion)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetAPIKey implements [ServerAdapter]. The key is whitespace-trimmed.
func (h *httpServerAdapter) SetAPIKey(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.apiKey = strings.TrimSpace(key)
}

// APIKey implements [ServerAdapter].
func (h *httpServerAdapter) APIKey() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.apiKey
}

// Login implements [ServerAdapter]. It POSTs the credentials to /keys and
// decodes {key, userID, username}.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	req, err := LoginRequest(creds)
	if err != nil {
		return models.LoginResponse{}, err
	}

	resp, err := h.do(ctx, "login", req)
	if err != nil {
		return models.LoginResponse{}, err
	}

	parsed, err := parseBody(resp, "login")
	if err != nil {
		return models.LoginResponse{}, err
	}

	out := models.LoginResponse{
		UserID: parsed.Get("userID").Int(),
		Name:   parsed.Get("username").String(),
		Key:    parsed.Get("key").String(),
	}
	if out.UserID <= 0 || out.Key == "" {
		return models.LoginResponse{}, fmt.Errorf("%w: login: missing userID or key", ErrMalformedResponse)
	}

	return out, nil
}

// ListVersions implements [ServerAdapter]. It GETs
// <lib>/<type>?format=versions[&since=N] and decodes the key→version object.
func (h *httpServerAdapter) ListVersions(ctx context.Context, lib models.Library, typ models.ObjectType, since int64) (models.RemoteVersions, error) {
	req, err := ListVersionsRequest(lib, typ, since)
	if err != nil {
		return models.RemoteVersions{}, err
	}

	resp, err := h.do(ctx, "list versions", req)
	if err != nil {
		return models.RemoteVersions{}, err
	}

	lmv, err := lastModifiedVersion(resp)
	if err != nil {
		return models.RemoteVersions{}, err
	}

	parsed, err := parseBody(resp, "list versions")
	if err != nil {
		return models.RemoteVersions{}, err
	}
	if !parsed.IsObject() {
		return models.RemoteVersions{}, fmt.Errorf("%w: list versions: expected object", ErrMalformedResponse)
	}

	versions := make(map[string]int64)
	var decodeErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.Type != gjson.Number {
			decodeErr = fmt.Errorf("%w: list versions: version of %q is not a number", ErrMalformedResponse, key.String())
			return false
		}
		versions[key.String()] = value.Int()
		return true
	})
	if decodeErr != nil {
		return models.RemoteVersions{}, decodeErr
	}

	return models.RemoteVersions{
		Versions:            versions,
		Full:                since == 0 && complete(resp, len(versions)),
		LastModifiedVersion: lmv,
	}, nil
}

// complete reports whether a version list carries every key the server has.
// A Total-Results header larger than the list, or one that is not a number,
// leaves completeness unproven, and such a list must not be used to infer
// deletions.
func complete(resp *resty.Response, got int) bool {
	raw := resp.Header().Get(HeaderTotalResults)
	if raw == "" {
		return true
	}
	total, err := strconv.Atoi(raw)
	if err != nil {
		return false
	}
	return total <= got
}

// FetchObjects implements [ServerAdapter]. Group metadata is fetched one
// object per request; every other type in batches of FetchBatchSize.
func (h *httpServerAdapter) FetchObjects(ctx context.Context, lib models.Library, typ models.ObjectType, keys []string) (models.FetchResult, error) {
	reqs, err := FetchObjectsRequests(lib, typ, keys)
	if err != nil {
		return models.FetchResult{}, err
	}

	var result models.FetchResult
	for _, req := range reqs {
		resp, err := h.do(ctx, "fetch objects", req)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				result.Missing = append(result.Missing, req.Keys...)
				continue
			}
			return result, err
		}

		parsed, err := parseBody(resp, "fetch objects")
		if err != nil {
			result.Malformed = append(result.Malformed, req.Keys...)
			continue
		}

		var elements []gjson.Result
		switch {
		case parsed.IsArray():
			elements = parsed.Array()
		case parsed.IsObject():
			elements = []gjson.Result{parsed}
		default:
			result.Malformed = append(result.Malformed, req.Keys...)
			continue
		}

		seen := make(map[string]bool, len(elements))
		for _, el := range elements {
			key := objectKey(el)
			if key == "" || !slices.Contains(req.Keys, key) {
				continue
			}
			seen[key] = true

			obj, ok := decodeObject(el)
			if !ok {
				result.Malformed = append(result.Malformed, key)
				continue
			}
			result.Objects = append(result.Objects, obj)
		}

		for _, key := range req.Keys {
			if !seen[key] {
				result.Missing = append(result.Missing, key)
			}
		}
	}

	return result, nil
}

// SubmitObjects implements [ServerAdapter]. When records span several
// batches, each following batch is sent against the Last-Modified-Version
// returned by the previous one.
func (h *httpServerAdapter) SubmitObjects(ctx context.Context, lib models.Library, typ models.ObjectType, version int64, records []models.Record) (models.SubmitResult, error) {
	reqs, err := SubmitObjectsRequests(lib, typ, version, records)
	if err != nil {
		return models.SubmitResult{}, err
	}

	result := models.SubmitResult{
		Successful:          make(map[int]models.RemoteObject),
		Unchanged:           make(map[int]string),
		Failed:              make(map[int]models.SubmitFailure),
		LastModifiedVersion: version,
	}

	offset := 0
	for _, req := range reqs {
		req.Header.Set(HeaderIfUnmodifiedSinceVersion, strconv.FormatInt(result.LastModifiedVersion, 10))

		resp, err := h.do(ctx, "submit objects", req)
		if err != nil {
			return result, err
		}

		lmv, err := lastModifiedVersion(resp)
		if err != nil {
			return result, err
		}

		parsed, err := parseBody(resp, "submit objects")
		if err != nil {
			return result, err
		}

		if err := decodeSubmitResult(parsed, offset, &result); err != nil {
			return result, err
		}

		if lmv > result.LastModifiedVersion {
			result.LastModifiedVersion = lmv
		}
		offset += len(req.Keys)
	}

	return result, nil
}

// SubmitDeletions implements [ServerAdapter].
func (h *httpServerAdapter) SubmitDeletions(ctx context.Context, lib models.Library, typ models.ObjectType, version int64, keys []string) (models.DeletionResult, error) {
	reqs, err := SubmitDeletionsRequests(lib, typ, keys, version)
	if err != nil {
		return models.DeletionResult{}, err
	}

	result := models.DeletionResult{LastModifiedVersion: version}
	for _, req := range reqs {
		req.Header.Set(HeaderIfUnmodifiedSinceVersion, strconv.FormatInt(result.LastModifiedVersion, 10))

		resp, err := h.do(ctx, "submit deletions", req)
		if err != nil {
			return result, err
		}

		lmv, err := lastModifiedVersion(resp)
		if err != nil {
			return result, err
		}

		result.Confirmed = append(result.Confirmed, req.Keys...)
		if lmv > result.LastModifiedVersion {
			result.LastModifiedVersion = lmv
		}
	}

	return result, nil
}

// ListDeleted implements [ServerAdapter]. It GETs <lib>/deleted?since=N and
// maps each member of the answer onto the object types it covers.
func (h *httpServerAdapter) ListDeleted(ctx context.Context, lib models.Library, since int64) (models.RemoteDeletions, error) {
	req, err := ListDeletedRequest(lib, since)
	if err != nil {
		return models.RemoteDeletions{}, err
	}

	resp, err := h.do(ctx, "list deleted", req)
	if err != nil {
		return models.RemoteDeletions{}, err
	}

	lmv, err := lastModifiedVersion(resp)
	if err != nil {
		return models.RemoteDeletions{}, err
	}

	parsed, err := parseBody(resp, "list deleted")
	if err != nil {
		return models.RemoteDeletions{}, err
	}
	if !parsed.IsObject() {
		return models.RemoteDeletions{}, fmt.Errorf("%w: list deleted: expected object", ErrMalformedResponse)
	}

	out := models.RemoteDeletions{
		Keys:                make(map[models.ObjectType][]string),
		LastModifiedVersion: lmv,
	}
	parsed.ForEach(func(field, value gjson.Result) bool {
		if !value.IsArray() {
			return true
		}
		keys := make([]string, 0, len(value.Array()))
		for _, k := range value.Array() {
			keys = append(keys, k.String())
		}
		for _, typ := range deletedTypes(field.String()) {
			out.Keys[typ] = append(out.Keys[typ], keys...)
		}
		return true
	})

	return out, nil
}

func (h *httpServerAdapter) do(ctx context.Context, op string, req Request) (*resty.Response, error) {
	r := h.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(req.Query).
		SetHeaderMultiValues(req.Header)

	if key := h.APIKey(); key != "" {
		r.SetHeader(HeaderAPIKey, key)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json").SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, "/"+req.Path)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("func", "httpServerAdapter.do").
			Str("method", req.Method).
			Str("path", req.Path).
			Msg("request failed before response")
		return nil, mapTransportError(op, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return resp, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

func lastModifiedVersion(resp *resty.Response) (int64, error) {
	raw := resp.Header().Get(HeaderLastModifiedVersion)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s header %q", ErrMalformedResponse, HeaderLastModifiedVersion, raw)
	}
	return v, nil
}

func parseBody(resp *resty.Response, op string) (gjson.Result, error) {
	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: %s: invalid json body", ErrMalformedResponse, op)
	}
	return gjson.ParseBytes(body), nil
}

// objectKey returns the key of an object body. Group metadata objects are
// identified by their numeric id.
func objectKey(el gjson.Result) string {
	if key := el.Get("key"); key.Exists() {
		return key.String()
	}
	if id := el.Get("id"); id.Type == gjson.Number {
		return id.Raw
	}
	return ""
}

func decodeObject(el gjson.Result) (models.RemoteObject, bool) {
	key := objectKey(el)
	version := el.Get("version")
	if key == "" || version.Type != gjson.Number || version.Int() < 0 {
		return models.RemoteObject{}, false
	}

	return models.RemoteObject{
		Key:     key,
		Version: version.Int(),
		Body:    []byte(el.Raw),
	}, true
}

func decodeSubmitResult(parsed gjson.Result, offset int, result *models.SubmitResult) error {
	var decodeErr error
	index := func(k gjson.Result) (int, bool) {
		i, err := strconv.Atoi(k.String())
		if err != nil {
			decodeErr = fmt.Errorf("%w: submit objects: index %q", ErrMalformedResponse, k.String())
			return 0, false
		}
		return offset + i, true
	}

	parsed.Get("successful").ForEach(func(k, v gjson.Result) bool {
		i, ok := index(k)
		if !ok {
			return false
		}
		obj, ok := decodeObject(v)
		if !ok {
			decodeErr = fmt.Errorf("%w: submit objects: successful[%d]", ErrMalformedResponse, i)
			return false
		}
		result.Successful[i] = obj
		return true
	})
	if decodeErr != nil {
		return decodeErr
	}

	parsed.Get("unchanged").ForEach(func(k, v gjson.Result) bool {
		i, ok := index(k)
		if !ok {
			return false
		}
		result.Unchanged[i] = v.String()
		return true
	})
	if decodeErr != nil {
		return decodeErr
	}

	parsed.Get("failed").ForEach(func(k, v gjson.Result) bool {
		i, ok := index(k)
		if !ok {
			return false
		}
		result.Failed[i] = models.SubmitFailure{
			Key:     v.Get("key").String(),
			Code:    int(v.Get("code").Int()),
			Message: v.Get("message").String(),
		}
		return true
	})

	return decodeErr
}
