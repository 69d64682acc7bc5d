package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/zotero-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

var (
	userLib  = models.PersonalLibrary(42)
	groupLib = models.GroupLibrary(7)
)

func keys(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("K%07d", i)
	}
	return out
}

func TestListVersionsRequest(t *testing.T) {
	tests := []struct {
		name      string
		lib       models.Library
		typ       models.ObjectType
		since     int64
		wantPath  string
		wantSince string
		wantErr   error
	}{
		{name: "full item list", lib: userLib, typ: models.ObjectItem, wantPath: "users/42/items"},
		{name: "incremental collections", lib: groupLib, typ: models.ObjectCollection, since: 10, wantPath: "groups/7/collections", wantSince: "10"},
		{name: "trash", lib: userLib, typ: models.ObjectTrash, since: 3, wantPath: "users/42/items/trash", wantSince: "3"},
		{name: "tags", lib: userLib, typ: models.ObjectTag, wantPath: "users/42/tags"},
		{name: "groups of user", lib: userLib, typ: models.ObjectGroupMetadata, wantPath: "users/42/groups"},
		{name: "groups of group", lib: groupLib, typ: models.ObjectGroupMetadata, wantErr: ErrMalformedRequest},
		{name: "unknown type", lib: userLib, typ: "attachment", wantErr: ErrMalformedRequest},
		{name: "invalid library", lib: models.Library{Kind: "team", ID: 1}, typ: models.ObjectItem, wantErr: ErrMalformedRequest},
		{name: "zero id", lib: models.PersonalLibrary(0), typ: models.ObjectItem, wantErr: ErrMalformedRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ListVersionsRequest(tt.lib, tt.typ, tt.since)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tt.wantPath, req.Path)
			assert.Equal(t, "versions", req.Query.Get("format"))
			assert.Equal(t, tt.wantSince, req.Query.Get("since"))
		})
	}
}

func TestFetchObjectsRequests_Batches(t *testing.T) {
	reqs, err := FetchObjectsRequests(userLib, models.ObjectItem, keys(120))
	require.NoError(t, err)
	require.Len(t, reqs, 3)

	assert.Len(t, reqs[0].Keys, FetchBatchSize)
	assert.Len(t, reqs[1].Keys, FetchBatchSize)
	assert.Len(t, reqs[2].Keys, 20)
	assert.Equal(t, "users/42/items", reqs[0].Path)
	assert.Equal(t, "K0000000,K0000001", reqs[0].Query.Get("itemKey")[:17])
}

func TestFetchObjectsRequests_KeyParams(t *testing.T) {
	tests := []struct {
		typ       models.ObjectType
		param     string
		wantValue string
	}{
		{models.ObjectCollection, "collectionKey", "A,B"},
		{models.ObjectItem, "itemKey", "A,B"},
		{models.ObjectTrash, "itemKey", "A,B"},
		{models.ObjectSearch, "searchKey", "A,B"},
		{models.ObjectTag, "tag", "A || B"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			reqs, err := FetchObjectsRequests(groupLib, tt.typ, []string{"A", "B"})
			require.NoError(t, err)
			require.Len(t, reqs, 1)
			assert.Equal(t, tt.wantValue, reqs[0].Query.Get(tt.param))
		})
	}
}

func TestFetchObjectsRequests_GroupMetadataPerKey(t *testing.T) {
	reqs, err := FetchObjectsRequests(userLib, models.ObjectGroupMetadata, []string{"7", "9"})
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "groups/7", reqs[0].Path)
	assert.Equal(t, "groups/9", reqs[1].Path)

	_, err = FetchObjectsRequests(userLib, models.ObjectGroupMetadata, []string{"../x"})
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestSubmitObjectsRequests(t *testing.T) {
	records := []models.Record{
		{Key: "ABCD1234", Version: 5, Body: json.RawMessage(`{"data":{"title":"A"}}`)},
		{Key: "EFGH5678", Version: 0, Body: json.RawMessage(`{"data":{"title":"B"},"version":99}`)},
	}

	reqs, err := SubmitObjectsRequests(userLib, models.ObjectTrash, 12, records)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	req := reqs[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "users/42/items", req.Path)
	assert.Equal(t, "12", req.Header.Get(HeaderIfUnmodifiedSinceVersion))
	assert.Equal(t, []string{"ABCD1234", "EFGH5678"}, req.Keys)

	body := gjson.ParseBytes(req.Body)
	require.True(t, body.IsArray())
	assert.Equal(t, "ABCD1234", body.Get("0.key").String())
	assert.Equal(t, int64(5), body.Get("0.version").Int())
	assert.Equal(t, "A", body.Get("0.data.title").String())
	assert.Equal(t, int64(0), body.Get("1.version").Int())
}

func TestSubmitObjectsRequests_BatchesAndUnsupported(t *testing.T) {
	records := make([]models.Record, 51)
	for i := range records {
		records[i] = models.Record{Key: fmt.Sprintf("K%d", i)}
	}

	reqs, err := SubmitObjectsRequests(userLib, models.ObjectItem, 1, records)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Len(t, reqs[1].Keys, 1)

	_, err = SubmitObjectsRequests(userLib, models.ObjectTag, 1, records[:1])
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestSubmitDeletionsRequests(t *testing.T) {
	tests := []struct {
		typ      models.ObjectType
		param    string
		wantPath string
		wantErr  error
	}{
		{typ: models.ObjectCollection, param: "collectionKey", wantPath: "groups/7/collections"},
		{typ: models.ObjectItem, param: "itemKey", wantPath: "groups/7/items"},
		{typ: models.ObjectTrash, param: "itemKey", wantPath: "groups/7/items"},
		{typ: models.ObjectSearch, param: "searchKey", wantPath: "groups/7/searches"},
		{typ: models.ObjectTag, wantErr: ErrUnsupportedDeletionTarget},
		{typ: models.ObjectGroupMetadata, wantErr: ErrMalformedRequest},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			reqs, err := SubmitDeletionsRequests(groupLib, tt.typ, []string{"ABCD12", "EFGH34"}, 12)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Len(t, reqs, 1)
			assert.Equal(t, http.MethodDelete, reqs[0].Method)
			assert.Equal(t, tt.wantPath, reqs[0].Path)
			assert.Equal(t, "ABCD12,EFGH34", reqs[0].Query.Get(tt.param))
			assert.Equal(t, "12", reqs[0].Header.Get(HeaderIfUnmodifiedSinceVersion))
		})
	}

	_, err := SubmitDeletionsRequests(userLib, models.ObjectGroupMetadata, []string{"7"}, 1)
	assert.ErrorIs(t, err, ErrUnsupportedDeletionTarget)
}

func TestPolicyHelpers(t *testing.T) {
	assert.True(t, DeletionSupported(models.ObjectItem))
	assert.False(t, DeletionSupported(models.ObjectTag))
	assert.False(t, DeletionSupported(models.ObjectGroupMetadata))
	assert.False(t, DeletionSupported("unknown"))

	assert.True(t, Submittable(models.ObjectSearch))
	assert.False(t, Submittable(models.ObjectTag))

	assert.Equal(t, []models.ObjectType{models.ObjectItem, models.ObjectTrash}, deletedTypes("items"))
	assert.Empty(t, deletedTypes("settings"))
}

func TestLoginRequest(t *testing.T) {
	req, err := LoginRequest(models.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "keys", req.Path)
	assert.Equal(t, "alice", gjson.GetBytes(req.Body, "username").String())
	assert.True(t, gjson.GetBytes(req.Body, "access.user.write").Bool())

	_, err = LoginRequest(models.Credentials{Username: "alice"})
	assert.ErrorIs(t, err, ErrMalformedRequest)
}

func TestChunk(t *testing.T) {
	assert.Nil(t, Chunk([]int{}, 3))
	assert.Equal(t, [][]int{{1, 2}, {3}}, Chunk([]int{1, 2, 3}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, Chunk([]int{1, 2, 3}, 0))
}
