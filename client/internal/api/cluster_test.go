package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/searchplatform/searchadmin/client/internal/errors"
)

const catTable = `health status index       uuid                   pri rep docs.count docs.deleted store.size pri.store.size
yellow open   logs        Xk2vQ1bTQ0K2kD1h1v6qkA   1   1         42            0     12.5kb         12.5kb
green  open   products    p7f0s9dTQm6Jx3l7B3e1bw   1   0          3            1      8.1kb          8.1kb
`

func TestClusterHealth_Success(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, `{"cluster_name":"opensearch","status":"yellow","timed_out":false,"number_of_nodes":1,"active_shards_percent_as_number":50.0}`)

	h, err := ClusterHealth(context.Background(), rec.cluster())
	require.NoError(t, err)
	assert.Equal(t, "opensearch", h.ClusterName)
	assert.Equal(t, "yellow", h.Status)
	assert.Equal(t, 1, h.NumberOfNodes)
	assert.InDelta(t, 50.0, h.ActiveShardsPercent, 0.001)

	req := rec.requests()[0]
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/_cluster/health", req.RequestURI)
}

func TestListIndices_VerboseTable(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, catTable)

	got, err := ListIndices(context.Background(), rec.cluster())
	require.NoError(t, err)
	assert.Equal(t, catTable, got.Raw)
	assert.Equal(t, "/_cat/indices?v", rec.requests()[0].RequestURI)

	require.Len(t, got.Indices, 2)
	assert.Equal(t, "logs", got.Indices[0].Index)
	assert.Equal(t, "yellow", got.Indices[0].Health)
	assert.Equal(t, "42", got.Indices[0].DocsCount)
	assert.Equal(t, "8.1kb", got.Indices[1].PriStoreSize)
}

func TestParseCatIndices_Edges(t *testing.T) {
	t.Parallel()
	assert.Empty(t, ParseCatIndices(""))
	assert.Empty(t, ParseCatIndices("health status index uuid pri rep\n"))

	rows := ParseCatIndices("index health\nlogs green\n\n")
	require.Len(t, rows, 1)
	assert.Equal(t, "logs", rows[0].Index)
	assert.Equal(t, "green", rows[0].Health)
}

func TestCreateIndex_ForwardsMapping(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, `{"acknowledged":true,"shards_acknowledged":true,"index":"logs"}`)
	mapping := json.RawMessage(`{"mappings":{"properties":{"message":{"type":"text"}}}}`)

	ack, err := CreateIndex(context.Background(), rec.cluster(), "logs", mapping)
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	assert.Equal(t, "logs", ack.Index)

	req := rec.requests()[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/logs", req.RequestURI)
	assert.JSONEq(t, string(mapping), req.Body)
}

func TestCreateIndex_MapBodyAndNil(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, `{"acknowledged":true}`)

	_, err := CreateIndex(context.Background(), rec.cluster(), "a", map[string]any{"settings": map[string]any{"number_of_shards": 1}})
	require.NoError(t, err)
	_, err = CreateIndex(context.Background(), rec.cluster(), "b", nil)
	require.NoError(t, err)

	reqs := rec.requests()
	require.Len(t, reqs, 2)
	assert.JSONEq(t, `{"settings":{"number_of_shards":1}}`, reqs[0].Body)
	assert.Empty(t, reqs[1].Body)
}

func TestDeleteIndex_Path(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, `{"acknowledged":true}`)

	ack, err := DeleteIndex(context.Background(), rec.cluster(), "logs")
	require.NoError(t, err)
	assert.True(t, ack.Acknowledged)
	req := rec.requests()[0]
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/logs", req.RequestURI)
}

func TestSearch_QueryString(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, `{"took":3,"timed_out":false,"_shards":{"total":1,"successful":1,"skipped":0,"failed":0},
"hits":{"total":{"value":1,"relation":"eq"},"max_score":1.2,"hits":[{"_index":"logs","_id":"1","_score":1.2,"_source":{"level":"error"}}]}}`)

	sr, err := Search(context.Background(), rec.cluster(), "logs", "error")
	require.NoError(t, err)
	assert.Equal(t, "/logs/_search?q=error", rec.requests()[0].RequestURI)
	assert.Equal(t, int64(1), sr.Hits.Total.Value)
	require.Len(t, sr.Hits.Hits, 1)
	assert.Equal(t, "1", sr.Hits.Hits[0].ID)
	assert.JSONEq(t, `{"level":"error"}`, string(sr.Hits.Hits[0].Source))
}

func TestSearch_EncodesQuery(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusOK, `{"hits":{"hits":[]}}`)

	_, err := Search(context.Background(), rec.cluster(), "logs", "level:error AND host:a")
	require.NoError(t, err)
	assert.Equal(t, "/logs/_search?q=level%3Aerror+AND+host%3Aa", rec.requests()[0].RequestURI)
}

func TestCluster_ErrorReply(t *testing.T) {
	t.Parallel()
	rec := newRecorder(t, http.StatusBadRequest,
		`{"error":{"type":"resource_already_exists_exception","reason":"index [logs/abc] already exists"},"status":400}`)

	_, err := CreateIndex(context.Background(), rec.cluster(), "logs", map[string]any{})
	var he *apierrors.HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, apierrors.Irrecoverable, he.Category)
	assert.Contains(t, he.Message, "already exists")
	assert.Contains(t, he.URL, "/logs")
}

func TestCluster_HTTPDoError(t *testing.T) {
	t.Parallel()
	rc := failingClient()
	ctx := context.Background()

	_, err := ClusterHealth(ctx, rc)
	assert.Error(t, err)
	_, err = ListIndices(ctx, rc)
	assert.Error(t, err)
	_, err = DeleteIndex(ctx, rc, "x")
	assert.Error(t, err)
	_, err = Search(ctx, rc, "x", "y")
	assert.Error(t, err)
}
