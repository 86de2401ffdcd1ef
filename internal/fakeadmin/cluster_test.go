package fakeadmin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchplatform/searchadmin/client"
)

func TestCluster_HealthFollowsStatus(t *testing.T) {
	t.Parallel()
	c := NewCluster()
	h := c.Handler()

	var health client.ClusterHealth
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/_cluster/health", "").Body.Bytes(), &health))
	assert.Equal(t, client.HealthGreen, health.Status)
	assert.Equal(t, "fakeadmin", health.ClusterName)

	c.SetStatus(client.HealthRed)
	require.NoError(t, json.Unmarshal(do(t, h, http.MethodGet, "/_cluster/health", "").Body.Bytes(), &health))
	assert.Equal(t, client.HealthRed, health.Status)
	assert.Zero(t, health.ActiveShardsPercent)
}

func TestCluster_IndexLifecycle(t *testing.T) {
	t.Parallel()
	c := NewCluster()
	h := c.Handler()

	rec := do(t, h, http.MethodPut, "/logs", `{"mappings":{"properties":{"level":{"type":"keyword"}}}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"shards_acknowledged":true,"index":"logs"}`, rec.Body.String())
	body, ok := c.IndexBody("logs")
	require.True(t, ok)
	assert.JSONEq(t, `{"mappings":{"properties":{"level":{"type":"keyword"}}}}`, string(body))

	rec = do(t, h, http.MethodPut, "/logs", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "resource_already_exists_exception")

	require.Equal(t, http.StatusOK, do(t, h, http.MethodPut, "/empty", "").Code)
	assert.Equal(t, []string{"empty", "logs"}, c.IndexNames())

	rec = do(t, h, http.MethodDelete, "/logs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/logs", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "index_not_found_exception")
}

func TestCluster_CreateIndexRejects(t *testing.T) {
	t.Parallel()
	h := NewCluster().Handler()

	for _, name := range []string{"Logs", "_hidden", "-x", "a%23b"} {
		rec := do(t, h, http.MethodPut, "/"+name, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.Contains(t, rec.Body.String(), "invalid_index_name_exception", name)
	}
	rec := do(t, h, http.MethodPut, "/ok", `[1,2]`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "parse_exception")
}

func TestCluster_CatIndices(t *testing.T) {
	t.Parallel()
	c := NewCluster()
	h := c.Handler()
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPut, "/products", "").Code)
	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPut, "/logs/_doc/1", `{"level":"error"}`).Code)

	rec := do(t, h, http.MethodGet, "/_cat/indices?v", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"health", "status", "index", "uuid", "pri", "rep", "docs.count", "docs.deleted", "store.size", "pri.store.size"}, strings.Fields(lines[0]))
	logs := strings.Fields(lines[1])
	assert.Equal(t, "logs", logs[2])
	assert.Equal(t, "1", logs[6])

	rec = do(t, h, http.MethodGet, "/_cat/indices", "")
	assert.Len(t, strings.Split(strings.TrimSpace(rec.Body.String()), "\n"), 2, "no header without v")

	req := httptest.NewRequest(http.MethodGet, "/_cat/indices", nil)
	req.Header.Set("Accept", "application/json")
	jrec := httptest.NewRecorder()
	h.ServeHTTP(jrec, req)
	var rows []client.IndexInfo
	require.NoError(t, json.Unmarshal(jrec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "products", rows[1].Index)
	assert.Equal(t, "0", rows[1].DocsCount)
}

func TestCluster_Search(t *testing.T) {
	t.Parallel()
	h := NewCluster().Handler()
	docs := map[string]string{
		"1": `{"level":"error","host":"a","message":"disk full"}`,
		"2": `{"level":"info","host":"a","message":"started"}`,
		"3": `{"level":"error","host":"b","message":"timeout","tags":["net","retry"]}`,
	}
	for id, d := range docs {
		require.Less(t, do(t, h, http.MethodPut, "/logs/_doc/"+id, d).Code, 300)
	}

	search := func(q string) client.SearchResult {
		t.Helper()
		rec := do(t, h, http.MethodGet, "/logs/_search?q="+q, "")
		require.Equal(t, http.StatusOK, rec.Code)
		var res client.SearchResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		return res
	}
	ids := func(res client.SearchResult) []string {
		out := make([]string, 0, len(res.Hits.Hits))
		for _, h := range res.Hits.Hits {
			out = append(out, h.ID)
		}
		return out
	}

	assert.Equal(t, []string{"1", "3"}, ids(search("error")))
	assert.Equal(t, []string{"3"}, ids(search("level%3Aerror+AND+host%3Ab")))
	assert.Equal(t, []string{"3"}, ids(search("retry")))
	assert.Equal(t, []string{"1", "2", "3"}, ids(search("*")))
	assert.Empty(t, ids(search("missing%3Ax")))

	res := search("DISK")
	assert.Equal(t, int64(1), res.Hits.Total.Value)
	assert.Equal(t, "eq", res.Hits.Total.Relation)
	require.NotNil(t, res.Hits.MaxScore)
	assert.JSONEq(t, docs["1"], string(res.Hits.Hits[0].Source))

	rec := do(t, h, http.MethodGet, "/nope/_search?q=x", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCluster_PutDocUpdates(t *testing.T) {
	t.Parallel()
	h := NewCluster().Handler()
	assert.Equal(t, http.StatusCreated, do(t, h, http.MethodPut, "/logs/_doc/1", `{"a":1}`).Code)
	rec := do(t, h, http.MethodPut, "/logs/_doc/1", `{"a":2}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"result":"updated"`)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPut, "/logs/_doc/2", `nope`).Code)
}

func TestParseQuery(t *testing.T) {
	t.Parallel()
	assert.Empty(t, parseQuery(""))
	assert.Empty(t, parseQuery("* AND"))
	assert.Equal(t, queryTerms{{field: "level", value: "error"}, {value: "disk"}}, parseQuery(`level:ERROR AND "Disk"`))
	assert.Equal(t, queryTerms{{value: ":x"}}, parseQuery(":x"))
}
