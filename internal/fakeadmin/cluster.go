package fakeadmin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/searchplatform/searchadmin/client"
	"github.com/searchplatform/searchadmin/internal/fakeadmin/respond"
)

type fakeIndex struct {
	uuid    string
	body    json.RawMessage
	docs    map[string]json.RawMessage
	deleted int
}

// Cluster fakes the handful of OpenSearch endpoints the SDK calls, plus
// PUT /{index}/_doc/{id} for seeding documents.
//
// Search understands a small query-string subset: whitespace separated terms,
// all of which must match, each either "field:value" or a bare value matched
// against every field. "AND" is ignored and "*" matches everything.
type Cluster struct {
	mu      sync.RWMutex
	name    string
	status  string
	indices map[string]*fakeIndex
}

// NewCluster returns an empty, green cluster.
func NewCluster() *Cluster {
	return &Cluster{
		name:    "fakeadmin",
		status:  client.HealthGreen,
		indices: make(map[string]*fakeIndex),
	}
}

// SetStatus changes the health color reported from now on.
func (c *Cluster) SetStatus(status string) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}

// IndexNames lists existing indices in name order.
func (c *Cluster) IndexNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.indices))
	for n := range c.indices {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IndexBody returns the body an index was created with.
func (c *Cluster) IndexBody(name string) (json.RawMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	idx, ok := c.indices[name]
	if !ok {
		return nil, false
	}
	return idx.body, true
}

// Handler routes the cluster endpoints.
func (c *Cluster) Handler() http.Handler {
	router := mux.NewRouter().UseEncodedPath()
	router.Use(recoverMiddleware, logMiddleware("cluster"))

	router.HandleFunc("/_cluster/health", c.health).Methods("GET")
	router.HandleFunc("/_cat/indices", c.catIndices).Methods("GET")
	router.HandleFunc("/{index}/_search", c.search).Methods("GET", "POST")
	router.HandleFunc("/{index}/_doc/{id}", c.putDoc).Methods("PUT", "POST")
	router.HandleFunc("/{index}", c.createIndex).Methods("PUT")
	router.HandleFunc("/{index}", c.deleteIndex).Methods("DELETE")

	return router
}

// health GET /_cluster/health
func (c *Cluster) health(w http.ResponseWriter, r *http.Request) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	shards := len(c.indices)
	active := 100.0
	if c.status == client.HealthRed {
		active = 0
	}
	respond.WriteJSON(w, http.StatusOK, client.ClusterHealth{
		ClusterName:         c.name,
		Status:              c.status,
		NumberOfNodes:       1,
		NumberOfDataNodes:   1,
		ActivePrimaryShards: shards,
		ActiveShards:        shards,
		ActiveShardsPercent: active,
	})
}

// catIndices GET /_cat/indices[?v]. Answers JSON when the caller asks for it.
func (c *Cluster) catIndices(w http.ResponseWriter, r *http.Request) {
	rows := c.indexRows()
	if strings.Contains(r.Header.Get("Accept"), "application/json") || r.URL.Query().Get("format") == "json" {
		respond.WriteJSON(w, http.StatusOK, rows)
		return
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 1, ' ', 0)
	if _, verbose := r.URL.Query()["v"]; verbose {
		fmt.Fprintln(tw, "health\tstatus\tindex\tuuid\tpri\trep\tdocs.count\tdocs.deleted\tstore.size\tpri.store.size")
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Health, row.Status, row.Index, row.UUID, row.Primaries, row.Replicas,
			row.DocsCount, row.DocsDeleted, row.StoreSize, row.PriStoreSize)
	}
	_ = tw.Flush()
	respond.WriteText(w, http.StatusOK, buf.String())
}

func (c *Cluster) indexRows() []client.IndexInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.indices))
	for n := range c.indices {
		names = append(names, n)
	}
	sort.Strings(names)

	rows := make([]client.IndexInfo, 0, len(names))
	for _, n := range names {
		idx := c.indices[n]
		size := 0
		for _, d := range idx.docs {
			size += len(d)
		}
		rows = append(rows, client.IndexInfo{
			Health:       c.status,
			Status:       "open",
			Index:        n,
			UUID:         idx.uuid,
			Primaries:    "1",
			Replicas:     "0",
			DocsCount:    fmt.Sprint(len(idx.docs)),
			DocsDeleted:  fmt.Sprint(idx.deleted),
			StoreSize:    fmt.Sprintf("%db", size),
			PriStoreSize: fmt.Sprintf("%db", size),
		})
	}
	return rows
}

// createIndex PUT /{index}
func (c *Cluster) createIndex(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "index")
	if reason := invalidIndexName(name); reason != "" {
		respond.WriteClusterError(w, http.StatusBadRequest, "invalid_index_name_exception",
			fmt.Sprintf("Invalid index name [%s], %s", name, reason))
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respond.WriteClusterError(w, http.StatusBadRequest, "parse_exception", err.Error())
		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		var obj map[string]any
		if err := json.Unmarshal(body, &obj); err != nil {
			respond.WriteClusterError(w, http.StatusBadRequest, "parse_exception", "request body is required to be a JSON object")
			return
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if idx, ok := c.indices[name]; ok {
		respond.WriteClusterError(w, http.StatusBadRequest, "resource_already_exists_exception",
			fmt.Sprintf("index [%s/%s] already exists", name, idx.uuid))
		return
	}
	c.indices[name] = &fakeIndex{
		uuid: strings.ReplaceAll(uuid.NewString(), "-", "")[:22],
		body: json.RawMessage(body),
		docs: make(map[string]json.RawMessage),
	}
	respond.WriteJSON(w, http.StatusOK, client.Acknowledged{Acknowledged: true, ShardsAcknowledged: true, Index: name})
}

// deleteIndex DELETE /{index}
func (c *Cluster) deleteIndex(w http.ResponseWriter, r *http.Request) {
	name := pathVar(r, "index")
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.indices[name]; !ok {
		writeIndexMissing(w, name)
		return
	}
	delete(c.indices, name)
	respond.WriteJSON(w, http.StatusOK, client.Acknowledged{Acknowledged: true})
}

// putDoc PUT /{index}/_doc/{id}. Creates the index on first write like a
// cluster with auto-create enabled.
func (c *Cluster) putDoc(w http.ResponseWriter, r *http.Request) {
	name, id := pathVar(r, "index"), pathVar(r, "id")
	var doc map[string]any
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respond.WriteClusterError(w, http.StatusBadRequest, "mapper_parsing_exception", "failed to parse")
		return
	}
	raw, _ := json.Marshal(doc)

	c.mu.Lock()
	defer c.mu.Unlock()
	idx, ok := c.indices[name]
	if !ok {
		idx = &fakeIndex{uuid: strings.ReplaceAll(uuid.NewString(), "-", "")[:22], docs: make(map[string]json.RawMessage)}
		c.indices[name] = idx
	}
	result, status := "created", http.StatusCreated
	if _, exists := idx.docs[id]; exists {
		result, status = "updated", http.StatusOK
	}
	idx.docs[id] = raw
	respond.WriteJSON(w, status, map[string]any{"_index": name, "_id": id, "result": result})
}

// search GET /{index}/_search?q=
func (c *Cluster) search(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := pathVar(r, "index")
	terms := parseQuery(r.URL.Query().Get("q"))

	c.mu.RLock()
	idx, ok := c.indices[name]
	if !ok {
		c.mu.RUnlock()
		writeIndexMissing(w, name)
		return
	}
	ids := make([]string, 0, len(idx.docs))
	for id := range idx.docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	hits := make([]client.SearchHit, 0)
	for _, id := range ids {
		var doc map[string]any
		if err := json.Unmarshal(idx.docs[id], &doc); err != nil || !terms.match(doc) {
			continue
		}
		score := 1.0
		hits = append(hits, client.SearchHit{Index: name, ID: id, Score: &score, Source: idx.docs[id]})
	}
	c.mu.RUnlock()

	var res client.SearchResult
	res.Took = int(time.Since(start).Milliseconds())
	res.Shards.Total, res.Shards.Successful = 1, 1
	res.Hits.Total.Value = int64(len(hits))
	res.Hits.Total.Relation = "eq"
	res.Hits.Hits = hits
	if len(hits) > 0 {
		maxScore := 1.0
		res.Hits.MaxScore = &maxScore
	}
	respond.WriteJSON(w, http.StatusOK, res)
}

func writeIndexMissing(w http.ResponseWriter, name string) {
	respond.WriteClusterError(w, http.StatusNotFound, "index_not_found_exception",
		fmt.Sprintf("no such index [%s]", name))
}

// invalidIndexName returns why name is rejected, or "".
func invalidIndexName(name string) string {
	switch {
	case name == "" || name == "." || name == "..":
		return "must not be '.' or '..'"
	case strings.ToLower(name) != name:
		return "must be lowercase"
	case strings.ContainsAny(name[:1], "_-+"):
		return "must not start with '_', '-', or '+'"
	case strings.ContainsAny(name, `\/*?"<>| ,#:`):
		return `must not contain the following characters [ , ", *, \, <, |, ,, >, /, ?, #, :]`
	}
	return ""
}
