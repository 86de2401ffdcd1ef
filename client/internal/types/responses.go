package types

import "encoding/json"

// ------------------------------
// Search cluster responses
// ------------------------------

// Cluster health levels reported by _cluster/health.
const (
	HealthGreen  = "green"
	HealthYellow = "yellow"
	HealthRed    = "red"
)

// ClusterHealth mirrors the _cluster/health document.
type ClusterHealth struct {
	ClusterName                 string  `json:"cluster_name"`
	Status                      string  `json:"status"`
	TimedOut                    bool    `json:"timed_out"`
	NumberOfNodes               int     `json:"number_of_nodes"`
	NumberOfDataNodes           int     `json:"number_of_data_nodes"`
	ActivePrimaryShards         int     `json:"active_primary_shards"`
	ActiveShards                int     `json:"active_shards"`
	RelocatingShards            int     `json:"relocating_shards"`
	InitializingShards          int     `json:"initializing_shards"`
	UnassignedShards            int     `json:"unassigned_shards"`
	DelayedUnassignedShards     int     `json:"delayed_unassigned_shards"`
	NumberOfPendingTasks        int     `json:"number_of_pending_tasks"`
	NumberOfInFlightFetch       int     `json:"number_of_in_flight_fetch"`
	TaskMaxWaitingInQueueMillis int64   `json:"task_max_waiting_in_queue_millis"`
	ActiveShardsPercent         float64 `json:"active_shards_percent_as_number"`
}

// IndexInfo is one row of the _cat/indices table. Values are kept as the
// cluster printed them.
type IndexInfo struct {
	Health       string `json:"health"`
	Status       string `json:"status"`
	Index        string `json:"index"`
	UUID         string `json:"uuid"`
	Primaries    string `json:"pri"`
	Replicas     string `json:"rep"`
	DocsCount    string `json:"docs.count"`
	DocsDeleted  string `json:"docs.deleted"`
	StoreSize    string `json:"store.size"`
	PriStoreSize string `json:"pri.store.size"`
}

// IndexList wraps the verbose _cat/indices reply: the table as returned and
// its rows split by the header line.
type IndexList struct {
	Raw     string      `json:"raw"`
	Indices []IndexInfo `json:"indices"`
}

// Acknowledged is the reply to index create and delete calls.
type Acknowledged struct {
	Acknowledged       bool   `json:"acknowledged"`
	ShardsAcknowledged bool   `json:"shards_acknowledged,omitempty"`
	Index              string `json:"index,omitempty"`
}

// ShardStats summarises shard participation in a search.
type ShardStats struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
}

// TotalHits is the hit count block of a search reply.
type TotalHits struct {
	Value    int64  `json:"value"`
	Relation string `json:"relation"`
}

// SearchHit is a single matching document; Source is left undecoded.
type SearchHit struct {
	Index  string          `json:"_index"`
	ID     string          `json:"_id"`
	Score  *float64        `json:"_score"`
	Source json.RawMessage `json:"_source,omitempty"`
}

// Hits is the hits block of a search reply.
type Hits struct {
	Total    TotalHits   `json:"total"`
	MaxScore *float64    `json:"max_score"`
	Hits     []SearchHit `json:"hits"`
}

// SearchResult mirrors the _search reply.
type SearchResult struct {
	Took     int        `json:"took"`
	TimedOut bool       `json:"timed_out"`
	Shards   ShardStats `json:"_shards"`
	Hits     Hits       `json:"hits"`
}
