package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client"
)

const (
	defaultWaitSeconds = 30
	maxWaitSeconds     = 300
)

// ClusterHandler exposes the search cluster tools and mapping generation.
type ClusterHandler struct {
	client *client.Client
}

func NewClusterHandler(c *client.Client) *ClusterHandler { return &ClusterHandler{client: c} }

func (ch *ClusterHandler) RegisterTools(s *server.MCPServer) error {
	health := mcp.NewTool("cluster_health",
		mcp.WithDescription("Search cluster health (status green|yellow|red plus shard counters)"),
	)
	indices := mcp.NewTool("list_indices",
		mcp.WithDescription("List indices: the cluster's verbose _cat/indices table plus parsed rows"),
	)
	create := mcp.NewTool("create_index",
		mcp.WithDescription("Create an index. Give either body (settings/mappings) or object_id to derive the mapping from a search object; neither creates a default index."),
		mcp.WithString("index", mcp.Required(), mcp.Description("Index name (lowercase)")),
		mcp.WithObject("body", mcp.Description(`Index body, e.g. {"mappings":{"properties":{...}}}`)),
		mcp.WithString("object_id", mcp.Description("Backend search object to generate the mapping from")),
	)
	del := mcp.NewTool("delete_index",
		mcp.WithDescription("Delete an index"),
		mcp.WithString("index", mcp.Required(), mcp.Description("Index name")),
	)
	search := mcp.NewTool("search_index",
		mcp.WithDescription("Query-string search (Lucene syntax, e.g. level:error AND host:a)"),
		mcp.WithString("index", mcp.Required(), mcp.Description("Index name")),
		mcp.WithString("query", mcp.Required(), mcp.Description("Query string")),
	)
	wait := mcp.NewTool("wait_for_status",
		mcp.WithDescription("Poll cluster health until it reaches at least the given status"),
		mcp.WithString("status", mcp.Description("green|yellow|red (default yellow)")),
		mcp.WithNumber("timeout_seconds", mcp.Description("Give up after this many seconds (clamped to 1-300, default 30)")),
	)
	mapping := mcp.NewTool("generate_mapping",
		mcp.WithDescription("Derive an OpenSearch mapping from a search object's fields without touching the cluster"),
		mcp.WithObject("object", mcp.Description("Search object document")),
		mcp.WithString("object_id", mcp.Description("Fetch the search object from the backend instead")),
	)
	s.AddTool(health, ch.handleHealth)
	s.AddTool(indices, ch.handleIndices)
	s.AddTool(create, ch.handleCreateIndex)
	s.AddTool(del, ch.handleDeleteIndex)
	s.AddTool(search, ch.handleSearch)
	s.AddTool(wait, ch.handleWait)
	s.AddTool(mapping, ch.handleGenerateMapping)
	return nil
}

func (ch *ClusterHandler) handleHealth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h, err := ch.client.Cluster.Health(ctx)
	if err != nil {
		return toolError("cluster_health", err), nil
	}
	return jsonResult(h)
}

func (ch *ClusterHandler) handleIndices(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := ch.client.Cluster.Indices(ctx)
	if err != nil {
		return toolError("list_indices", err), nil
	}
	return jsonResult(list)
}

func (ch *ClusterHandler) handleCreateIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := req.RequireString("index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectID := optionalString(req, "object_id")

	var body map[string]any
	hasBody, err := decodeArg(req, "body", &body)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if hasBody && objectID != "" {
		return mcp.NewToolResultError("body and object_id are mutually exclusive"), nil
	}

	log.Debug().Str("index", index).Str("object_id", objectID).Bool("body", hasBody).Msg("create_index invoked")

	var ack *client.Acknowledged
	switch {
	case objectID != "":
		obj, gerr := ch.client.Objects.Get(ctx, objectID)
		if gerr != nil {
			return toolError("create_index", gerr), nil
		}
		ack, err = ch.client.Cluster.CreateIndexForObject(ctx, index, *obj)
	case hasBody:
		ack, err = ch.client.Cluster.CreateIndex(ctx, index, body)
	default:
		ack, err = ch.client.Cluster.CreateIndex(ctx, index, nil)
	}
	if err != nil {
		return toolError("create_index", err), nil
	}
	return jsonResult(ack)
}

func (ch *ClusterHandler) handleDeleteIndex(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := req.RequireString("index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ack, err := ch.client.Cluster.DeleteIndex(ctx, index)
	if err != nil {
		return toolError("delete_index", err), nil
	}
	return jsonResult(ack)
}

func (ch *ClusterHandler) handleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := req.RequireString("index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	res, err := ch.client.Cluster.Search(ctx, index, query)
	if err != nil {
		return toolError("search_index", err), nil
	}
	log.Debug().Str("index", index).Int64("hits", res.Hits.Total.Value).Dur("elapsed", time.Since(start)).Msg("search_index completed")
	return jsonResult(res)
}

func (ch *ClusterHandler) handleWait(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	status := optionalString(req, "status")
	if status == "" {
		status = client.HealthYellow
	}
	ctx, cancel := context.WithTimeout(ctx, waitTimeout(req))
	defer cancel()
	h, err := ch.client.Cluster.WaitForStatus(ctx, status)
	if err != nil {
		return toolError("wait_for_status", err), nil
	}
	return jsonResult(h)
}

// waitTimeout reads timeout_seconds, clamped to [1, maxWaitSeconds].
// Absent or non-positive values mean the default.
func waitTimeout(req mcp.CallToolRequest) time.Duration {
	v, ok := req.GetArguments()["timeout_seconds"].(float64)
	switch {
	case !ok || v <= 0:
		return defaultWaitSeconds * time.Second
	case v < 1:
		return time.Second
	case v > maxWaitSeconds:
		return maxWaitSeconds * time.Second
	}
	return time.Duration(v * float64(time.Second))
}

func (ch *ClusterHandler) handleGenerateMapping(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var obj client.SearchObject
	hasObj, err := decodeArg(req, "object", &obj)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	objectID := optionalString(req, "object_id")
	if hasObj == (objectID != "") {
		return mcp.NewToolResultError("exactly one of object or object_id is required"), nil
	}
	if objectID != "" {
		got, err := ch.client.Objects.Get(ctx, objectID)
		if err != nil {
			return toolError("generate_mapping", err), nil
		}
		obj = *got
	}
	m, err := client.GenerateMapping(obj)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generate_mapping failed: %v", err)), nil
	}
	return jsonResult(m.IndexBody())
}
