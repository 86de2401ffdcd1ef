package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/searchplatform/searchadmin/client/internal/types"
)

// ClusterHealth reads GET /_cluster/health.
func ClusterHealth(ctx context.Context, rc *resty.Client) (*types.ClusterHealth, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var h types.ClusterHealth
	if err := send(ctx, rc.R(), http.MethodGet, "/_cluster/health", "cluster health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ListIndices reads the verbose text table at GET /_cat/indices?v.
func ListIndices(ctx context.Context, rc *resty.Client) (*types.IndexList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// _cat answers in JSON when asked to; the verbose table is what callers get.
	req := rc.R().SetHeader("Accept", "text/plain")
	body, err := execute(ctx, req, http.MethodGet, "/_cat/indices?v", "list indices")
	if err != nil {
		return nil, err
	}
	raw := string(body)
	return &types.IndexList{Raw: raw, Indices: ParseCatIndices(raw)}, nil
}

// CreateIndex issues PUT /{index} with mapping as the JSON body, unmodified.
// A nil mapping sends no body.
func CreateIndex(ctx context.Context, rc *resty.Client, index string, mapping any) (*types.Acknowledged, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := rc.R()
	if mapping != nil {
		req = jsonRequest(rc, mapping)
	}
	req.SetPathParam("index", index)
	var ack types.Acknowledged
	if err := send(ctx, req, http.MethodPut, "/{index}", "create index", &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// DeleteIndex issues DELETE /{index}.
func DeleteIndex(ctx context.Context, rc *resty.Client, index string) (*types.Acknowledged, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := rc.R().SetPathParam("index", index)
	var ack types.Acknowledged
	if err := send(ctx, req, http.MethodDelete, "/{index}", "delete index", &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// Search runs a query-string search: GET /{index}/_search?q={query}.
func Search(ctx context.Context, rc *resty.Client, index, query string) (*types.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := rc.R().
		SetPathParam("index", index).
		SetQueryParam("q", query)
	var sr types.SearchResult
	if err := send(ctx, req, http.MethodGet, "/{index}/_search", "search", &sr); err != nil {
		return nil, err
	}
	return &sr, nil
}

// ParseCatIndices splits a verbose _cat/indices table into rows keyed by its
// header line. A row with fewer cells than the header fills only its
// leading columns.
func ParseCatIndices(table string) []types.IndexInfo {
	lines := strings.Split(strings.TrimSpace(table), "\n")
	if len(lines) < 2 {
		return []types.IndexInfo{}
	}
	header := strings.Fields(lines[0])
	out := make([]types.IndexInfo, 0, len(lines)-1)
	for _, line := range lines[1:] {
		cols := strings.Fields(line)
		if len(cols) == 0 {
			continue
		}
		var info types.IndexInfo
		for i, name := range header {
			if i >= len(cols) {
				break
			}
			setCatColumn(&info, name, cols[i])
		}
		out = append(out, info)
	}
	return out
}

func setCatColumn(info *types.IndexInfo, name, value string) {
	switch name {
	case "health":
		info.Health = value
	case "status":
		info.Status = value
	case "index":
		info.Index = value
	case "uuid":
		info.UUID = value
	case "pri":
		info.Primaries = value
	case "rep":
		info.Replicas = value
	case "docs.count":
		info.DocsCount = value
	case "docs.deleted":
		info.DocsDeleted = value
	case "store.size":
		info.StoreSize = value
	case "pri.store.size":
		info.PriStoreSize = value
	}
}
