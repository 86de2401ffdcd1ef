package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/searchplatform/searchadmin/client/internal/api"
)

// ClusterService talks to the search cluster directly, bypassing the
// backend.
type ClusterService struct {
	rc           *resty.Client
	pollInterval time.Duration
}

// Health returns the _cluster/health document.
func (s *ClusterService) Health(ctx context.Context) (*ClusterHealth, error) {
	return api.ClusterHealth(ctx, s.rc)
}

// Indices returns the verbose _cat/indices table, raw and split into rows.
func (s *ClusterService) Indices(ctx context.Context) (*IndexList, error) {
	return api.ListIndices(ctx, s.rc)
}

// CreateIndex creates index with mapping as the request body. The body is
// encoded as given; pass nil to create an index with cluster defaults.
func (s *ClusterService) CreateIndex(ctx context.Context, index string, mapping any) (*Acknowledged, error) {
	return api.CreateIndex(ctx, s.rc, index, mapping)
}

func (s *ClusterService) DeleteIndex(ctx context.Context, index string) (*Acknowledged, error) {
	return api.DeleteIndex(ctx, s.rc, index)
}

// Search runs a query-string search against index.
func (s *ClusterService) Search(ctx context.Context, index, query string) (*SearchResult, error) {
	return api.Search(ctx, s.rc, index, query)
}

// CreateIndexForObject creates index with the mapping generated from obj.
func (s *ClusterService) CreateIndexForObject(ctx context.Context, index string, obj SearchObject) (*Acknowledged, error) {
	m, err := GenerateMapping(obj)
	if err != nil {
		return nil, fmt.Errorf("create index for object %q: %w", obj.ObjectID, err)
	}
	return s.CreateIndex(ctx, index, m.IndexBody())
}
