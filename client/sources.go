package client

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/searchplatform/searchadmin/client/internal/api"
)

// SourceService manages data sources on the backend.
type SourceService struct {
	rc *resty.Client
}

// List returns every data source.
func (s *SourceService) List(ctx context.Context) ([]Source, error) {
	return api.ListSources(ctx, s.rc)
}

// Get returns the data source stored under id.
func (s *SourceService) Get(ctx context.Context, id string) (*Source, error) {
	return api.GetSource(ctx, s.rc, id)
}

// Create submits src unmodified and returns what the backend stored.
func (s *SourceService) Create(ctx context.Context, src Source) (*Source, error) {
	return api.CreateSource(ctx, s.rc, src)
}

// Update replaces the data source stored under id with src.
func (s *SourceService) Update(ctx context.Context, id string, src Source) (*Source, error) {
	return api.UpdateSource(ctx, s.rc, id, src)
}

// Delete removes the data source stored under id.
func (s *SourceService) Delete(ctx context.Context, id string) error {
	return api.DeleteSource(ctx, s.rc, id)
}
