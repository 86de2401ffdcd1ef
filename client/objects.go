package client

import (
	"context"

	"github.com/go-resty/resty/v2"

	"github.com/searchplatform/searchadmin/client/internal/api"
)

// ObjectService manages search objects on the backend.
type ObjectService struct {
	rc *resty.Client
}

func (s *ObjectService) List(ctx context.Context) ([]SearchObject, error) {
	return api.ListObjects(ctx, s.rc)
}

// ListByAppKey returns the search objects registered for one application.
func (s *ObjectService) ListByAppKey(ctx context.Context, appKey string) ([]SearchObject, error) {
	return api.ListObjectsByAppKey(ctx, s.rc, appKey)
}

func (s *ObjectService) Get(ctx context.Context, id string) (*SearchObject, error) {
	return api.GetObject(ctx, s.rc, id)
}

func (s *ObjectService) Create(ctx context.Context, obj SearchObject) (*SearchObject, error) {
	return api.CreateObject(ctx, s.rc, obj)
}

func (s *ObjectService) Update(ctx context.Context, id string, obj SearchObject) (*SearchObject, error) {
	return api.UpdateObject(ctx, s.rc, id, obj)
}

func (s *ObjectService) Delete(ctx context.Context, id string) error {
	return api.DeleteObject(ctx, s.rc, id)
}
