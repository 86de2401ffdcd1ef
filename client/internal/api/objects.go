package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/searchplatform/searchadmin/client/internal/types"
)

// ListObjects returns all search objects.
func ListObjects(ctx context.Context, rc *resty.Client) ([]types.SearchObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []types.SearchObject
	if err := send(ctx, rc.R(), http.MethodGet, "/objects", "list objects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListObjectsByAppKey returns the search objects tagged with appKey. The
// filter is a query parameter on the list endpoint.
func ListObjectsByAppKey(ctx context.Context, rc *resty.Client, appKey string) ([]types.SearchObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := rc.R().SetQueryParam("appKey", appKey)
	var out []types.SearchObject
	if err := send(ctx, req, http.MethodGet, "/objects", "list objects by app key", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetObject retrieves a search object by ID.
func GetObject(ctx context.Context, rc *resty.Client, objectID string) (*types.SearchObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := rc.R().SetPathParam("objectId", objectID)
	var obj types.SearchObject
	if err := send(ctx, req, http.MethodGet, "/objects/{objectId}", "get object", &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// CreateObject submits a new search object.
func CreateObject(ctx context.Context, rc *resty.Client, obj types.SearchObject) (*types.SearchObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var created types.SearchObject
	if err := send(ctx, jsonRequest(rc, obj), http.MethodPost, "/objects", "create object", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateObject replaces the search object stored under objectID.
func UpdateObject(ctx context.Context, rc *resty.Client, objectID string, obj types.SearchObject) (*types.SearchObject, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := jsonRequest(rc, obj).SetPathParam("objectId", objectID)
	var updated types.SearchObject
	if err := send(ctx, req, http.MethodPut, "/objects/{objectId}", "update object", &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteObject removes a search object.
func DeleteObject(ctx context.Context, rc *resty.Client, objectID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := rc.R().SetPathParam("objectId", objectID)
	return send(ctx, req, http.MethodDelete, "/objects/{objectId}", "delete object", nil)
}
