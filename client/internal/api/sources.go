package api

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/searchplatform/searchadmin/client/internal/types"
)

// ListSources returns all data sources.
func ListSources(ctx context.Context, rc *resty.Client) ([]types.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []types.Source
	if err := send(ctx, rc.R(), http.MethodGet, "/sources", "list sources", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetSource retrieves a data source by ID.
func GetSource(ctx context.Context, rc *resty.Client, sourceID string) (*types.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := rc.R().SetPathParam("sourceId", sourceID)
	var src types.Source
	if err := send(ctx, req, http.MethodGet, "/sources/{sourceId}", "get source", &src); err != nil {
		return nil, err
	}
	return &src, nil
}

// CreateSource submits a new data source. The payload is sent as given;
// the backend is the validation authority.
func CreateSource(ctx context.Context, rc *resty.Client, src types.Source) (*types.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var created types.Source
	if err := send(ctx, jsonRequest(rc, src), http.MethodPost, "/sources", "create source", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSource replaces the data source stored under sourceID.
func UpdateSource(ctx context.Context, rc *resty.Client, sourceID string, src types.Source) (*types.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	req := jsonRequest(rc, src).SetPathParam("sourceId", sourceID)
	var updated types.Source
	if err := send(ctx, req, http.MethodPut, "/sources/{sourceId}", "update source", &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSource removes a data source. Backend returns 204 No Content on success.
func DeleteSource(ctx context.Context, rc *resty.Client, sourceID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	req := rc.R().SetPathParam("sourceId", sourceID)
	return send(ctx, req, http.MethodDelete, "/sources/{sourceId}", "delete source", nil)
}
