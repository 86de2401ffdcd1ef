package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	apierrors "github.com/searchplatform/searchadmin/client/internal/errors"
)

// Base path of the versioned backend REST API.
const BasePath = "/api/v1"

// send issues exactly one request and decodes a 2xx JSON body into out when
// out is non-nil. Non-2xx replies become *errors.HTTPError.
func send(ctx context.Context, req *resty.Request, method, path, op string, out any) error {
	body, err := execute(ctx, req, method, path, op)
	if err != nil {
		return err
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// execute issues the request and returns the raw body of a 2xx reply.
func execute(ctx context.Context, req *resty.Request, method, path, op string) ([]byte, error) {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !resp.IsSuccess() {
		return nil, apierrors.NewHTTPError(op, method, resp.Request.URL, resp.StatusCode(), resp.Body())
	}
	return resp.Body(), nil
}

// jsonRequest returns a request carrying body as its JSON payload.
func jsonRequest(rc *resty.Client, body any) *resty.Request {
	return rc.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}
