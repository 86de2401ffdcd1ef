package fakeadmin

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchplatform/searchadmin/client"
)

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBackend_SourceCRUD(t *testing.T) {
	t.Parallel()
	h := NewBackend().Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/sources", `{"sourceId":"s1","sourceType":"MYSQL","connection":"jdbc:mysql://db"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"sourceId":"s1","sourceType":"MYSQL","connection":"jdbc:mysql://db"}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/sources/s1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/v1/sources/s1", `{"sourceId":"ignored","connection":"jdbc:mysql://other"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated client.Source
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "s1", updated.SourceID, "path id wins")
	assert.Equal(t, "jdbc:mysql://other", updated.Connection)

	rec = do(t, h, http.MethodGet, "/api/v1/sources", "")
	assert.JSONEq(t, `[{"sourceId":"s1","connection":"jdbc:mysql://other"}]`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/v1/sources/s1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/sources", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestBackend_SourceErrors(t *testing.T) {
	t.Parallel()
	h := NewBackend().Handler()

	cases := []struct {
		name, method, path, body string
		code                     int
	}{
		{"bad json", http.MethodPost, "/api/v1/sources", `{`, http.StatusBadRequest},
		{"empty id", http.MethodPost, "/api/v1/sources", `{"sourceType":"FILE"}`, http.StatusBadRequest},
		{"missing get", http.MethodGet, "/api/v1/sources/nope", "", http.StatusNotFound},
		{"missing update", http.MethodPut, "/api/v1/sources/nope", `{}`, http.StatusNotFound},
		{"missing delete", http.MethodDelete, "/api/v1/sources/nope", "", http.StatusNotFound},
		{"wrong method", http.MethodPatch, "/api/v1/sources/nope", "", http.StatusMethodNotAllowed},
	}
	for _, c := range cases {
		rec := do(t, h, c.method, c.path, c.body)
		assert.Equal(t, c.code, rec.Code, c.name)
	}

	require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/v1/sources", `{"sourceId":"dup"}`).Code)
	rec := do(t, h, http.MethodPost, "/api/v1/sources", `{"sourceId":"dup"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "already exists")
}

func TestBackend_ObjectsByAppKey(t *testing.T) {
	t.Parallel()
	h := NewBackend().Handler()

	for _, body := range []string{
		`{"objectId":"b","appKey":"shop"}`,
		`{"objectId":"a","appKey":"shop"}`,
		`{"objectId":"c","appKey":"blog"}`,
	} {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/api/v1/objects", body).Code)
	}

	var objs []client.SearchObject
	rec := do(t, h, http.MethodGet, "/api/v1/objects?appKey=shop", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &objs))
	require.Len(t, objs, 2)
	assert.Equal(t, "a", objs[0].ObjectID, "listed in id order")

	rec = do(t, h, http.MethodGet, "/api/v1/objects", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &objs))
	assert.Len(t, objs, 3)

	rec = do(t, h, http.MethodGet, "/api/v1/objects?appKey=none", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestBackend_ObjectCRUD(t *testing.T) {
	t.Parallel()
	h := NewBackend().Handler()

	rec := do(t, h, http.MethodPost, "/api/v1/objects", `{"objectId":"product","sourceId":"unknown","fields":[{"name":"title","type":"TEXT"}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/v1/objects/product", `{"appKey":"shop"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got client.SearchObject
	rec = do(t, h, http.MethodGet, "/api/v1/objects/product", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "product", got.ObjectID)
	assert.Equal(t, "shop", got.AppKey)
	assert.Empty(t, got.Fields, "update replaces the whole object")

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/v1/objects/product", "").Code)
	rec = do(t, h, http.MethodGet, "/api/v1/objects/product", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"SearchObject not found: product"`)
}

func TestRecoverMiddleware(t *testing.T) {
	t.Parallel()
	h := recoverMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }))
	rec := do(t, h, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error","code":500}`, rec.Body.String())
}
