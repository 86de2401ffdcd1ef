package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/searchplatform/searchadmin/client/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyStatus(t *testing.T) {
	t.Parallel()
	cases := []struct {
		code int
		want ErrorCategory
	}{
		{400, Irrecoverable}, {401, Irrecoverable}, {404, Irrecoverable},
		{408, Recoverable}, {429, Recoverable},
		{500, Recoverable}, {503, Recoverable}, {302, Recoverable},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyStatus(c.code), "status %d", c.code)
	}
}

func TestNewHTTPError_Messages(t *testing.T) {
	t.Parallel()
	backend := NewHTTPError("get source", "GET", "http://x/api/v1/sources/a", 404,
		[]byte(`{"error":"Not Found","code":404,"message":"source not found: a"}`))
	assert.Equal(t, "source not found: a", backend.Message)
	assert.Equal(t, Irrecoverable, backend.Category)
	assert.Contains(t, backend.Error(), "HTTP 404")

	cluster := NewHTTPError("create index", "PUT", "http://x/logs", 400,
		[]byte(`{"error":{"type":"resource_already_exists_exception","reason":"index [logs] already exists"},"status":400}`))
	assert.Equal(t, "resource_already_exists_exception: index [logs] already exists", cluster.Message)

	plain := NewHTTPError("list sources", "GET", "http://x", 502, []byte("bad gateway"))
	assert.Empty(t, plain.Message)
	assert.Equal(t, "bad gateway", plain.Body)
	assert.Equal(t, Recoverable, plain.Category)
}

func TestHTTPError_IsNotFound(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("wrapped: %w", NewHTTPError("get object", "GET", "u", 404, nil))
	require.True(t, stderrors.Is(err, types.ErrNotFound))

	other := NewHTTPError("get object", "GET", "u", 500, nil)
	require.False(t, stderrors.Is(other, types.ErrNotFound))
}

func TestIsIrrecoverable(t *testing.T) {
	t.Parallel()
	assert.True(t, IsIrrecoverable(NewHTTPError("op", "GET", "u", 403, nil)))
	assert.False(t, IsIrrecoverable(NewHTTPError("op", "GET", "u", 503, nil)))
	assert.False(t, IsIrrecoverable(stderrors.New("dial tcp: refused")))
	assert.Equal(t, "Unknown(7)", ErrorCategory(7).String())
}
