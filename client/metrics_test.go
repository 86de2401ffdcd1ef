package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountedPerTarget(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if r.URL.Host == "cluster.metrics" {
			return jsonReply(http.StatusNotFound, `{"error":"no such index"}`), nil
		}
		return jsonReply(http.StatusOK, `[]`), nil
	})
	c, err := New("http://backend.metrics", WithTransport(rt), WithClusterURL("http://cluster.metrics"))
	require.NoError(t, err)

	backendOK := requestsTotal.WithLabelValues(targetBackend, "200", "get")
	clusterMissing := requestsTotal.WithLabelValues(targetCluster, "404", "delete")
	beforeOK := testutil.ToFloat64(backendOK)
	beforeMissing := testutil.ToFloat64(clusterMissing)

	ctx := context.Background()
	_, err = c.Sources.List(ctx)
	require.NoError(t, err)
	_, err = c.Objects.List(ctx)
	require.NoError(t, err)
	_, err = c.Cluster.DeleteIndex(ctx, "gone")
	require.True(t, IsNotFound(err))

	assert.Equal(t, beforeOK+2, testutil.ToFloat64(backendOK))
	assert.Equal(t, beforeMissing+1, testutil.ToFloat64(clusterMissing))
	assert.Zero(t, testutil.ToFloat64(requestsInFlight.WithLabelValues(targetBackend)))
}
