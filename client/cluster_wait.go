package client

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"

	apierrors "github.com/searchplatform/searchadmin/client/internal/errors"
)

const (
	defaultPollInterval = 250 * time.Millisecond
	maxPollInterval     = 5 * time.Second
)

var healthRank = map[string]int{
	HealthRed:    0,
	HealthYellow: 1,
	HealthGreen:  2,
}

// WaitForStatus polls cluster health until it reaches at least status
// ("green" beats "yellow" beats "red") and returns the last health document.
//
// Polling backs off exponentially and is bounded only by ctx. Transport
// failures and recoverable replies are polled through; an irrecoverable
// reply ends the wait with that error.
func (s *ClusterService) WaitForStatus(ctx context.Context, status string) (*ClusterHealth, error) {
	want, ok := healthRank[status]
	if !ok {
		return nil, fmt.Errorf("wait for status: unknown cluster status %q", status)
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = s.pollInterval
	exp.Multiplier = 2
	exp.MaxInterval = maxPollInterval
	exp.MaxElapsedTime = 0
	exp.Reset()

	var lastErr error
	for {
		h, err := s.Health(ctx)
		switch {
		case err == nil:
			if rank, known := healthRank[h.Status]; known && rank >= want {
				return h, nil
			}
			lastErr = fmt.Errorf("cluster status is %q", h.Status)
		case apierrors.IsIrrecoverable(err):
			return nil, err
		default:
			lastErr = err
		}

		select {
		case <-time.After(exp.NextBackOff()):
		case <-ctx.Done():
			return nil, fmt.Errorf("wait for status %q: %w (last: %v)", status, ctx.Err(), lastErr)
		}
	}
}
