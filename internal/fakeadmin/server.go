package fakeadmin

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Run serves a fresh Backend on backendAddr and a fresh Cluster on
// clusterAddr until ctx is done.
func Run(ctx context.Context, backendAddr, clusterAddr string) error {
	backend, cluster := NewBackend(), NewCluster()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() { errCh <- serve(ctx, "backend", backendAddr, backend.Handler()) }()
	go func() { errCh <- serve(ctx, "cluster", clusterAddr, cluster.Handler()) }()

	// The first failure stops the other server.
	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			cancel()
		}
	}
	return firstErr
}

func serve(ctx context.Context, name, addr string, h http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Str("service", name).Msg("Error during fake server shutdown")
		}
	}()

	log.Info().Str("service", name).Str("addr", ln.Addr().String()).Msg("Fake server listening")
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
