package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/searchplatform/searchadmin/internal/fakeadmin"
)

func newServeFakeCmd() *cobra.Command {
	var backendAddr, clusterAddr string
	cmd := &cobra.Command{
		Use:   "serve-fake",
		Short: "Run in-memory stand-ins for the backend and the cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return fakeadmin.Run(ctx, backendAddr, clusterAddr)
		},
	}
	cmd.Flags().StringVar(&backendAddr, "backend-addr", ":8080", "Listen address of the fake backend")
	cmd.Flags().StringVar(&clusterAddr, "cluster-addr", ":9200", "Listen address of the fake cluster")
	return cmd
}
