package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/searchplatform/searchadmin/client"
)

func newClusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Talk to the search cluster directly",
	}
	cmd.AddCommand(newHealthCmd())
	cmd.AddCommand(newIndicesCmd())
	cmd.AddCommand(newCreateIndexCmd())
	cmd.AddCommand(newDeleteIndexCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newWaitCmd())
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show cluster health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "cluster health", func(ctx context.Context, c *client.Client) error {
				h, err := c.Cluster.Health(ctx)
				if err != nil {
					return err
				}
				return printResult(cmd, h)
			})
		},
	}
}

func newIndicesCmd() *cobra.Command {
	var parsed bool
	cmd := &cobra.Command{
		Use:   "indices",
		Short: "List indices (the cluster's verbose table unless --parsed)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "list indices", func(ctx context.Context, c *client.Client) error {
				list, err := c.Cluster.Indices(ctx)
				if err != nil {
					return err
				}
				if parsed {
					return printResult(cmd, list.Indices)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), list.Raw)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&parsed, "parsed", false, "Print rows in the selected output format")
	return cmd
}

func newCreateIndexCmd() *cobra.Command {
	var file, objectID string
	cmd := &cobra.Command{
		Use:   "create-index INDEX",
		Short: "Create an index from a mapping file or a search object's fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" && objectID != "" {
				return fmt.Errorf("--file and --object are mutually exclusive")
			}
			var body any
			if file != "" {
				var m map[string]any
				if err := readPayload(cmd, file, &m); err != nil {
					return err
				}
				body = m
			}
			return withClient(cmd, "create index", func(ctx context.Context, c *client.Client) error {
				var (
					ack *client.Acknowledged
					err error
				)
				if objectID != "" {
					obj, gerr := c.Objects.Get(ctx, objectID)
					if gerr != nil {
						return gerr
					}
					ack, err = c.Cluster.CreateIndexForObject(ctx, args[0], *obj)
				} else {
					ack, err = c.Cluster.CreateIndex(ctx, args[0], body)
				}
				if err != nil {
					return err
				}
				return printResult(cmd, ack)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML index body, e.g. {mappings: ...} (- for stdin)")
	cmd.Flags().StringVar(&objectID, "object", "", "Generate the mapping from this backend search object")
	return cmd
}

func newDeleteIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-index INDEX",
		Short: "Delete an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "delete index", func(ctx context.Context, c *client.Client) error {
				ack, err := c.Cluster.DeleteIndex(ctx, args[0])
				if err != nil {
					return err
				}
				return printResult(cmd, ack)
			})
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search INDEX QUERY",
		Short: "Run a query-string search",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "search", func(ctx context.Context, c *client.Client) error {
				res, err := c.Cluster.Search(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				log.Debug().Str("index", args[0]).Int64("hits", res.Hits.Total.Value).Int("took_ms", res.Took).Msg("search done")
				return printResult(cmd, res)
			})
		},
	}
}

func newWaitCmd() *cobra.Command {
	var (
		status  string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Block until the cluster reaches a health status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			start := time.Now()
			h, err := c.Cluster.WaitForStatus(ctx, status)
			if err != nil {
				log.Debug().Str("status", status).Dur("elapsed", time.Since(start)).Msg("wait for status gave up")
				return err
			}
			log.Debug().Str("status", h.Status).Dur("elapsed", time.Since(start)).Msg("cluster ready")
			return printResult(cmd, h)
		},
	}
	cmd.Flags().StringVar(&status, "status", client.HealthYellow, "Minimum status: green|yellow|red")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "Give up after this long")
	return cmd
}
