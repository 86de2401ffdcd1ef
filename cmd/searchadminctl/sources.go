package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/searchplatform/searchadmin/client"
)

func newSourcesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sources",
		Aliases: []string{"source", "src"},
		Short:   "Manage data sources on the backend",
	}
	cmd.AddCommand(newListSourcesCmd())
	cmd.AddCommand(newGetSourceCmd())
	cmd.AddCommand(newCreateSourceCmd())
	cmd.AddCommand(newUpdateSourceCmd())
	cmd.AddCommand(newDeleteSourceCmd())
	return cmd
}

func newListSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List data sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "list sources", func(ctx context.Context, c *client.Client) error {
				list, err := c.Sources.List(ctx)
				if err != nil {
					return err
				}
				log.Debug().Int("count", len(list)).Msg("sources listed")
				return printResult(cmd, list)
			})
		},
	}
}

func newGetSourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get SOURCE_ID",
		Short: "Show one data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "get source", func(ctx context.Context, c *client.Client) error {
				src, err := c.Sources.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return printResult(cmd, src)
			})
		},
	}
}

// sourceFlags collects a source from --file and individual flags; flags win.
type sourceFlags struct {
	file       string
	id         string
	sourceType string
	connection string
	properties map[string]string
}

func (f *sourceFlags) register(cmd *cobra.Command, withID bool) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "JSON or YAML source document (- for stdin)")
	if withID {
		cmd.Flags().StringVar(&f.id, "id", "", "Source ID (generated when omitted)")
	}
	cmd.Flags().StringVar(&f.sourceType, "type", "", "Source type: MYSQL|POSTGRESQL|ORACLE|FILE")
	cmd.Flags().StringVar(&f.connection, "connection", "", "Connection string")
	cmd.Flags().StringToStringVar(&f.properties, "property", nil, "Connection property key=value (repeatable)")
}

func (f *sourceFlags) build(cmd *cobra.Command) (client.Source, error) {
	var src client.Source
	if f.file != "" {
		if err := readPayload(cmd, f.file, &src); err != nil {
			return src, err
		}
	}
	if f.id != "" {
		src.SourceID = f.id
	}
	if f.sourceType != "" {
		src.SourceType = client.SourceType(f.sourceType)
	}
	if f.connection != "" {
		src.Connection = f.connection
	}
	if len(f.properties) > 0 {
		if src.Properties == nil {
			src.Properties = make(map[string]string, len(f.properties))
		}
		for k, v := range f.properties {
			src.Properties[k] = v
		}
	}
	return src, nil
}

func newCreateSourceCmd() *cobra.Command {
	var f sourceFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a data source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := f.build(cmd)
			if err != nil {
				return err
			}
			if src.SourceID == "" {
				src.SourceID = uuid.NewString()
				log.Debug().Str("source_id", src.SourceID).Msg("generated source id")
			}
			return withClient(cmd, "create source", func(ctx context.Context, c *client.Client) error {
				created, err := c.Sources.Create(ctx, src)
				if err != nil {
					return err
				}
				return printResult(cmd, created)
			})
		},
	}
	f.register(cmd, true)
	return cmd
}

func newUpdateSourceCmd() *cobra.Command {
	var f sourceFlags
	cmd := &cobra.Command{
		Use:   "update SOURCE_ID",
		Short: "Replace a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := f.build(cmd)
			if err != nil {
				return err
			}
			if src.SourceID == "" {
				src.SourceID = args[0]
			}
			return withClient(cmd, "update source", func(ctx context.Context, c *client.Client) error {
				updated, err := c.Sources.Update(ctx, args[0], src)
				if err != nil {
					return err
				}
				return printResult(cmd, updated)
			})
		},
	}
	f.register(cmd, false)
	return cmd
}

func newDeleteSourceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete SOURCE_ID",
		Short: "Delete a data source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "delete source", func(ctx context.Context, c *client.Client) error {
				if err := c.Sources.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Source deleted: %s\n", args[0])
				return err
			})
		},
	}
}
