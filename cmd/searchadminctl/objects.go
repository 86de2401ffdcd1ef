package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/searchplatform/searchadmin/client"
)

func newObjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objects",
		Aliases: []string{"object", "obj"},
		Short:   "Manage search objects on the backend",
	}
	cmd.AddCommand(newListObjectsCmd())
	cmd.AddCommand(newGetObjectCmd())
	cmd.AddCommand(newCreateObjectCmd())
	cmd.AddCommand(newUpdateObjectCmd())
	cmd.AddCommand(newDeleteObjectCmd())
	return cmd
}

func newListObjectsCmd() *cobra.Command {
	var appKey string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List search objects, optionally for one app key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "list objects", func(ctx context.Context, c *client.Client) error {
				var (
					list []client.SearchObject
					err  error
				)
				if appKey != "" {
					list, err = c.Objects.ListByAppKey(ctx, appKey)
				} else {
					list, err = c.Objects.List(ctx)
				}
				if err != nil {
					return err
				}
				log.Debug().Str("app_key", appKey).Int("count", len(list)).Msg("objects listed")
				return printResult(cmd, list)
			})
		},
	}
	cmd.Flags().StringVar(&appKey, "app-key", "", "Only objects registered for this application key")
	return cmd
}

func newGetObjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get OBJECT_ID",
		Short: "Show one search object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "get object", func(ctx context.Context, c *client.Client) error {
				obj, err := c.Objects.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return printResult(cmd, obj)
			})
		},
	}
}

type objectFlags struct {
	file       string
	id         string
	sourceID   string
	table      string
	primaryKey string
	appKey     string
}

func (f *objectFlags) register(cmd *cobra.Command, withID bool) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "JSON or YAML search object document (- for stdin)")
	if withID {
		cmd.Flags().StringVar(&f.id, "id", "", "Object ID (generated when omitted)")
	}
	cmd.Flags().StringVar(&f.sourceID, "source-id", "", "Data source the object reads from")
	cmd.Flags().StringVar(&f.table, "table", "", "Source table")
	cmd.Flags().StringVar(&f.primaryKey, "primary-key", "", "Primary key column")
	cmd.Flags().StringVar(&f.appKey, "app-key", "", "Application key")
}

func (f *objectFlags) build(cmd *cobra.Command) (client.SearchObject, error) {
	var obj client.SearchObject
	if f.file != "" {
		if err := readPayload(cmd, f.file, &obj); err != nil {
			return obj, err
		}
	}
	setIf(&obj.ObjectID, f.id)
	setIf(&obj.SourceID, f.sourceID)
	setIf(&obj.Table, f.table)
	setIf(&obj.PrimaryKey, f.primaryKey)
	setIf(&obj.AppKey, f.appKey)
	return obj, nil
}

// setIf overwrites *dst with v unless v is empty.
func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func newCreateObjectCmd() *cobra.Command {
	var f objectFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a search object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := f.build(cmd)
			if err != nil {
				return err
			}
			if obj.ObjectID == "" {
				obj.ObjectID = uuid.NewString()
				log.Debug().Str("object_id", obj.ObjectID).Msg("generated object id")
			}
			return withClient(cmd, "create object", func(ctx context.Context, c *client.Client) error {
				created, err := c.Objects.Create(ctx, obj)
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

func newUpdateObjectCmd() *cobra.Command {
	var f objectFlags
	cmd := &cobra.Command{
		Use:   "update OBJECT_ID",
		Short: "Replace a search object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := f.build(cmd)
			if err != nil {
				return err
			}
			if obj.ObjectID == "" {
				obj.ObjectID = args[0]
			}
			return withClient(cmd, "update object", func(ctx context.Context, c *client.Client) error {
				updated, err := c.Objects.Update(ctx, args[0], obj)
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

func newDeleteObjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete OBJECT_ID",
		Short: "Delete a search object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd, "delete object", func(ctx context.Context, c *client.Client) error {
				if err := c.Objects.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Object deleted: %s\n", args[0])
				return err
			})
		},
	}
}
