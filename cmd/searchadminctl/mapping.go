package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/searchplatform/searchadmin/client"
)

func newMappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Work with index mappings",
	}
	cmd.AddCommand(newGenerateMappingCmd())
	return cmd
}

func newGenerateMappingCmd() *cobra.Command {
	var file, objectID string
	var wrap bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print the mapping generated from a search object",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (file == "") == (objectID == "") {
				return fmt.Errorf("exactly one of --file or --object is required")
			}
			var obj client.SearchObject
			if file != "" {
				if err := readPayload(cmd, file, &obj); err != nil {
					return err
				}
			} else {
				err := withClient(cmd, "get object", func(ctx context.Context, c *client.Client) error {
					got, err := c.Objects.Get(ctx, objectID)
					if err != nil {
						return err
					}
					obj = *got
					return nil
				})
				if err != nil {
					return err
				}
			}

			m, err := client.GenerateMapping(obj)
			if err != nil {
				return err
			}
			if wrap {
				return printResult(cmd, m.IndexBody())
			}
			return printResult(cmd, m)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON or YAML search object document (- for stdin)")
	cmd.Flags().StringVar(&objectID, "object", "", "Fetch the search object from the backend")
	cmd.Flags().BoolVar(&wrap, "index-body", false, `Wrap the mapping as {"mappings": ...}, ready for create-index`)
	return cmd
}
