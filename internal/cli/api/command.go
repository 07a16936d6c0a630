package api

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halbind/halbind/config"
	"github.com/halbind/halbind/core"
	"github.com/halbind/halbind/faults"
	"github.com/halbind/halbind/internal/cli/common"
	"github.com/halbind/halbind/server"
)

func NewCommand(deps common.CommandDependencies, groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "api",
		GroupID: groupID,
		Short:   "Inspect raw API resources",
	}
	cmd.AddCommand(newGetCommand(deps))
	return cmd
}

func newGetCommand(deps common.CommandDependencies) *cobra.Command {
	var filterExpression string

	cmd := &cobra.Command{
		Use:   "get PATH",
		Short: "Fetch a resource by path or URL and print it as JSON",
		Example: `  # Fetch a group resource
  halbind api get /groups/markup

  # Extract one field with a jq filter
  halbind api get /groups/markup --filter '.name'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hal, err := core.NewHalbindContext(cmd.Context(), deps.Bootstrap, config.ContextSelection{
				Name: common.ContextName(cmd.Context()),
			})
			if err != nil {
				return err
			}

			resolved, err := hal.ResourceServer.ResolveURL(args[0])
			if err != nil {
				return err
			}
			value, err := hal.ResourceServer.Get(cmd.Context(), resolved)
			if err != nil {
				return err
			}

			if filterExpression != "" {
				valueFilter, ok := hal.ResourceServer.(server.ValueFilter)
				if !ok {
					return faults.NewTypedError(faults.InternalError, "resource server does not support jq filters", nil)
				}
				value, err = valueFilter.Filter(cmd.Context(), value, filterExpression)
				if err != nil {
					return err
				}
			}

			encoded, err := json.MarshalIndent(value, "", "  ")
			if err != nil {
				return faults.NewTypedError(faults.InternalError, "failed to encode resource as JSON", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&filterExpression, "filter", "", "jq expression applied to the fetched resource")
	return cmd
}
