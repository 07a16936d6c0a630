package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	rootconfig "github.com/halbind/halbind/config"
	"github.com/halbind/halbind/faults"
	"github.com/halbind/halbind/internal/cli/common"
)

func NewCommand(deps common.CommandDependencies, groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		GroupID: groupID,
		Short:   "Manage API contexts",
	}

	cmd.AddCommand(newListCommand(deps))
	cmd.AddCommand(newUseCommand(deps))
	cmd.AddCommand(newAddCommand(deps))
	cmd.AddCommand(newRemoveCommand(deps))
	cmd.AddCommand(newSetupCommand(deps))
	return cmd
}

func newRemoveCommand(deps common.CommandDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a context from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Contexts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "context %q removed\n", args[0])
			return nil
		},
	}
}

func newListCommand(deps common.CommandDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured contexts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contexts, err := deps.Contexts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(contexts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no contexts configured; run \"halbind config setup\"")
				return nil
			}

			current := ""
			if cfg, err := deps.Contexts.GetCurrent(cmd.Context()); err == nil {
				current = cfg.Name
			}
			for _, entry := range contexts {
				marker := " "
				if entry.Name == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, entry.Name, entry.API.EffectiveBaseURL())
			}
			return nil
		},
	}
}

func newUseCommand(deps common.CommandDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "use NAME",
		Short: "Switch the current context",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := deps.Contexts.SetCurrent(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "switched to context %q\n", args[0])
			return nil
		},
	}
}

func newAddCommand(deps common.CommandDependencies) *cobra.Command {
	var cfg rootconfig.Context
	var makeCurrent bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a context non-interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(cfg.Name) == "" {
				return faults.NewTypedError(faults.ValidationError, "--name is required", nil)
			}
			if err := deps.Contexts.Create(cmd.Context(), cfg); err != nil {
				return err
			}
			if makeCurrent {
				if err := deps.Contexts.SetCurrent(cmd.Context(), cfg.Name); err != nil {
					return err
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "context %q added\n", cfg.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Name, "name", "", "Context name")
	cmd.Flags().StringVar(&cfg.API.BaseURL, "base-url", "", "API base URL (default "+rootconfig.DefaultAPIBaseURL+")")
	cmd.Flags().StringVar(&cfg.API.APIKey, "api-key", "", "Static API credential appended to every request")
	cmd.Flags().StringVar(&cfg.API.ProfileBaseURL, "profile-base-url", "", "User profile URL prefix (default "+rootconfig.DefaultProfileBaseURL+")")
	cmd.Flags().BoolVar(&makeCurrent, "use", false, "Make this the current context")
	return cmd
}
