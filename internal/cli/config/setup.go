package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	rootconfig "github.com/halbind/halbind/config"
	"github.com/halbind/halbind/internal/cli/common"
)

func newSetupCommand(deps common.CommandDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Create a context interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, makeCurrent, err := runSetupForm(cmd)
			if err != nil {
				return err
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
}

func runSetupForm(cmd *cobra.Command) (rootconfig.Context, bool, error) {
	var cfg rootconfig.Context
	makeCurrent := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Context name").
				Prompt("> ").
				Value(&cfg.Name).
				Validate(requiredInput),
			huh.NewInput().
				Title("API base URL (empty for "+rootconfig.DefaultAPIBaseURL+")").
				Prompt("> ").
				Value(&cfg.API.BaseURL),
			huh.NewInput().
				Title("API key").
				Prompt("> ").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.API.APIKey).
				Validate(requiredInput),
			huh.NewInput().
				Title("User profile base URL (empty for "+rootconfig.DefaultProfileBaseURL+")").
				Prompt("> ").
				Value(&cfg.API.ProfileBaseURL),
			huh.NewConfirm().
				Title("Make this the current context?").
				Value(&makeCurrent),
		),
	).
		WithShowHelp(false).
		WithInput(cmd.InOrStdin()).
		WithOutput(cmd.OutOrStdout())

	if err := form.Run(); err != nil {
		return rootconfig.Context{}, false, err
	}

	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.API.BaseURL = strings.TrimSpace(cfg.API.BaseURL)
	cfg.API.APIKey = strings.TrimSpace(cfg.API.APIKey)
	cfg.API.ProfileBaseURL = strings.TrimSpace(cfg.API.ProfileBaseURL)
	return cfg, makeCurrent, nil
}

func requiredInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("input required")
	}
	return nil
}
