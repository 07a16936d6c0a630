package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/halbind/halbind/debugctx"
	apicmd "github.com/halbind/halbind/internal/cli/api"
	"github.com/halbind/halbind/internal/cli/common"
	configcmd "github.com/halbind/halbind/internal/cli/config"
	pagecmd "github.com/halbind/halbind/internal/cli/page"
	"github.com/halbind/halbind/internal/cli/version"
)

const (
	groupUserFacing = "user-facing"
	groupUtility    = "utility"
)

func NewRootCommand(deps Dependencies) *cobra.Command {
	commandDeps := deps.commandDependencies()
	var globalFlags common.GlobalFlags

	root := &cobra.Command{
		Use:   "halbind",
		Short: "Hydrate page placeholders from hypermedia APIs",
		Long: "halbind crawls linked REST resources and renders their values as\n" +
			"HTML fragments bound to page placeholders.",
		RunE: func(command *cobra.Command, _ []string) error {
			return command.Help()
		},
		Args: cobra.NoArgs,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			commandContext := context.Background()
			commandContext = common.WithContextName(commandContext, globalFlags.Context)
			commandContext = debugctx.WithEnabled(commandContext, globalFlags.Debug)
			commandContext = debugctx.WithWriter(commandContext, command.ErrOrStderr())
			command.SetContext(commandContext)

			debugctx.Printf(
				command.Context(),
				"root flags context=%q debug=%t command=%q",
				globalFlags.Context,
				globalFlags.Debug,
				command.CommandPath(),
			)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	common.BindGlobalFlags(root, &globalFlags)
	root.PersistentFlags().BoolP("help", "h", false, "help for command")

	root.AddGroup(
		&cobra.Group{ID: groupUserFacing, Title: "Page Commands:"},
		&cobra.Group{ID: groupUtility, Title: "Utility Commands:"},
	)

	root.AddCommand(
		pagecmd.NewCommand(commandDeps, groupUserFacing),
		apicmd.NewCommand(commandDeps, groupUserFacing),
		configcmd.NewCommand(commandDeps, groupUtility),
		version.NewCommand(groupUtility),
	)

	return root
}
