package common

import "github.com/spf13/cobra"

// GlobalFlags holds the persistent flags shared by every command.
type GlobalFlags struct {
	Context string
	Debug   bool
}

func BindGlobalFlags(command *cobra.Command, flags *GlobalFlags) {
	if command == nil || flags == nil {
		return
	}

	command.PersistentFlags().StringVarP(&flags.Context, "context", "c", "", "configuration context to use")
	command.PersistentFlags().BoolVar(&flags.Debug, "debug", false, "print debug output to stderr")
}
