package main

import (
	"os"

	"github.com/halbind/halbind/core"
	"github.com/halbind/halbind/internal/cli"
)

func main() {
	deps := cli.Dependencies{
		Contexts:  core.NewContextService(core.BootstrapConfig{}),
		Bootstrap: core.BootstrapConfig{},
	}

	if err := cli.Execute(deps); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
